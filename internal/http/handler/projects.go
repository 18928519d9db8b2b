package handler

import (
	"github.com/gofiber/fiber/v2"

	"folio/internal/service"
)

// ListProjects returns published projects, newest first.
//
// @Summary List projects
// @Tags projects
// @Produce json
// @Param featured query bool false "only featured projects"
// @Success 200 {array} model.Project
// @Failure 500 {object} errorPayload
// @Router /api/v1/projects/ [get]
func ListProjects(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListProjects(c.UserContext(), c.QueryBool("featured", false))
		if err != nil {
			return writeServiceError(c, err, "projects")
		}
		return c.JSON(items)
	}
}

// FeaturedProjects returns up to three featured projects.
//
// @Summary Featured projects
// @Tags projects
// @Produce json
// @Success 200 {array} model.Project
// @Router /api/v1/projects/featured/ [get]
func FeaturedProjects(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.FeaturedProjects(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "projects")
		}
		return c.JSON(items)
	}
}

// GetProject returns one project with its case study.
//
// @Summary Project detail
// @Tags projects
// @Produce json
// @Param slug path string true "project slug"
// @Success 200 {object} model.Project
// @Failure 404 {object} errorPayload
// @Router /api/v1/projects/{slug}/ [get]
func GetProject(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.GetProject(c.UserContext(), c.Params("slug"))
		if err != nil {
			return writeServiceError(c, err, "project")
		}
		return c.JSON(p)
	}
}
