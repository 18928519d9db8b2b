package handler

import (
	"github.com/gofiber/fiber/v2"

	"folio/internal/service"
)

// ListTechnologies returns technologies ordered by category then name.
//
// @Summary List technologies
// @Tags core
// @Produce json
// @Success 200 {array} model.Technology
// @Router /api/v1/technologies/ [get]
func ListTechnologies(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Technologies(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "technologies")
		}
		return c.JSON(items)
	}
}

// TechStack returns technologies grouped by category.
//
// @Summary Tech stack by category
// @Tags core
// @Produce json
// @Success 200 {array} model.TechCategory
// @Router /api/v1/tech-stack/ [get]
func TechStack(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.TechStack(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "tech stack")
		}
		return c.JSON(items)
	}
}

// SiteConfig returns the stored configuration, or the default when none exists.
//
// @Summary Site configuration
// @Tags core
// @Produce json
// @Success 200 {object} model.SiteConfig
// @Router /api/v1/core/config/ [get]
func SiteConfig(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := svc.SiteConfig(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "site config")
		}
		return c.JSON(cfg)
	}
}

// SiteMetadata serves the site configuration with the owner under "name".
//
// @Summary Site metadata
// @Tags core
// @Produce json
// @Success 200 {object} model.SiteMetadata
// @Router /api/v1/metadata/ [get]
func SiteMetadata(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cfg, err := svc.SiteConfig(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "site config")
		}
		return c.JSON(cfg.Metadata())
	}
}

// Stats returns the headline counters shown on the home page.
//
// @Summary Portfolio statistics
// @Tags core
// @Produce json
// @Success 200 {object} model.PortfolioStats
// @Router /api/v1/core/stats/ [get]
func Stats(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		st, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "stats")
		}
		return c.JSON(st)
	}
}

// Highlights returns the career timeline, current roles first.
//
// @Summary Career highlights
// @Tags core
// @Produce json
// @Success 200 {array} model.CareerHighlight
// @Router /api/v1/core/highlights/ [get]
func Highlights(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.Highlights(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "highlights")
		}
		return c.JSON(items)
	}
}
