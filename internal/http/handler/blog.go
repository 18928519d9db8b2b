package handler

import (
	"github.com/gofiber/fiber/v2"

	"folio/internal/service"
)

// ListPosts returns published posts without content.
//
// @Summary List blog posts
// @Tags blog
// @Produce json
// @Param category query string false "category key, or all"
// @Param search query string false "matches title or excerpt"
// @Success 200 {array} model.BlogPost
// @Router /api/v1/blog/posts/ [get]
func ListPosts(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.ListPosts(c.UserContext(), service.PostQuery{
			Category: c.Query("category"),
			Search:   c.Query("search"),
		})
		if err != nil {
			return writeServiceError(c, err, "posts")
		}
		return c.JSON(items)
	}
}

// GetPost returns a post with its markdown content and counts the view.
//
// @Summary Blog post detail
// @Tags blog
// @Produce json
// @Param slug path string true "post slug"
// @Success 200 {object} model.BlogPost
// @Failure 404 {object} errorPayload
// @Router /api/v1/blog/posts/{slug}/ [get]
func GetPost(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := svc.GetPost(c.UserContext(), c.Params("slug"))
		if err != nil {
			return writeServiceError(c, err, "post")
		}
		return c.JSON(p)
	}
}

// RecentPosts returns the three newest posts.
//
// @Summary Recent posts
// @Tags blog
// @Produce json
// @Success 200 {array} model.BlogPost
// @Router /api/v1/blog/recent/ [get]
func RecentPosts(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		items, err := svc.RecentPosts(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "posts")
		}
		return c.JSON(items)
	}
}

// BlogCategories returns {category: count} over published posts.
//
// @Summary Post counts by category
// @Tags blog
// @Produce json
// @Success 200 {object} map[string]int
// @Router /api/v1/blog/categories/ [get]
func BlogCategories(svc service.ContentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := svc.Categories(c.UserContext())
		if err != nil {
			return writeServiceError(c, err, "categories")
		}
		return c.JSON(out)
	}
}
