package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"folio/internal/http/middleware"
	"folio/internal/service"
)

// Deps are the dependencies of the API routes.
type Deps struct {
	DB      *sql.DB
	Content service.ContentService
	Contact service.ContactService
	Media   service.MediaService

	// AdminToken guards uploads, deletes and the submissions list.
	AdminToken string
	// ContactLimiter throttles contact submissions per client IP; nil disables it.
	ContactLimiter *middleware.IPRateLimiter
}

// FiberConfig is the API app configuration. The site posts contact forms on
// behalf of its visitors, so the client IP is read from X-Forwarded-For when
// the peer is one of trustedProxies and from the connection otherwise.
func FiberConfig(trustedProxies []string) fiber.Config {
	return fiber.Config{
		AppName:                 "folio-api",
		ErrorHandler:            ErrorHandler(),
		DisableStartupMessage:   true,
		BodyLimit:               20 << 20,
		ReadTimeout:             15 * time.Second,
		WriteTimeout:            30 * time.Second,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          trustedProxies,
		EnableIPValidation:      true,
	}
}

// RegisterRoutes attaches the content API under /api/v1 plus the health probes.
// Trailing slashes are optional because the app runs without StrictRouting.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())

	v1 := app.Group("/api/v1")

	v1.Get("/projects", ListProjects(d.Content))
	v1.Get("/projects/featured", FeaturedProjects(d.Content))
	v1.Get("/projects/:slug", GetProject(d.Content))

	v1.Get("/blog/posts", ListPosts(d.Content))
	v1.Get("/blog/posts/:slug", GetPost(d.Content))
	v1.Get("/blog/recent", RecentPosts(d.Content))
	v1.Get("/blog/categories", BlogCategories(d.Content))

	v1.Get("/technologies", ListTechnologies(d.Content))
	v1.Get("/tech-stack", TechStack(d.Content))

	v1.Get("/metadata", SiteMetadata(d.Content))
	v1.Get("/core/config", SiteConfig(d.Content))
	for _, p := range []string{"/stats", "/core/stats"} {
		v1.Get(p, Stats(d.Content))
	}
	for _, p := range []string{"/highlights", "/core/highlights"} {
		v1.Get(p, Highlights(d.Content))
	}

	contact := []fiber.Handler{SubmitContact(d.Contact)}
	if d.ContactLimiter != nil {
		contact = append([]fiber.Handler{d.ContactLimiter.Handler()}, contact...)
	}
	for _, p := range []string{"/contact", "/core/contact"} {
		v1.Post(p, contact...)
	}

	admin := middleware.AdminAuth(d.AdminToken)
	v1.Get("/admin/contact", admin, ListContactSubmissions(d.Contact))

	if d.Media != nil {
		v1.Get("/media/*", GetMedia(d.Media))
		v1.Post("/media", admin, UploadMedia(d.Media))
		v1.Delete("/media/*", admin, DeleteMedia(d.Media))
		v1.Get("/resume", ResumeRedirect(d.Media))
	}
}
