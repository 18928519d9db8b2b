// Package site renders the portfolio pages from content API data.
package site

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"folio/internal/apiclient"
	"folio/internal/http/middleware"
	"folio/internal/logger"
	"folio/internal/model"
)

// API is the subset of the content API the pages read from. *apiclient.Client implements it.
type API interface {
	GetProjects(ctx context.Context) ([]model.Project, error)
	GetFeaturedProjects(ctx context.Context) ([]model.Project, error)
	GetProject(ctx context.Context, slug string) (*model.Project, error)
	GetBlogPosts(ctx context.Context, q apiclient.BlogQuery) ([]model.BlogPost, error)
	GetBlogPost(ctx context.Context, slug string) (*model.BlogPost, error)
	GetRecentPosts(ctx context.Context) ([]model.BlogPost, error)
	GetBlogCategories(ctx context.Context) (model.BlogCategories, error)
	GetTechStack(ctx context.Context) ([]model.TechCategory, error)
	GetSiteConfig(ctx context.Context) (*model.SiteConfig, error)
	GetStats(ctx context.Context) (*model.PortfolioStats, error)
	GetCareerHighlights(ctx context.Context) ([]model.CareerHighlight, error)
	SubmitContact(ctx context.Context, form model.ContactForm) (*model.ContactResult, error)
}

// Options configure the site.
type Options struct {
	Logger logger.Logger
	// Timeout bounds all API calls made for one page; zero means 10s.
	Timeout time.Duration
	// Brand is shown in the navigation on pages that do not load the site config.
	Brand string
	// Location is used to render dates; nil means UTC.
	Location *time.Location
	// Metrics, when set, records request metrics.
	Metrics *middleware.PrometheusMiddleware
	// TrustedProxies are the peers whose X-Forwarded-For names the visitor.
	TrustedProxies []string
}

// Site holds the page handlers.
type Site struct {
	api     API
	log     logger.Logger
	timeout time.Duration
	brand   string
	views   *Views
	metrics *middleware.PrometheusMiddleware
	proxies []string
}

// New creates the site and parses its templates.
func New(api API, o Options) (*Site, error) {
	log := o.Logger
	if log == nil {
		log = logger.Nop()
	}
	timeout := o.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	brand := o.Brand
	if brand == "" {
		brand = "Portfolio"
	}
	views := NewViews(o.Location)
	if err := views.Load(); err != nil {
		return nil, err
	}
	return &Site{
		api:     api,
		log:     log.With(logger.String("component", "site")),
		timeout: timeout,
		brand:   brand,
		views:   views,
		metrics: o.Metrics,
		proxies: o.TrustedProxies,
	}, nil
}

// App builds the fiber application serving every page, static assets and /healthz.
func (s *Site) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:                 "folio-web",
		Views:                   s.views,
		ErrorHandler:            s.errorHandler,
		DisableStartupMessage:   true,
		ReadTimeout:             15 * time.Second,
		WriteTimeout:            30 * time.Second,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          s.proxies,
		EnableIPValidation:      true,
	})

	app.Use(recover.New())
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/healthz" || c.Path() == "/metrics"
	})))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(s.log))
	if s.metrics != nil {
		app.Use(s.metrics.Handler())
	}

	s.Register(app)
	return app
}

// Register attaches the page routes to app.
func (s *Site) Register(app *fiber.App) {
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Use("/static", staticHandler())

	app.Get("/", s.home)
	app.Get("/about", s.about)
	app.Get("/projects", s.projects)
	app.Get("/projects/:slug", s.project)
	app.Get("/blog", s.blog)
	app.Get("/blog/:slug", s.post)
	for _, p := range []string{"/connect", "/contact"} {
		app.Get(p, s.connect)
		app.Post(p, s.submitContact)
	}
	app.Post("/theme", s.toggleTheme)
}

// pageContext bounds the API calls of one page render.
func (s *Site) pageContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), s.timeout)
}

func (s *Site) errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	if status == fiber.StatusNotFound {
		return s.renderNotFound(c, "Page")
	}
	if status == fiber.StatusMethodNotAllowed {
		return c.Status(status).SendString("method not allowed")
	}
	s.log.Error("page_failed",
		logger.String("request_id", middleware.GetRequestID(c)),
		logger.String("path", c.Path()),
		logger.Error(err),
	)
	return s.render(c, status, "error", errorPage{
		layoutData: s.layout(c, "Something Went Wrong", nil),
		Heading:    "Something Went Wrong",
		Message:    "An unexpected error occurred. Please try again.",
		ReloadURL:  c.OriginalURL(),
	})
}
