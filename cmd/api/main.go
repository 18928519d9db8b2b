package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"folio/docs"
	"folio/internal/cache"
	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/database/migration"
	handlers "folio/internal/http/handler"
	"folio/internal/http/middleware"
	"folio/internal/logger"
	"folio/internal/notify"
	"folio/internal/otel"
	"folio/internal/repository/postgres"
	"folio/internal/service"
	"folio/internal/storage"
)

// @title Folio Content API
// @version 1.0
// @description Portfolio content: projects, blog posts, tech stack, site configuration and contact.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	loc := config.Location(cfg.Timezone)
	log := logger.New(logger.Config{Level: cfg.LogLevel, Location: loc})
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server_exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.AppConfig, log logger.Logger) error {
	shutdownTracing, err := otel.Init(ctx, "folio-api", log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	db, err := database.Connect(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	contentCache, closeCache := newCache(ctx, cfg.Redis, reg, log)
	defer closeCache()

	content := service.NewContentService(service.ContentDeps{
		Projects:     postgres.NewProjectPostgres(db),
		Blog:         postgres.NewBlogPostgres(db),
		Tech:         postgres.NewTechPostgres(db),
		Core:         postgres.NewCorePostgres(db),
		Cache:        contentCache,
		CacheTTL:     cfg.Redis.TTL,
		MediaBaseURL: cfg.MediaBaseURL,
	})

	var notifier notify.Notifier
	if n := notify.NewSMTPNotifier(cfg.SMTP); n.Configured() {
		notifier = n
	} else {
		log.Warn("smtp_not_configured", logger.String("component", "contact"))
	}
	contact := service.NewContactService(postgres.NewContactPostgres(db), notifier, log)

	var media service.MediaService
	if store, err := storage.NewMinIO(ctx, cfg.MinIO); err != nil {
		log.Warn("media_storage_disabled", logger.String("component", "storage"), logger.Error(err))
	} else {
		media = service.NewMediaService(store, content, cfg.MediaBaseURL)
	}

	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	app := fiber.New(handlers.FiberConfig(cfg.TrustedProxies))

	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || c.Path() == "/healthz"
	})))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log.With(logger.String("component", "http"))))
	app.Use(prom.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:             db,
		Content:        content,
		Contact:        contact,
		Media:          media,
		AdminToken:     cfg.AdminToken,
		ContactLimiter: middleware.NewIPRateLimiter(cfg.Contact.RatePerMinute, cfg.Contact.Burst),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("server_started", logger.String("addr", ":"+cfg.Port))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("server_stopping")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(sctx)
}

// newCache returns a Redis-backed cache, or cache.Nop when Redis is unset or unreachable.
func newCache(ctx context.Context, cfg config.RedisConfig, reg prometheus.Registerer, log logger.Logger) (cache.Cache, func()) {
	log = log.With(logger.String("component", "cache"))
	if cfg.Addr == "" {
		log.Info("cache_disabled")
		return cache.Nop{}, func() {}
	}

	client, err := cache.NewClient(ctx, cfg)
	if err != nil {
		log.Warn("cache_unavailable", logger.Error(err))
		return cache.Nop{}, func() {}
	}
	c, err := cache.NewRedisCache(client, "folio:", reg)
	if err != nil {
		client.Close()
		log.Warn("cache_unavailable", logger.Error(err))
		return cache.Nop{}, func() {}
	}
	return c, func() { client.Close() }
}
