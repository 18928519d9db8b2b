package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"folio/internal/apiclient"
	"folio/internal/config"
	"folio/internal/http/middleware"
	"folio/internal/logger"
	"folio/internal/otel"
	"folio/internal/site"
)

func main() {
	cfg := config.LoadWeb()
	loc := config.Location(cfg.Timezone)
	log := logger.New(logger.Config{Level: cfg.LogLevel, Location: loc})
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, loc, log); err != nil {
		log.Error("server_exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.WebConfig, loc *time.Location, log logger.Logger) error {
	shutdownTracing, err := otel.Init(ctx, "folio-web", log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	client := apiclient.New(apiclient.Options{
		BaseURL:  cfg.APIBaseURL,
		Timeout:  cfg.APITimeout,
		Fallback: cfg.Fallback,
		Logger:   log,
	})
	log.Info("api_client_configured",
		logger.String("base_url", client.BaseURL()),
		logger.Bool("fallback", cfg.Fallback),
	)

	s, err := site.New(client, site.Options{
		Logger:         log,
		Timeout:        cfg.APITimeout,
		Brand:          cfg.SiteName,
		Location:       loc,
		Metrics:        prom,
		TrustedProxies: cfg.TrustedProxies,
	})
	if err != nil {
		return err
	}

	app := s.App()
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

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
