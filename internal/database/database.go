// Package database opens the traced PostgreSQL pool used by the content repositories.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/XSAM/otelsql"
	_ "github.com/jackc/pgx/v5/stdlib"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"folio/internal/config"
	"folio/internal/logger"
)

const (
	applicationName = "folio-api"
	connectTimeout  = 5 * time.Second
	connectAttempts = 5

	defaultMaxOpenConns    = 10
	defaultMaxIdleConns    = 5
	defaultConnMaxLifetime = 30 * time.Minute
)

// ErrIncompleteConfig is returned when host, port, user or database name is missing.
var ErrIncompleteConfig = errors.New("database: host, port, user and name are required")

var (
	sqlOpen = sql.Open
	// retryDelay is the pause before attempt n+1; the container database often starts after the API.
	retryDelay = func(attempt int) time.Duration { return time.Duration(attempt) * time.Second }
)

// PostgresDSN renders c as a postgres:// URL tagged with the application name.
func PostgresDSN(c config.DatabaseConfig) (string, error) {
	if c.Host == "" || c.Port == "" || c.User == "" || c.Name == "" {
		return "", ErrIncompleteConfig
	}

	u := &url.URL{
		Scheme: "postgres",
		Host:   c.Host + ":" + c.Port,
		Path:   c.Name,
		User:   url.User(c.User),
	}
	if c.Password != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}

	q := url.Values{}
	q.Set("application_name", applicationName)
	q.Set("connect_timeout", strconv.Itoa(int(connectTimeout.Seconds())))
	if c.SSLMode != "" {
		q.Set("sslmode", c.SSLMode)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Connect opens the pool through the otelsql-wrapped pgx driver and waits
// until the server answers a ping, retrying a few times with a growing delay.
func Connect(ctx context.Context, c config.DatabaseConfig, log logger.Logger) (*sql.DB, error) {
	dsn, err := PostgresDSN(c)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.Nop()
	}
	log = log.With(logger.String("component", "database"))

	driverName, err := otelsql.Register("pgx",
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithSQLCommenter(true),
	)
	if err != nil {
		return nil, fmt.Errorf("register otelsql: %w", err)
	}

	db, err := sqlOpen(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	configurePool(db, c)

	if err := waitReady(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := otelsql.RegisterDBStatsMetrics(db, otelsql.WithAttributes(semconv.DBSystemPostgreSQL)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("register db stats metrics: %w", err)
	}

	log.Info("db_connected",
		logger.String("host", c.Host),
		logger.String("database", c.Name),
	)
	return db, nil
}

func configurePool(db *sql.DB, c config.DatabaseConfig) {
	maxOpen, maxIdle := c.MaxOpenConns, c.MaxIdleConns
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdleConns
	}
	lifetime := defaultConnMaxLifetime
	if c.ConnMaxLifetimeSec > 0 {
		lifetime = time.Duration(c.ConnMaxLifetimeSec) * time.Second
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(lifetime)
}

func waitReady(ctx context.Context, db *sql.DB, log logger.Logger) error {
	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
		err = db.PingContext(pingCtx)
		cancel()
		if err == nil {
			return nil
		}
		if attempt == connectAttempts {
			break
		}

		log.Warn("db_ping_failed", logger.Int("attempt", attempt), logger.Error(err))
		select {
		case <-ctx.Done():
			return fmt.Errorf("ping database: %w", ctx.Err())
		case <-time.After(retryDelay(attempt)):
		}
	}
	return fmt.Errorf("ping database after %d attempts: %w", connectAttempts, err)
}
