package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// RedisConfig holds settings for the content cache. An empty Addr disables caching.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// SMTPConfig holds outgoing mail settings for contact notifications.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
	To       string
}

// ContactConfig controls the contact endpoint's per-client rate limit.
type ContactConfig struct {
	RatePerMinute int
	Burst         int
}

// AppConfig is the centralized configuration struct for the content API.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost    string
	Port       string
	Timezone   string
	LogLevel   string
	AdminToken string
	// MediaBaseURL prefixes stored media keys when records are served.
	MediaBaseURL string
	Database     DatabaseConfig
	MinIO        MinIOConfig
	Redis        RedisConfig
	SMTP         SMTPConfig
	Contact      ContactConfig
	// TrustedProxies are the peers (IPs or CIDRs) whose X-Forwarded-For is believed.
	TrustedProxies []string
}

// WebConfig is the configuration of the server-rendered site.
type WebConfig struct {
	Port       string
	Timezone   string
	LogLevel   string
	APIBaseURL string
	APITimeout time.Duration
	// Fallback substitutes built-in defaults when the API is unreachable.
	Fallback bool
	// SiteName brands pages that do not load the site configuration.
	SiteName string
	// TrustedProxies are the reverse proxies in front of the site.
	TrustedProxies []string
}

// defaultTrustedProxies covers loopback and private networks, where the site
// and a reverse proxy usually run next to the API.
const defaultTrustedProxies = "127.0.0.0/8,::1,10.0.0.0/8,172.16.0.0/12,192.168.0.0/16,fc00::/7"

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	host := getEnv("APP_HOST", "localhost:8000")
	return &AppConfig{
		AppHost:      host,
		Port:         getEnv("PORT", "8000"),
		Timezone:     getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		AdminToken:   getEnv("ADMIN_TOKEN", ""),
		MediaBaseURL: strings.TrimRight(getEnv("MEDIA_BASE_URL", "http://"+host+"/api/v1/media"), "/"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", ""),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", ""),
			Port:     getEnv("SMTP_PORT", "587"),
			User:     getEnv("SMTP_USER", ""),
			Password: getEnv("SMTP_PASS", ""),
			From:     getEnv("SMTP_FROM", ""),
			To:       getEnv("CONTACT_TO_EMAIL", ""),
		},
		TrustedProxies: getEnvList("TRUSTED_PROXIES", defaultTrustedProxies),
		Contact: ContactConfig{
			RatePerMinute: getEnvInt("CONTACT_RATE_PER_MIN", 5),
			Burst:         getEnvInt("CONTACT_BURST", 3),
		},
	}
}

// LoadWeb reads the site configuration. NEXT_PUBLIC_API_URL is honored for
// compatibility with existing deployments; API_BASE_URL takes precedence.
func LoadWeb() *WebConfig {
	base := getEnv("API_BASE_URL", getEnv("NEXT_PUBLIC_API_URL", "http://localhost:8000/api/v1"))
	return &WebConfig{
		Port:       getEnv("SITE_PORT", "3000"),
		Timezone:   getEnv("APP_TIMEZONE", "UTC"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		APIBaseURL: strings.TrimRight(base, "/"),
		APITimeout: getEnvDuration("API_TIMEOUT", 10*time.Second),
		Fallback:   getEnvBool("SITE_API_FALLBACK", false),
		SiteName:   getEnv("SITE_NAME", "Portfolio"),

		TrustedProxies: getEnvList("TRUSTED_PROXIES", defaultTrustedProxies),
	}
}

// Location resolves a timezone name, falling back to UTC.
func Location(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

// getEnvList splits a comma-separated value, dropping blanks. Set the
// variable to "none" for an empty list.
func getEnvList(key, def string) []string {
	v := getEnv(key, def)
	if strings.EqualFold(strings.TrimSpace(v), "none") {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvDuration accepts Go duration strings ("30s") or bare seconds ("30").
func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if i, err := strconv.Atoi(v); err == nil {
		return time.Duration(i) * time.Second
	}
	return def
}
