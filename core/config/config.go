package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"kra.app/feedback/core/db"
)

type Config struct {
	OTel        OTelConfig
	Auth        AuthConfig
	Redis       RedisConfig
	Storage     StorageConfig
	CORS        CORSConfig
	Comments    CommentConfig
	Env         string
	Port        string
	NodeID      int64
	DB          db.Config
	DBParts     DBParts
	AutoMigrate bool
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

type AuthConfig struct {
	// JWTSecret may be empty; requests are then refused with a server configuration error.
	JWTSecret string
	TokenTTL  time.Duration
}

type RedisConfig struct {
	URL           string
	ChannelPrefix string
}

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

type CORSConfig struct {
	AllowOrigins []string
}

type CommentConfig struct {
	NotifyConcurrency int
}

// DBParts holds the discrete connection settings used when DATABASE_URL is not set.
type DBParts struct {
	Host                  string
	Port                  int
	Name                  string
	User                  string
	Password              string
	SSL                   bool
	SSLRejectUnauthorized bool
}

type ServiceType string

const (
	ServiceTypeServer ServiceType = "server"
	ServiceTypeCLI    ServiceType = "cli"
)

// Load reads configuration from the environment.
// In development it first loads .env.<service>, falling back to .env.
func Load(serviceType ServiceType) (Config, error) {
	if getEnv("KRA_ENV", "development") == "development" {
		if err := godotenv.Load(fmt.Sprintf(".env.%s", serviceType)); err != nil {
			_ = godotenv.Load(".env")
		}
	}

	parts := DBParts{
		Host:                  getEnv("DB_HOST", "localhost"),
		Port:                  getEnvInt("DB_PORT", 5433),
		Name:                  getEnv("DB_NAME", "feedback_system"),
		User:                  getEnv("DB_USER", "postgres"),
		Password:              getEnv("DB_PASSWORD", ""),
		SSL:                   getEnvBool("DB_SSL", false),
		SSLRejectUnauthorized: getEnvBool("DB_SSL_REJECT_UNAUTHORIZED", true),
	}

	cfg := Config{
		Env:         getEnv("KRA_ENV", "development"),
		Port:        getEnv("PORT", "5000"),
		NodeID:      int64(getEnvInt("NODE_ID", 1)),
		AutoMigrate: getEnvBool("DB_AUTO_MIGRATE", false),
		DBParts:     parts,
		DB: db.Config{
			DSN:             getEnv("DATABASE_URL", parts.DSN()),
			MaxConns:        getEnvInt32("DB_POOL_MAX", 20),
			MinConns:        getEnvInt32("DB_POOL_MIN", 2),
			MaxConnIdleTime: getEnvMillis("DB_POOL_IDLE_TIMEOUT", 30*time.Second),
			ConnectTimeout:  getEnvMillis("DB_POOL_CONNECTION_TIMEOUT", 2*time.Second),
		},
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "kra-feedback"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  time.Duration(getEnvInt("JWT_TTL_HOURS", 168)) * time.Hour,
		},
		Redis: RedisConfig{
			URL:           getEnv("REDIS_URL", ""),
			ChannelPrefix: getEnv("REDIS_CHANNEL_PREFIX", "kra:user-"),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", ""),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "kra-attachments"),
			UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			PublicURL: getEnv("ATTACHMENT_PUBLIC_URL", ""),
		},
		CORS: CORSConfig{
			AllowOrigins: splitList(getEnv("CORS_ORIGIN", "http://localhost:3000")),
		},
		Comments: CommentConfig{
			NotifyConcurrency: getEnvInt("NOTIFY_CONCURRENCY", 8),
		},
	}

	if cfg.Comments.NotifyConcurrency < 1 {
		return Config{}, fmt.Errorf("NOTIFY_CONCURRENCY must be at least 1, got %d", cfg.Comments.NotifyConcurrency)
	}

	if cfg.IsProduction() && cfg.Auth.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required in production")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

func (c StorageConfig) Enabled() bool {
	return c.Endpoint != "" && c.AccessKey != "" && c.SecretKey != ""
}

func (c AuthConfig) Enabled() bool {
	return c.JWTSecret != ""
}

// DSN renders the discrete settings as a postgres URL.
// DB_SSL with DB_SSL_REJECT_UNAUTHORIZED=false maps to sslmode=require (no certificate check).
func (p DBParts) DSN() string {
	sslMode := "disable"
	if p.SSL {
		sslMode = "verify-full"
		if !p.SSLRejectUnauthorized {
			sslMode = "require"
		}
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(p.User, p.Password),
		Host:     fmt.Sprintf("%s:%d", p.Host, p.Port),
		Path:     "/" + p.Name,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt32(key string, fallback int32) int32 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(i)
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvMillis reads a duration expressed in milliseconds.
func getEnvMillis(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if ms, err := strconv.Atoi(value); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
