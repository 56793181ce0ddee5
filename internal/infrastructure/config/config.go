// Package config resolves all process settings from the environment once at
// startup. Nothing below cmd and routes reads the environment directly.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageDynamoDB = "dynamodb"

	SessionStoreStorage = "storage"
	SessionStoreRedis   = "redis"
)

type Config struct {
	Env      string
	HTTPPort string
	GinMode  string
	LogLevel string

	StorageDriver string
	Postgres      PostgresConfig
	DynamoDB      DynamoDBConfig

	Session SessionConfig
	Redis   RedisConfig
	NATS    NATSConfig

	CORSAllowedOrigins []string
	Admin              AdminSeed
}

type PostgresConfig struct {
	URL          string
	MaxOpenConns int
}

type DynamoDBConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	Tables          DynamoTables
}

type DynamoTables struct {
	Users          string
	UserEmails     string
	Profiles       string
	Sessions       string
	Requests       string
	Quotations     string
	QuotationPairs string
	Notifications  string
}

type SessionConfig struct {
	Store      string
	TTL        time.Duration
	CookieName string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type NATSConfig struct {
	URL           string
	SubjectPrefix string
}

// AdminSeed is applied only when both fields are set.
type AdminSeed struct {
	Email    string
	Password string
}

func (a AdminSeed) Enabled() bool {
	return a.Email != "" && a.Password != ""
}

func (c Config) Production() bool {
	return c.Env == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("STORAGE_DRIVER", StorageMemory)
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("DYNAMODB_ENDPOINT", "")
	v.SetDefault("USERS_TABLE", "users")
	v.SetDefault("USER_EMAILS_TABLE", "user_emails")
	v.SetDefault("PROFILES_TABLE", "profiles")
	v.SetDefault("SESSIONS_TABLE", "sessions")
	v.SetDefault("REQUESTS_TABLE", "quotation_requests")
	v.SetDefault("QUOTATIONS_TABLE", "vendor_quotations")
	v.SetDefault("QUOTATION_PAIRS_TABLE", "quotation_pairs")
	v.SetDefault("NOTIFICATIONS_TABLE", "notifications")

	v.SetDefault("SESSION_STORE", SessionStoreStorage)
	v.SetDefault("SESSION_TTL", "168h")
	v.SetDefault("SESSION_COOKIE", "session_token")

	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("NATS_URL", "")
	v.SetDefault("NATS_SUBJECT_PREFIX", "solar")

	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	v.SetDefault("ADMIN_EMAIL", "")
	v.SetDefault("ADMIN_PASSWORD", "")
}

// Load reads the process environment.
func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()
	return load(v)
}

func load(v *viper.Viper) (Config, error) {
	setDefaults(v)

	cfg := Config{
		Env:           strings.ToLower(v.GetString("APP_ENV")),
		HTTPPort:      v.GetString("HTTP_PORT"),
		GinMode:       v.GetString("GIN_MODE"),
		LogLevel:      strings.ToLower(v.GetString("LOG_LEVEL")),
		StorageDriver: strings.ToLower(v.GetString("STORAGE_DRIVER")),
		Postgres: PostgresConfig{
			URL:          v.GetString("DATABASE_URL"),
			MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		},
		DynamoDB: DynamoDBConfig{
			Region:          v.GetString("AWS_REGION"),
			AccessKeyID:     v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("AWS_SECRET_ACCESS_KEY"),
			Endpoint:        v.GetString("DYNAMODB_ENDPOINT"),
			Tables: DynamoTables{
				Users:          v.GetString("USERS_TABLE"),
				UserEmails:     v.GetString("USER_EMAILS_TABLE"),
				Profiles:       v.GetString("PROFILES_TABLE"),
				Sessions:       v.GetString("SESSIONS_TABLE"),
				Requests:       v.GetString("REQUESTS_TABLE"),
				Quotations:     v.GetString("QUOTATIONS_TABLE"),
				QuotationPairs: v.GetString("QUOTATION_PAIRS_TABLE"),
				Notifications:  v.GetString("NOTIFICATIONS_TABLE"),
			},
		},
		Session: SessionConfig{
			Store:      strings.ToLower(v.GetString("SESSION_STORE")),
			TTL:        v.GetDuration("SESSION_TTL"),
			CookieName: v.GetString("SESSION_COOKIE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		NATS: NATSConfig{
			URL:           v.GetString("NATS_URL"),
			SubjectPrefix: v.GetString("NATS_SUBJECT_PREFIX"),
		},
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		Admin: AdminSeed{
			Email:    v.GetString("ADMIN_EMAIL"),
			Password: v.GetString("ADMIN_PASSWORD"),
		},
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case StorageMemory, StorageDynamoDB:
	case StoragePostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORAGE_DRIVER=%s", StoragePostgres)
		}
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	switch c.Session.Store {
	case SessionStoreStorage, SessionStoreRedis:
	default:
		return fmt.Errorf("unknown SESSION_STORE %q", c.Session.Store)
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE must not be empty")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
