package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Review   ReviewConfig
	Files    FilesConfig
	SMTP     SMTPConfig
	Auth     AuthConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string

	// PublicBaseURL is the externally reachable origin, used when
	// building presigned file URLs.
	PublicBaseURL string

	// ReviewPageURL is the reviewer-facing page a tokenized link points
	// at, typically the SPA route "<frontend>/review".
	ReviewPageURL string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration

	MigrationsDir string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
}

type ReviewConfig struct {
	// TokenSecret signs reviewer-link tokens. TokenTTL bounds how long a
	// link stays usable; the contract with reviewers is ten days.
	TokenSecret string
	TokenTTL    time.Duration
}

type FilesConfig struct {
	// Dir is the resume storage root on disk.
	Dir string
	// URLSecret signs presigned upload/download grants.
	URLSecret   string
	UploadTTL   time.Duration
	DownloadTTL time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type AuthConfig struct {
	// HRTokenSecret verifies bearer tokens minted by the hosted identity
	// provider for HR staff. This service only validates; it never
	// issues or refreshes them.
	HRTokenSecret string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return def
		}
		return d
	}
	optInt := func(key string, def int) int {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return def
		}
		return n
	}

	cfg.App = AppConfig{
		AppName:       req("APP_NAME"),
		Environment:   req("APP_ENV"),
		HTTPPort:      req("HTTP_PORT"),
		PublicBaseURL: opt("PUBLIC_BASE_URL"),
		ReviewPageURL: opt("REVIEW_PAGE_URL"),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST"),
		DBPort:     opt("DB_PORT"),
		DBName:     opt("DB_NAME"),
		DBUser:     opt("DB_USER"),
		DBPassword: opt("DB_PASSWORD"),
		DBSSLMode:  opt("DB_SSL_MODE"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 10)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", time.Hour),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 30*time.Minute),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", time.Minute),

		MigrationsDir: opt("DB_MIGRATIONS_DIR"),
	}

	cfg.Redis = RedisConfig{
		Host:     opt("REDIS_HOST"),
		Port:     opt("REDIS_PORT"),
		Password: opt("REDIS_PASSWORD"),
	}

	cfg.Review = ReviewConfig{
		TokenSecret: req("REVIEW_TOKEN_SECRET"),
		TokenTTL:    optDuration("REVIEW_TOKEN_TTL", 240*time.Hour),
	}

	cfg.Files = FilesConfig{
		Dir:         opt("FILES_DIR"),
		URLSecret:   req("FILES_URL_SECRET"),
		UploadTTL:   optDuration("FILES_UPLOAD_TTL", 5*time.Minute),
		DownloadTTL: optDuration("FILES_DOWNLOAD_TTL", 7*24*time.Hour),
	}
	if cfg.Files.Dir == "" {
		cfg.Files.Dir = "data/resumes"
	}

	cfg.SMTP = SMTPConfig{
		Host:     opt("SMTP_HOST"),
		Port:     optInt("SMTP_PORT", 587),
		Username: opt("SMTP_USER"),
		Password: opt("SMTP_PASSWORD"),
		From:     opt("SMTP_FROM"),
	}

	cfg.Auth = AuthConfig{
		HRTokenSecret: req("HR_TOKEN_SECRET"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
