package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type DB struct {
	URL            string `env:"DATABASE_URL"`
	Host           string `env:"DB_HOST,default=localhost"`
	Port           string `env:"DB_PORT,default=5432"`
	User           string `env:"DB_USER,default=postgres"`
	Password       string `env:"DB_PASSWORD,default=password"`
	Name           string `env:"DB_NAME,default=postgres"`
	SSLMode        string `env:"DB_SSLMODE,default=disable"`
	MigrationsPath string `env:"MIGRATIONS_PATH,default=migrations/001_create_tables.sql"`
}

// DSN returns DATABASE_URL when set, otherwise a key/value connection string
// built from the DB_* parts.
func (d DB) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

type Storage struct {
	Driver    string `env:"STORAGE_DRIVER,default=minio"`
	Endpoint  string `env:"STORAGE_ENDPOINT,default=localhost:9000"`
	AccessKey string `env:"STORAGE_ACCESS_KEY,default=minioadmin"`
	SecretKey string `env:"STORAGE_SECRET_KEY,default=minioadmin"`
	Region    string `env:"STORAGE_REGION,default=us-east-1"`
	UseSSL    bool   `env:"STORAGE_USE_SSL,default=false"`
	PublicURL string `env:"STORAGE_PUBLIC_URL"`
}

type Config struct {
	ServerPort         int    `env:"PORT,default=8000"`
	SupabaseURL        string `env:"SUPABASE_URL"`
	DB                 DB
	Storage            Storage
	JWTSecretKey       string `env:"SECRET_KEY"`
	JWTAlgorithm       string `env:"ALGORITHM,default=HS256"`
	AccessTokenMinutes int    `env:"ACCESS_TOKEN_EXPIRE_MINUTES,default=30"`
	MaxUploadSize      int64  `env:"MAX_UPLOAD_SIZE,default=10485760"`
	LogLevel           string `env:"LOG_LEVEL,default=info"`
	AuthRateLimit      string `env:"AUTH_RATE_LIMIT,default=20-M"`
}

func (c *Config) AccessTokenDuration() time.Duration {
	if c.AccessTokenMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.AccessTokenMinutes) * time.Minute
}

// StoragePublicURL is the base that object paths are appended to when
// building public links: STORAGE_PUBLIC_URL, then the Supabase public object
// route, then the raw storage endpoint.
func (c *Config) StoragePublicURL() string {
	if c.Storage.PublicURL != "" {
		return strings.TrimRight(c.Storage.PublicURL, "/")
	}
	if c.SupabaseURL != "" {
		return strings.TrimRight(c.SupabaseURL, "/") + "/storage/v1/object/public"
	}

	endpoint := strings.TrimRight(c.Storage.Endpoint, "/")
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if c.Storage.UseSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.Info(".env file not found, using environment variables")
	}

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	return cfg, nil
}
