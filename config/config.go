package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Port    string `env:"PORT,default=8080"`
	GinMode string `env:"GIN_MODE"`

	// DATABASE_URL wins over the discrete DB_* settings.
	DatabaseURL   string `env:"DATABASE_URL"`
	DBHost        string `env:"DB_HOST,default=localhost"`
	DBPort        string `env:"DB_PORT,default=5432"`
	DBUser        string `env:"DB_USER"`
	DBPassword    string `env:"DB_PASSWORD"`
	DBName        string `env:"DB_NAME"`
	StorageDriver string `env:"STORAGE_DRIVER,default=postgres"`

	AdminKey       string        `env:"ADMIN_KEY,default=ADMIN"`
	JWTSecret      string        `env:"JWT_SECRET"`
	JWTTTL         time.Duration `env:"JWT_TTL,default=24h"`
	PasswordScheme string        `env:"PASSWORD_SCHEME,default=plain"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`

	CORSAllowOrigins string  `env:"CORS_ALLOW_ORIGINS,default=*"`
	LoginRatePerSec  float64 `env:"LOGIN_RATE_PER_SEC,default=5"`
	LoginRateBurst   int     `env:"LOGIN_RATE_BURST,default=10"`
}

// Load reads .env when present and decodes the environment into a Config.
func Load() (*Config, error) {
	// Load environment variables
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decode env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	c.StorageDriver = strings.ToLower(strings.TrimSpace(c.StorageDriver))
	switch c.StorageDriver {
	case DriverPostgres, DriverMemory:
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
	if c.LoginRatePerSec <= 0 || c.LoginRateBurst <= 0 {
		return errors.New("LOGIN_RATE_PER_SEC and LOGIN_RATE_BURST must be positive")
	}
	return nil
}

// DSN returns the postgres connection string.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

// AllowedOrigins splits CORS_ALLOW_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
