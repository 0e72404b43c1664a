package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port       int    `mapstructure:"PORT"`
	Env        string `mapstructure:"APP_ENV"` // development | production
	LogLevel   string `mapstructure:"LOG_LEVEL"`
	CORSOrigin string `mapstructure:"CORS_ORIGIN"`

	// Database: sqlite (archivo local) o postgres (servidor en red)
	DBDriver    string `mapstructure:"DB_DRIVER"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	SQLitePath  string `mapstructure:"SQLITE_PATH"`
	DBPoolMax   int    `mapstructure:"DB_POOL_MAX"`
	DBPoolMin   int    `mapstructure:"DB_POOL_MIN"`

	PGHost     string `mapstructure:"PGHOST"`
	PGPort     int    `mapstructure:"PGPORT"`
	PGDatabase string `mapstructure:"PGDATABASE"`
	PGUser     string `mapstructure:"PGUSER"`
	PGPassword string `mapstructure:"PGPASSWORD"`
	PGSSLMode  string `mapstructure:"PGSSLMODE"`

	// Redis (opcional): cache de precios y cola de correos
	RedisURL string `mapstructure:"REDIS_URL"`

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	JWTRefreshHours    int    `mapstructure:"JWT_REFRESH_HOURS"`
	CajaPassword       string `mapstructure:"CAJA_PASSWORD"`
	BasculaPassword    string `mapstructure:"BASCULA_PASSWORD"`

	// SMTP
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`

	// Business
	WorkerPoolSize  int    `mapstructure:"WORKER_POOL_SIZE"`
	PDFStoragePath  string `mapstructure:"PDF_STORAGE_PATH"`
	TaraCajaDefault string `mapstructure:"TARA_CAJA_DEFAULT"`

	// Cliente de báscula (cmd/bascula)
	APIURL           string `mapstructure:"API_URL"`
	BasculaPorSerial bool   `mapstructure:"BASCULA_POR_SERIAL"`
	SerialPort       string `mapstructure:"SERIAL_PORT"`
	SerialBaudRate   int    `mapstructure:"SERIAL_BAUDRATE"`
	BasculaUser      string `mapstructure:"BASCULA_USER"`
	BasculaPass      string `mapstructure:"BASCULA_PASS"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("PORT", 8000)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("CORS_ORIGIN", "*")
	v.SetDefault("DB_DRIVER", "")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SQLITE_PATH", "rastro.db")
	v.SetDefault("DB_POOL_MAX", 8)
	v.SetDefault("DB_POOL_MIN", 1)
	v.SetDefault("PGHOST", "")
	v.SetDefault("PGPORT", 5432)
	v.SetDefault("PGDATABASE", "postgres")
	v.SetDefault("PGUSER", "")
	v.SetDefault("PGPASSWORD", "")
	v.SetDefault("PGSSLMODE", "require")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("JWT_SECRET", "dev-secret")
	v.SetDefault("JWT_EXPIRATION_HOURS", 12)
	v.SetDefault("JWT_REFRESH_HOURS", 24)
	v.SetDefault("CAJA_PASSWORD", "caja123")
	v.SetDefault("BASCULA_PASSWORD", "bascula123")
	v.SetDefault("SMTP_HOST", "")
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_USER", "")
	v.SetDefault("SMTP_PASSWORD", "")
	v.SetDefault("WORKER_POOL_SIZE", 2)
	v.SetDefault("PDF_STORAGE_PATH", "/tmp/rastro/pdfs")
	v.SetDefault("TARA_CAJA_DEFAULT", "0")
	v.SetDefault("API_URL", "http://localhost:8000")
	v.SetDefault("BASCULA_POR_SERIAL", false)
	v.SetDefault("SERIAL_PORT", "/dev/ttyUSB0")
	v.SetDefault("SERIAL_BAUDRATE", 9600)
	v.SetDefault("BASCULA_USER", "Bascula")
	v.SetDefault("BASCULA_PASS", "")

	// Optional .env file for local development; a missing file is fine
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize resolves the database dialect the same way the deployments expect:
// a Postgres host or URL in the environment selects postgres, otherwise sqlite.
func (c *Config) normalize() error {
	c.DBDriver = strings.ToLower(strings.TrimSpace(c.DBDriver))
	if c.DBDriver == "" {
		if c.DatabaseURL != "" || c.PGHost != "" {
			c.DBDriver = "postgres"
		} else {
			c.DBDriver = "sqlite"
		}
	}
	switch c.DBDriver {
	case "sqlite":
	case "postgres":
		if c.DatabaseURL == "" {
			if c.PGHost == "" {
				return fmt.Errorf("config: DB_DRIVER=postgres requiere DATABASE_URL o PGHOST")
			}
			c.DatabaseURL = c.PostgresDSN()
		}
	default:
		return fmt.Errorf("config: DB_DRIVER desconocido %q", c.DBDriver)
	}
	if _, err := c.TaraDefault(); err != nil {
		return fmt.Errorf("config: TARA_CAJA_DEFAULT: %w", err)
	}
	return nil
}

// PostgresDSN builds a URL-style DSN from the libpq PG* variables.
func (c *Config) PostgresDSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.PGUser, c.PGPassword),
		Host:   fmt.Sprintf("%s:%d", c.PGHost, c.PGPort),
		Path:   "/" + c.PGDatabase,
	}
	q := u.Query()
	q.Set("sslmode", c.PGSSLMode)
	q.Set("connect_timeout", "10")
	u.RawQuery = q.Encode()
	return u.String()
}

// TaraDefault is the per-box tare used when a settlement request omits it.
func (c *Config) TaraDefault() (decimal.Decimal, error) {
	if strings.TrimSpace(c.TaraCajaDefault) == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(c.TaraCajaDefault)
}
