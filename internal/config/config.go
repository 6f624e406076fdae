package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

type Config struct {
	AppPort  string
	AppEnv   string
	LogLevel string

	DBDriver    string
	DatabaseURL string

	MySQLHost string
	MySQLPort string
	MySQLDB   string
	MySQLUser string
	MySQLPass string

	JWTSecret   string
	TokenTTL    time.Duration
	FrontendURL string

	RedisAddr string
	RedisDB   int

	IdempTTLSecs int

	RateLimitRPS   float64
	RateLimitBurst int
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func Load() *Config {
	c := &Config{
		AppPort:  getenv("PORT", "8080"),
		AppEnv:   getenv("APP_ENV", "development"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		DBDriver:    strings.ToLower(getenv("DB_DRIVER", DriverSQLite)),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		MySQLHost: getenv("MYSQL_HOST", "mysql"),
		MySQLPort: getenv("MYSQL_PORT", "3306"),
		MySQLDB:   getenv("MYSQL_DB", "agrifin"),
		MySQLUser: getenv("MYSQL_USER", "agrifin"),
		MySQLPass: getenv("MYSQL_PASS", "agrifin"),

		JWTSecret:   getenv("JWT_SECRET", "your-secret-key-change-in-production"),
		TokenTTL:    7 * 24 * time.Hour,
		FrontendURL: os.Getenv("FRONTEND_URL"),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		RedisDB:      getint("REDIS_DB", 0),
		IdempTTLSecs: getint("IDEMPOTENCY_TTL_SECONDS", 300),

		RateLimitRPS:   10,
		RateLimitBurst: getint("RATE_LIMIT_BURST", 50),
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.RateLimitRPS = f
		}
	}
	return c
}

func (c *Config) IsProduction() bool { return c.AppEnv == "production" }

func (c *Config) Validate() error {
	if c.AppPort == "" {
		return errors.New("missing PORT")
	}
	switch c.DBDriver {
	case DriverSQLite:
	case DriverMySQL:
		if c.DatabaseURL == "" {
			if c.MySQLHost == "" || c.MySQLPort == "" || c.MySQLDB == "" || c.MySQLUser == "" {
				return errors.New("missing MySQL config (MYSQL_HOST/PORT/DB/USER)")
			}
			// ensure port is valid
			if _, err := net.LookupPort("tcp", c.MySQLPort); err != nil {
				return fmt.Errorf("invalid MYSQL_PORT %q: %w", c.MySQLPort, err)
			}
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or mysql)", c.DBDriver)
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.IsProduction() && c.JWTSecret == "your-secret-key-change-in-production" {
		return errors.New("JWT_SECRET must be changed in production")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

func (c *Config) mysqlAddr() string { return net.JoinHostPort(c.MySQLHost, c.MySQLPort) }

func (c *Config) MySQLDSN() string {
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&charset=utf8mb4,utf8",
		c.MySQLUser, c.MySQLPass, c.mysqlAddr(), c.MySQLDB)
}

// DSN resolves the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DBDriver == DriverMySQL {
		return c.MySQLDSN()
	}
	return "agrifin.db"
}

// AllowedOrigins is the CORS allow-list: local dev servers plus FRONTEND_URL.
func (c *Config) AllowedOrigins() []string {
	out := []string{"http://localhost:3000", "http://localhost:3001", "http://localhost:3002"}
	if c.FrontendURL != "" {
		out = append(out, c.FrontendURL)
	}
	return out
}

func (c *Config) IdempotencyTTL() time.Duration {
	return time.Duration(c.IdempTTLSecs) * time.Second
}
