// Package config loads application configuration from environment
// variables.
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all runtime configuration values. Each field corresponds
// to an environment variable. The types reflect how the values are used
// in the application: strings for identifiers and secrets, ints for
// durations and costs.
type Config struct {
	Env           string // application environment (e.g. "dev", "prod")
	Port          string // HTTP port to listen on
	StoreDriver   string // entity store backend: "memory", "redis" or "mysql"
	DBUser        string // database username (mysql store only)
	DBPass        string // database password (optional)
	DBHost        string // database host address
	DBPort        string // database port number
	DBName        string // database name
	JWTSecret     string // secret used to sign admin JWTs
	AccessTTLMin  int    // access token time-to-live in minutes
	BcryptCost    int    // bcrypt cost for hashing the admin password
	AdminEmail    string // back-office operator login
	AdminPassword string // back-office operator password (hashed at startup)
	StorePrefix   string // key prefix for the redis entity store
}

// Load reads configuration values from environment variables and returns
// a Config. Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message. Database variables
// are only required when the mysql store driver is selected.
func Load() Config {
	cfg := Config{
		Env:           getenvDefault("APP_ENV", "dev"),
		Port:          must("APP_PORT"),
		StoreDriver:   getenvDefault("STORE_DRIVER", "memory"),
		JWTSecret:     must("JWT_SECRET"),
		AccessTTLMin:  mustInt("ACCESS_TOKEN_TTL_MIN"),
		BcryptCost:    mustInt("BCRYPT_COST"),
		AdminEmail:    must("ADMIN_EMAIL"),
		AdminPassword: must("ADMIN_PASSWORD"),
		StorePrefix:   getenvDefault("STORE_PREFIX", "entities"),
	}
	if cfg.StoreDriver == "mysql" {
		cfg.DBUser = must("DB_USER")
		cfg.DBPass = os.Getenv("DB_PASS")
		cfg.DBHost = must("DB_HOST")
		cfg.DBPort = must("DB_PORT")
		cfg.DBName = must("DB_NAME")
	}
	return cfg
}

// must retrieves the value of a required environment variable. If the
// variable is unset or empty, the application logs a fatal error and
// exits.
func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

// mustInt is like must() but converts the retrieved string into an
// integer. If conversion fails, the application logs a fatal error and
// exits.
func mustInt(key string) int {
	s := must(key)
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
