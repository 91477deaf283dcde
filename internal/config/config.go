package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the runtime settings of the server. Values come from the
// environment (optionally seeded from a .env file) and CLI flags.
type Config struct {
	Env         string
	Port        string
	DBDriver    string
	PostgresURL string
	SQLitePath  string
	ToastSecret string
	LogLevel    string
}

func Default() *Config {
	return &Config{
		Env:        "development",
		Port:       "8080",
		DBDriver:   DriverSQLite,
		SQLitePath: "beveragebuddy.db",
		LogLevel:   "info",
	}
}

// LoadDotEnv loads variables from the given files into the process
// environment. Missing files are skipped; existing variables win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "" || c.Env == "development"
}

// Validate checks everything the web server needs.
func (c *Config) Validate() error {
	if err := c.ValidateDatabase(); err != nil {
		return err
	}

	if c.Port == "" {
		return errors.New("PORT must not be empty")
	}

	if c.ToastSecret == "" && !c.IsDevelopment() {
		return errors.New("TOAST_SECRET is required outside development")
	}

	return nil
}

// ValidateDatabase checks the connection settings only. The migrate and
// seed commands need nothing else.
func (c *Config) ValidateDatabase() error {
	switch c.DBDriver {
	case DriverPostgres:
		if c.PostgresURL == "" {
			return errors.New("POSTGRES_URL is required for the postgres driver")
		}
	case DriverSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("unsupported database driver %q", c.DBDriver)
	}
	return nil
}
