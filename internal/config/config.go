package config

import (
	"fmt"
	"net/mail"
	"os"
	"strconv"
	"strings"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config regroupe les paramètres d'exécution lus depuis l'environnement
type Config struct {
	Port     string
	DBDriver string

	// Postgres: DatabaseURL prime sur les champs DB*
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	SQLitePath string

	DefaultUserEmail string
	SeedOnStart      bool
	Debug            bool
	CORSOrigin       string
}

// LoadConfig lit l'environnement et applique les valeurs par défaut
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DBDriver:         strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBName:           getEnv("DB_NAME", "trilhavital"),
		SQLitePath:       getEnv("SQLITE_PATH", "trilhavital.db"),
		DefaultUserEmail: getEnv("DEFAULT_USER_EMAIL", "user@example.com"),
		CORSOrigin:       getEnv("CORS_ORIGIN", "*"),
	}

	var err error
	if cfg.SeedOnStart, err = getBool("SEED_ON_START", true); err != nil {
		return nil, err
	}
	if cfg.Debug, err = getBool("DEBUG", false); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate vérifie la cohérence de la configuration
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (expected %s or %s)", c.DBDriver, DriverSQLite, DriverPostgres)
	}

	port, err := strconv.Atoi(c.Port)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}

	if _, err := mail.ParseAddress(c.DefaultUserEmail); err != nil {
		return fmt.Errorf("invalid DEFAULT_USER_EMAIL %q: %w", c.DefaultUserEmail, err)
	}

	if c.DBDriver == DriverSQLite && c.SQLitePath == "" {
		return fmt.Errorf("SQLITE_PATH is required with the sqlite driver")
	}
	return nil
}

// PostgresDSN construit la chaîne de connexion Postgres
func (c *Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}
