package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// Example ENV equivalent:
//
//	LEDGER_INPUT=trades.json
//	JOURNAL_ENABLED=false
//	SERVER_PORT=8080
//	RATE_LIMIT_PER_MINUTE=60
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=postgres
//	POSTGRES_PASSWORD=postgres
//	POSTGRES_DB=mateprofit
//	POSTGRES_SSLMODE=disable
//	MIGRATIONS_DIR=db/migrations
type Config struct {
	Ledger   LedgerConfig   // profit calculation settings
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings (run journal)
}

// LedgerConfig holds settings for the calculate mode.
type LedgerConfig struct {
	Input          string // default trade file read by --mode calculate
	JournalEnabled bool   // record CLI runs in the profit_runs table
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string // TCP port the HTTP server listens on (e.g., "8080")
	RateLimitPerMinute int    // requests allowed per client IP per minute
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host, Port, User, Password, DBName, SSLMode: connection parameters.
//   - MigrationsDir: directory holding goose SQL migrations.
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host          string
	Port          int
	User          string
	Password      string
	DBName        string
	SSLMode       string
	MigrationsDir string
	URL           string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read everywhere else.
var AppConfig Config

// LoadConfig initializes the global AppConfig.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables end up empty, validateConfig() terminates the app.
func LoadConfig() {
	viper.SetDefault("LEDGER_INPUT", "trades.json")
	viper.SetDefault("JOURNAL_ENABLED", false)

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "mateprofit")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")
	viper.SetDefault("MIGRATIONS_DIR", "db/migrations")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	viper.AutomaticEnv()

	AppConfig = Config{
		Ledger: LedgerConfig{
			Input:          viper.GetString("LEDGER_INPUT"),
			JournalEnabled: viper.GetBool("JOURNAL_ENABLED"),
		},
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Postgres: PostgresConfig{
			Host:          viper.GetString("POSTGRES_HOST"),
			Port:          viper.GetInt("POSTGRES_PORT"),
			User:          viper.GetString("POSTGRES_USER"),
			Password:      viper.GetString("POSTGRES_PASSWORD"),
			DBName:        viper.GetString("POSTGRES_DB"),
			SSLMode:       viper.GetString("POSTGRES_SSLMODE"),
			MigrationsDir: viper.GetString("MIGRATIONS_DIR"),
		},
	}

	AppConfig.Postgres.URL = AppConfig.Postgres.DSN()

	validateConfig()
}

// DSN builds the PostgreSQL connection string for database/sql.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User,
		p.Password,
		p.Host,
		p.Port,
		p.DBName,
		p.SSLMode,
	)
}

// validateConfig terminates the application when required values are missing.
//
// Behavior:
//   - Collects every missing field name.
//   - Logs them and exits via log.Fatalf().
func validateConfig() {
	if missing := missingFields(AppConfig); len(missing) > 0 {
		log.Fatalf("❌ Missing required environment variables: %v\n", missing)
	}
}

func missingFields(cfg Config) []string {
	var missing []string

	if cfg.Ledger.Input == "" {
		missing = append(missing, "LEDGER_INPUT")
	}
	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Server.RateLimitPerMinute <= 0 {
		missing = append(missing, "RATE_LIMIT_PER_MINUTE")
	}
	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}

	return missing
}
