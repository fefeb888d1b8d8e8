package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joshu-sajeev/trendplanner/internal/logger"
	"github.com/joshu-sajeev/trendplanner/migrations"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-envconfig"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	User           string        `env:"POSTGRES_USER,default=postgres"`
	Password       string        `env:"POSTGRES_PASSWORD,default=postgres"`
	Host           string        `env:"POSTGRES_HOST,default=postgres"`
	Port           string        `env:"POSTGRES_PORT,default=5432"`
	Database       string        `env:"POSTGRES_DB,default=trendplanner"`
	MaxRetries     int           `env:"DB_MAX_RETRIES,default=10"`
	RetryDelay     time.Duration `env:"DB_RETRY_DELAY,default=2s"`
	LogLevelString string        `env:"DB_LOG_LEVEL,default=warn"`
	LogLevel       gormlogger.LogLevel
}

// to help with testing
var envProcess = envconfig.Process

func LoadConfigFromEnv(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envProcess(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.LogLevel = ParseLogLevel(cfg.LogLevelString)
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if strings.TrimSpace(cfg.User) == "" {
		errors = append(errors, "POSTGRES_USER is required")
	}
	if strings.TrimSpace(cfg.Database) == "" {
		errors = append(errors, "POSTGRES_DB is required")
	}
	if strings.TrimSpace(cfg.Host) == "" {
		errors = append(errors, "POSTGRES_HOST is required")
	}

	if strings.TrimSpace(cfg.Port) == "" {
		errors = append(errors, "POSTGRES_PORT is required")
	} else if port, err := strconv.Atoi(cfg.Port); err != nil {
		errors = append(errors, "POSTGRES_PORT must be a valid number")
	} else if port < 1 || port > 65535 {
		errors = append(errors, "POSTGRES_PORT must be between 1 and 65535")
	}

	if cfg.MaxRetries < 0 {
		errors = append(errors, "DB_MAX_RETRIES must be non-negative")
	}
	if cfg.RetryDelay <= 0 {
		errors = append(errors, "DB_RETRY_DELAY must be positive")
	}
	if cfg.RetryDelay > 10*time.Minute {
		errors = append(errors, "DB_RETRY_DELAY must not exceed 10 minutes")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "; "))
	}
	return nil
}

// DSN renders the connection string shared by gorm and goose.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.Host, c.User, c.Password, c.Database, c.Port,
	)
}

// ConnectDB establishes connection to PostgreSQL, retrying until the
// server answers a ping or MaxRetries is reached.
func ConnectDB(cfg *Config, log *logger.Logger) (*gorm.DB, error) {
	if cfg == nil {
		loadedCfg, err := LoadConfigFromEnv(context.Background())
		if err != nil {
			return nil, err
		}
		cfg = loadedCfg
	}

	log.Info("Connecting to database", "user", cfg.User, "host", cfg.Host, "port", cfg.Port, "db", cfg.Database)

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(cfg.LogLevel),
	}

	for i := 0; i < cfg.MaxRetries; i++ {
		gdb, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
		if err == nil {
			sqlDB, dbErr := gdb.DB()
			if dbErr == nil {
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				pingErr := sqlDB.PingContext(ctx)
				cancel()

				if pingErr == nil {
					log.Info("Database connected", "attempt", i+1)

					sqlDB.SetMaxIdleConns(10)
					sqlDB.SetMaxOpenConns(50)
					sqlDB.SetConnMaxLifetime(time.Hour)

					return gdb, nil
				}
				err = pingErr
			} else {
				err = dbErr
			}
		}

		log.Warn("Database not ready", "attempt", i+1, "max", cfg.MaxRetries,
			"reason", simplifyDBError(err), "retry_in", cfg.RetryDelay)

		time.Sleep(cfg.RetryDelay)
	}

	return nil, fmt.Errorf("database connection failed after %d attempts", cfg.MaxRetries)
}

// simplifyDBError returns a user-friendly error message
func simplifyDBError(err error) string {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "password authentication failed"):
		return "invalid database credentials"
	case strings.Contains(msg, "connect"):
		return "cannot reach database server"
	case strings.Contains(msg, "timeout"):
		return "database connection timed out"
	case strings.Contains(msg, "SASL"):
		return "authentication error"
	}

	return "database error"
}

// Convert string to logger.LogLevel
func ParseLogLevel(levelStr string) gormlogger.LogLevel {
	switch strings.ToLower(levelStr) {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// MigrateModels auto-migrates the given models. Used for sqlite in tests
// and as a fallback when goose migrations are disabled.
func MigrateModels(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}
	return nil
}
