package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ecomm/internal/models"
)

// Config is populated from the environment after an optional .env load.
// Defaults reproduce the historical behavior: port 8001, well-known signing
// secret, tokens without expiry.
type Config struct {
	DBHost     string `env:"DB_HOST"     envDefault:"localhost"`
	DBPort     string `env:"DB_PORT"     envDefault:"5432"`
	DBUser     string `env:"DB_USER"     envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:""`
	DBName     string `env:"DB_NAME"     envDefault:"ecomm"`

	Port      string        `env:"PORT"       envDefault:"8001"`
	JWTSecret string        `env:"JWT_SECRET" envDefault:"YOUR_SECRET_KEY"`
	TokenTTL  time.Duration `env:"TOKEN_TTL"  envDefault:"0"`

	KafkaAddress string `env:"KAFKA_ADDRESS" envDefault:""`
	LogLevel     string `env:"LOG_LEVEL"     envDefault:"info"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		slog.Info("no .env file found, using system environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}

// OpenDB connects to postgres and syncs the schema. A connection or migration
// failure is logged and a nil handle returned: the server still starts and the
// affected handlers answer 500 until the database comes back, matching the
// historical startup contract.
func OpenDB(cfg *Config, log *slog.Logger) *gorm.DB {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Error("database connection failed, serving without a database", "error", err)
		return nil
	}

	if err := Migrate(db); err != nil {
		log.Error("schema sync failed", "error", err)
		return db
	}

	log.Info("database synchronized")
	return db
}

// Migrate creates missing tables for all record types without dropping
// existing ones.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.CartItem{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
