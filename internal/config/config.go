// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"inventory-api/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	ServerPort string
	DB         db.Config

	// Auth settings
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	// SeedDatabase enables the idempotent default-user/sample-product seed
	// on startup.
	SeedDatabase bool
}

// LoadConfig loads configuration from environment variables.
// It returns an AppConfig instance or an error if any variable is invalid.
func LoadConfig() (*AppConfig, error) {
	serverPort := getEnv("SERVER_PORT", "8080")

	dbHost := getEnv("DB_HOST", "localhost")
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	dbUser := getEnv("DB_USER", "user")
	dbPassword := getEnv("DB_PASSWORD", "password")
	dbName := getEnv("DB_NAME", "inventorydb")
	dbSSLMode := getEnv("DB_SSLMODE", "disable")

	jwtSecret := getEnv("JWT_SECRET", "your-secret-key-change-in-production")

	expiresHours, err := strconv.Atoi(getEnv("JWT_EXPIRES_HOURS", "24"))
	if err != nil || expiresHours <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRES_HOURS: %q", os.Getenv("JWT_EXPIRES_HOURS"))
	}

	bcryptCost, err := strconv.Atoi(getEnv("BCRYPT_COST", "10"))
	if err != nil || bcryptCost < 4 || bcryptCost > 31 {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %q", os.Getenv("BCRYPT_COST"))
	}

	seed, err := strconv.ParseBool(getEnv("SEED_DATABASE", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_DATABASE: %w", err)
	}

	return &AppConfig{
		ServerPort: serverPort,
		DB: db.Config{
			Host:     dbHost,
			Port:     dbPort,
			User:     dbUser,
			Password: dbPassword,
			DBName:   dbName,
			SSLMode:  dbSSLMode,
		},
		JWTSecret:    jwtSecret,
		TokenTTL:     time.Duration(expiresHours) * time.Hour,
		BcryptCost:   bcryptCost,
		SeedDatabase: seed,
	}, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
