package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every configuration parameter of the application.
type Config struct {
	DatabaseURL          string
	ServerPort           int
	JWTSecretKey         string
	OperatorPasswordHash string
	SnapshotDBPath       string

	// Optional state backups to Cloudflare R2. All five R2 values plus the
	// cron spec must be set for backups to run.
	BackupCron        string
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads the configuration from environment variables, optionally
// seeded from a .env file for local development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	passwordHash := os.Getenv("OPERATOR_PASSWORD_HASH")
	if passwordHash == "" {
		return nil, fmt.Errorf("OPERATOR_PASSWORD_HASH environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	snapshotPath := os.Getenv("SNAPSHOT_DB_PATH")
	if snapshotPath == "" {
		snapshotPath = "snapshots.db"
	}

	cfg := &Config{
		DatabaseURL:          dbURL,
		ServerPort:           port,
		JWTSecretKey:         jwtKey,
		OperatorPasswordHash: passwordHash,
		SnapshotDBPath:       snapshotPath,
		BackupCron:           os.Getenv("BACKUP_CRON"),
		R2AccountID:          os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:        os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:    os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:         os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:      os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	return cfg, nil
}

// BackupConfigured reports whether the optional R2 archive is fully set up.
func (c *Config) BackupConfigured() bool {
	return c.BackupCron != "" &&
		c.R2AccountID != "" &&
		c.R2AccessKeyID != "" &&
		c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" &&
		c.R2PublicBaseURL != ""
}
