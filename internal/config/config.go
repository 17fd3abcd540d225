package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	DataDir     string // local state: sqlite db, snapshot files, dead letters
	ContentDir  string // static quest content tables
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		DataDir:     getEnv("DATA_DIR", DefaultDataDir),
		ContentDir:  getEnv("CONTENT_DIR", DefaultContentDir),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// DBPath returns the path of the primary sqlite database file
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, DBFileName)
}

// SnapshotDir returns the directory holding the secondary file medium's copies
func (c *Config) SnapshotDir() string {
	return filepath.Join(c.DataDir, SnapshotDirName)
}

// DeadLetterPath returns the path of the event dead letter file
func (c *Config) DeadLetterPath() string {
	return filepath.Join(c.DataDir, DeadLetterFileName)
}
