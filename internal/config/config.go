package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/tvidder/tvidder/internal/utils"
)

const DefaultOutputDir = "./downloads"

type Config struct {
	Twitter  TwitterConfig
	Download DownloadConfig
}

type TwitterConfig struct {
	BearerToken string
	APIBaseURL  string
	HTTPTimeout time.Duration
}

type DownloadConfig struct {
	OutputDir string
	Timeout   time.Duration
	ChunkSize int
}

func Load() (*Config, *utils.AppError) {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found, using environment variables")
	}

	cfg := &Config{}

	// Twitter API configuration
	token, ok := getEnvRequired("TWITTER_BEARER_TOKEN")
	if !ok {
		return nil, utils.NewConfigurationError("TWITTER_BEARER_TOKEN")
	}
	cfg.Twitter.BearerToken = token
	cfg.Twitter.APIBaseURL = getEnv("TWITTER_API_BASE_URL", "https://api.twitter.com/2")
	httpTimeout, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "30s"))
	if err != nil {
		return nil, utils.NewValidationError("invalid HTTP_TIMEOUT", map[string]interface{}{
			"cause": err.Error(),
		})
	}
	cfg.Twitter.HTTPTimeout = httpTimeout

	// Download configuration
	cfg.Download.OutputDir = getEnv("OUTPUT_DIR", DefaultOutputDir)
	downloadTimeout, err := time.ParseDuration(getEnv("DOWNLOAD_TIMEOUT", "300s"))
	if err != nil {
		return nil, utils.NewValidationError("invalid DOWNLOAD_TIMEOUT", map[string]interface{}{
			"cause": err.Error(),
		})
	}
	cfg.Download.Timeout = downloadTimeout
	cfg.Download.ChunkSize = getEnvInt("DOWNLOAD_CHUNK_SIZE", 32*1024)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) (string, bool) {
	value := os.Getenv(key)
	if value == "" {
		return "", false
	}
	return value, true
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
