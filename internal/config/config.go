package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Load reads the .env file when present. Missing files are fine: plain
// environment variables take over in deployment.
func Load() {
	_ = godotenv.Load()
}

// DataDir returns the directory for the database and learner data.
func DataDir() string {
	return getenv("DATA_DIR", "data")
}

// ArticlesDir returns the directory holding article texts.
func ArticlesDir() string {
	return getenv("ARTICLES_DIR", "articles")
}

// ReviewStrategy returns the configured scheduling strategy name.
func ReviewStrategy() string {
	return getenv("REVIEW_STRATEGY", "sm2")
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
