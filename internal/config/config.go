package config

import (
	"os"
	"strconv"
)

// Config contains all runtime settings for the people directory service.
type Config struct {
	Addr        string
	DatabaseURL string
	TableName   string

	ProviderURL string

	// First boot inserts SeedBatches * SeedBatchSize records.
	SeedBatches   int
	SeedBatchSize int
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Addr:          envOrDefault("PEOPLE_ADDR", ":8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		TableName:     envOrDefault("PEOPLE_TABLE", "people"),
		ProviderURL:   envOrDefault("PROVIDER_URL", "https://randomuser.me/api/"),
		SeedBatches:   envIntOrDefault("SEED_BATCHES", 10),
		SeedBatchSize: envIntOrDefault("SEED_BATCH_SIZE", 100),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
