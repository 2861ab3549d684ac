package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Paths  PathsConfig
	Parser ParserConfig
	Watch  WatchConfig
}

// PathsConfig holds file-layout configuration.
type PathsConfig struct {
	TextDir       string // directory of *_extracted_text.json files
	ReferencePath string // parsed abilities dictionary
	OutDir        string // where faction JSON documents are written
}

// ParserConfig holds parse-pipeline knobs.
type ParserConfig struct {
	Workers int // page-parse fan-out; <=1 means sequential
}

// WatchConfig holds watch-mode knobs.
type WatchConfig struct {
	Debounce time.Duration
}

// LoadConfig loads configuration from environment variables. CLI flags
// override these in the commands.
func LoadConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			TextDir:       getEnv("CARDS_TEXT_DIR", ""),
			ReferencePath: getEnv("CARDS_REFERENCE", "parsed_abilities.json"),
			OutDir:        getEnv("CARDS_OUT_DIR", ""),
		},
		Parser: ParserConfig{
			Workers: getEnvAsInt("CARDS_WORKERS", 1),
		},
		Watch: WatchConfig{
			Debounce: getEnvAsDuration("CARDS_WATCH_DEBOUNCE", 500*time.Millisecond),
		},
	}
}

// Helper functions for environment variable parsing.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
