package infra

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every environment-derived setting. Missing third-party
// credentials are not fatal here: each endpoint surfaces its own
// configuration error per call.
type Config struct {
	Port string

	AIProvider   string // "gemini" | "openai"
	GeminiAPIKey string
	GeminiModel  string
	OpenAIAPIKey string
	OpenAIModel  string

	PlacesAPIKey      string
	UnsplashAccessKey string

	SessionTTL      time.Duration
	UpstreamTimeout time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	return &Config{
		Port: getEnvWithDefault("PORT", "8080"),

		AIProvider:   getEnvWithDefault("AI_PROVIDER", "gemini"),
		GeminiAPIKey: os.Getenv("GOOGLE_GENERATIVE_AI_API_KEY"),
		GeminiModel:  getEnvWithDefault("GEMINI_MODEL", "gemini-2.5-pro"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnvWithDefault("OPENAI_MODEL", ""),

		PlacesAPIKey:      os.Getenv("GOOGLE_PLACES_API_KEY"),
		UnsplashAccessKey: os.Getenv("UNSPLASH_ACCESS_KEY"),

		SessionTTL:      mustDuration("CHAT_SESSION_TTL", 24*time.Hour),
		UpstreamTimeout: mustDuration("UPSTREAM_TIMEOUT", 15*time.Second),
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func mustDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %s", key, value, defaultValue)
		return defaultValue
	}
	return d
}
