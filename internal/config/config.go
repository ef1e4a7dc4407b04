package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	LogDir      string
	// Converter credentials forwarded to backends that use an LLM or a
	// hosted API (markitdown image description, marker LLM mode).
	ConverterAPIKey  string
	ConverterBaseURL string
	// Unstructured hosted partition API
	UnstructuredAPIKey  string
	UnstructuredBaseURL string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		LogDir:      getEnv("LOG_DIR", ""),
		// Converter credentials
		ConverterAPIKey:  getEnv("CONVERTER_API_KEY", ""),
		ConverterBaseURL: getEnv("CONVERTER_BASE_URL", ""),
		// Unstructured API
		UnstructuredAPIKey:  getEnv("UNSTRUCTURED_API_KEY", ""),
		UnstructuredBaseURL: getEnv("UNSTRUCTURED_BASE_URL", "https://api.unstructuredapp.io"),
		// Debug flags - default to true in dev/test, false in production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true" // Enable DEBUG in dev/test by default
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
