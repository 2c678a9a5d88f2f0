package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	SlackChannelID     string
	DatabasePath       string
	Port               string
	GeminiAPIKey       string
	GeminiTTSModel     string
	WeatherBaseURL     string
	Timezone           string
	AudioEnabled       bool
	HTTPTimeout        time.Duration
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		SlackChannelID:     getEnv("SLACK_CHANNEL_ID", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./family.db"),
		Port:               getEnv("PORT", "3000"),
		GeminiAPIKey:       getEnv("GEMINI_API_KEY", ""),
		GeminiTTSModel:     getEnv("GEMINI_TTS_MODEL", "gemini-2.5-flash-preview-tts"),
		WeatherBaseURL:     getEnv("WEATHER_BASE_URL", "https://api.open-meteo.com/v1/forecast"),
		Timezone:           getEnv("TIMEZONE", "Local"),
		AudioEnabled:       getEnvBool("AUDIO_ENABLED", false),
		HTTPTimeout:        getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
	}
}

// Location resolves Timezone. Every schedule time and date is read in it.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %v", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil || parsed <= 0 {
		log.Printf("Warning: invalid %s=%q, using %s", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}
