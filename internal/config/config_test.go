package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"SLACK_BOT_TOKEN", "SLACK_SIGNING_SECRET", "SLACK_CHANNEL_ID", "DATABASE_PATH", "PORT",
		"GEMINI_API_KEY", "GEMINI_TTS_MODEL", "WEATHER_BASE_URL", "TIMEZONE", "AUDIO_ENABLED", "HTTP_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "./family.db", cfg.DatabasePath)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "gemini-2.5-flash-preview-tts", cfg.GeminiTTSModel)
	assert.Equal(t, "https://api.open-meteo.com/v1/forecast", cfg.WeatherBaseURL)
	assert.Equal(t, "Local", cfg.Timezone)
	assert.False(t, cfg.AudioEnabled)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("AUDIO_ENABLED", "true")
	t.Setenv("HTTP_TIMEOUT", "5s")
	t.Setenv("TIMEZONE", "UTC")

	cfg := Load()

	assert.Equal(t, "C123", cfg.SlackChannelID)
	assert.True(t, cfg.AudioEnabled)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)

	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("AUDIO_ENABLED", "maybe")
	t.Setenv("HTTP_TIMEOUT", "soon")

	cfg := Load()

	assert.False(t, cfg.AudioEnabled)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
}

func TestConfig_Location_Invalid(t *testing.T) {
	cfg := &Config{Timezone: "Mars/Olympus"}
	_, err := cfg.Location()
	assert.Error(t, err)
}
