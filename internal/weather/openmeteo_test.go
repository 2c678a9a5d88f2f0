package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMeteoClient_FetchConditions(t *testing.T) {
	t.Run("Should map current and daily values", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, "37.5665", q.Get("latitude"))
			assert.Equal(t, "126.978", q.Get("longitude"))
			assert.Equal(t, "temperature_2m,weather_code", q.Get("current"))
			assert.Equal(t, "temperature_2m_max,temperature_2m_min", q.Get("daily"))
			assert.Equal(t, "1", q.Get("past_days"))
			assert.Equal(t, "auto", q.Get("timezone"))

			_, _ = w.Write([]byte(`{
				"current": {"temperature_2m": 11.4, "weather_code": 61},
				"daily": {
					"temperature_2m_max": [9.5, 14.2, 15.0],
					"temperature_2m_min": [1.0, 3.3, 4.0]
				}
			}`))
		}))
		defer server.Close()

		client := NewOpenMeteoClient(server.URL, 5*time.Second)
		weather, err := client.FetchConditions(context.Background(), 37.5665, 126.9780)
		require.NoError(t, err)

		assert.Equal(t, 11.4, weather.Temperature)
		assert.Equal(t, 61, weather.ConditionCode)
		assert.Equal(t, "rain", weather.ConditionText)
		assert.Equal(t, 14.2, weather.MaxTemp)
		assert.Equal(t, 3.3, weather.MinTemp)
		require.NotNil(t, weather.YesterdayMaxTemp)
		assert.Equal(t, 9.5, *weather.YesterdayMaxTemp)
	})

	t.Run("Should fail on a non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":true,"reason":"bad latitude"}`))
		}))
		defer server.Close()

		client := NewOpenMeteoClient(server.URL, 5*time.Second)
		_, err := client.FetchConditions(context.Background(), 200, 0)
		assert.ErrorContains(t, err, "400")
	})

	t.Run("Should fail when data is missing", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer server.Close()

		client := NewOpenMeteoClient(server.URL, 5*time.Second)
		_, err := client.FetchConditions(context.Background(), 37.5, 127)
		assert.Error(t, err)
	})
}

func TestConditionText(t *testing.T) {
	tests := map[int]string{
		0:  "clear skies",
		2:  "mostly cloudy",
		45: "foggy",
		53: "drizzle",
		63: "rain",
		66: "overcast",
		75: "snow",
		81: "showers",
		96: "thunderstorms",
	}
	for code, want := range tests {
		assert.Equal(t, want, ConditionText(code), "code %d", code)
	}
}
