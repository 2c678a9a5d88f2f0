package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/diegoclair/family-schedule-bot/internal/domain/entity"
)

const DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

// OpenMeteoClient reads current conditions and yesterday's maximum from the
// Open-Meteo forecast API.
type OpenMeteoClient struct {
	baseURL string
	client  *http.Client
}

type forecastResponse struct {
	Current *struct {
		Temperature float64 `json:"temperature_2m"`
		WeatherCode int     `json:"weather_code"`
	} `json:"current"`
	Daily *struct {
		TemperatureMax []float64 `json:"temperature_2m_max"`
		TemperatureMin []float64 `json:"temperature_2m_min"`
	} `json:"daily"`
}

func NewOpenMeteoClient(baseURL string, timeout time.Duration) *OpenMeteoClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &OpenMeteoClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (c *OpenMeteoClient) FetchConditions(ctx context.Context, lat, lon float64) (*entity.Weather, error) {
	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("current", "temperature_2m,weather_code")
	params.Set("daily", "temperature_2m_max,temperature_2m_min")
	params.Set("past_days", "1") // index 0 is yesterday, index 1 is today
	params.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather API error (%d): %s", resp.StatusCode, string(body))
	}

	var forecast forecastResponse
	if err := json.Unmarshal(body, &forecast); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if forecast.Current == nil || forecast.Daily == nil {
		return nil, fmt.Errorf("weather response is missing current or daily data")
	}

	weather := &entity.Weather{
		Temperature:   forecast.Current.Temperature,
		ConditionCode: forecast.Current.WeatherCode,
		ConditionText: ConditionText(forecast.Current.WeatherCode),
		MinTemp:       valueAt(forecast.Daily.TemperatureMin, 1),
		MaxTemp:       valueAt(forecast.Daily.TemperatureMax, 1),
	}
	if len(forecast.Daily.TemperatureMax) > 0 {
		yesterday := forecast.Daily.TemperatureMax[0]
		weather.YesterdayMaxTemp = &yesterday
	}

	return weather, nil
}

func valueAt(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}

// ConditionText describes a WMO weather interpretation code.
func ConditionText(code int) string {
	switch {
	case code == 0:
		return "clear skies"
	case code >= 1 && code <= 3:
		return "mostly cloudy"
	case code == 45 || code == 48:
		return "foggy"
	case code >= 51 && code <= 55:
		return "drizzle"
	case code >= 61 && code <= 65:
		return "rain"
	case code >= 71 && code <= 77:
		return "snow"
	case code >= 80 && code <= 82:
		return "showers"
	case code >= 95:
		return "thunderstorms"
	}
	return "overcast"
}
