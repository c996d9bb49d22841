package content

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const defaultWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

// Weather reads current conditions for a ZIP code from OpenWeather and
// formats them as panel lines.
type Weather struct {
	baseURL    string
	apiKey     string
	zipCode    string
	httpClient httpDoer
}

// WeatherConfig controls the weather provider.
type WeatherConfig struct {
	BaseURL    string
	APIKey     string
	ZipCode    string
	HTTPClient *http.Client
}

// NewWeather builds the weather provider.
func NewWeather(cfg WeatherConfig) *Weather {
	base := cfg.BaseURL
	if base == "" {
		base = defaultWeatherBaseURL
	}
	return &Weather{
		baseURL:    strings.TrimSuffix(base, "/"),
		apiKey:     cfg.APIKey,
		zipCode:    cfg.ZipCode,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

type weatherResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (w *Weather) Fetch(ctx context.Context) ([]string, error) {
	url := fmt.Sprintf("%s/weather?zip=%s,us&appid=%s&units=imperial", w.baseURL, w.zipCode, w.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather: unexpected status %d", resp.StatusCode)
	}

	var payload weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	conditions := ""
	if len(payload.Weather) > 0 {
		conditions = strings.ToUpper(payload.Weather[0].Main)
	}
	city := strings.ToUpper(payload.Name)
	lines := []string{
		fmt.Sprintf("%s %.0fF %s", city, payload.Main.Temp, conditions),
		fmt.Sprintf("FEELS LIKE %.0fF  WIND %.0f MPH", payload.Main.FeelsLike, payload.Wind.Speed),
	}
	return lines, nil
}
