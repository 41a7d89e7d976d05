package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/exp/slog"
)

const openWeatherBaseURL = "https://api.openweathermap.org"

// WeatherClient fetches current conditions per city. Cities that fail are
// skipped; Readings fails only when not a single city succeeded.
type WeatherClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewWeatherClient(apiKey string) *WeatherClient {
	return &WeatherClient{
		apiKey:  apiKey,
		baseURL: openWeatherBaseURL,
		http:    &http.Client{Timeout: clientTimeout},
	}
}

type openWeatherResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (c *WeatherClient) Readings(ctx context.Context, cities []string) ([]WeatherReading, error) {
	readings := make([]WeatherReading, 0, len(cities))
	var lastErr error

	for _, city := range cities {
		reading, err := c.reading(ctx, city)
		if err != nil {
			lastErr = err
			continue
		}
		readings = append(readings, reading)
	}

	if len(readings) == 0 {
		if lastErr != nil {
			return nil, fmt.Errorf("openweather api: %w", lastErr)
		}
		return nil, fmt.Errorf("openweather api: no cities configured")
	}
	return readings, nil
}

func (c *WeatherClient) reading(ctx context.Context, city string) (WeatherReading, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", c.apiKey)
	query.Set("units", "metric")

	endpoint := c.baseURL + "/data/2.5/weather?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return WeatherReading{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return WeatherReading{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return WeatherReading{}, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, city)
	}

	var body openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return WeatherReading{}, fmt.Errorf("decode response for %s: %w", city, err)
	}

	description := ""
	if len(body.Weather) > 0 {
		description = body.Weather[0].Description
	}

	return WeatherReading{
		City:        city,
		Temperature: body.Main.Temp,
		FeelsLike:   body.Main.FeelsLike,
		Humidity:    body.Main.Humidity,
		Description: description,
		WindSpeed:   body.Wind.Speed,
	}, nil
}

type WeatherAdapter struct {
	client *WeatherClient
	cities []string
	log    *slog.Logger
}

func NewWeatherAdapter(apiKey string, cities []string, log *slog.Logger) *WeatherAdapter {
	a := &WeatherAdapter{
		cities: cities,
		log:    log.With(slog.String("source", OpenWeather)),
	}
	if apiKey != "" {
		a.client = NewWeatherClient(apiKey)
	}
	return a
}

func (a *WeatherAdapter) Fetch(ctx context.Context) WeatherBatch {
	if a.client == nil {
		return WeatherBatch{Readings: GenerateWeather(a.cities), Label: OpenWeather + "_mock"}
	}

	readings, err := a.client.Readings(ctx, a.cities)
	if err != nil {
		a.log.Warn("live fetch failed, serving generated records", "error", err)
		return WeatherBatch{Readings: GenerateWeather(a.cities), Label: OpenWeather + "_mock"}
	}
	return WeatherBatch{Readings: readings, Label: OpenWeather + "_live", Live: true}
}
