package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/neexbeast/travel-planner/internal/catalog"
)

// Data sources reported alongside proxied payloads.
const (
	SourceMock       = "Mock Data"
	SourceWeatherAPI = "WeatherAPI.com"
)

// WeatherReport is weather for a named location.
type WeatherReport struct {
	Location string `json:"location"`
	Country  string `json:"country"`
	catalog.WeatherInfo
	Source string `json:"source"`
}

// WeatherClient fetches current conditions and a short forecast from WeatherAPI.com.
type WeatherClient struct {
	apiKey  string
	baseURL string
	days    int
	client  *http.Client
}

const weatherAPIDefaultURL = "https://api.weatherapi.com/v1/forecast.json"

// NewWeatherClient constructs a WeatherClient with the given API key.
func NewWeatherClient(apiKey string) *WeatherClient {
	return NewWeatherClientWithURL(weatherAPIDefaultURL, apiKey)
}

// NewWeatherClientWithURL constructs a WeatherClient pointing at a custom base URL (for tests).
func NewWeatherClientWithURL(baseURL, apiKey string) *WeatherClient {
	return &WeatherClient{apiKey: apiKey, baseURL: baseURL, days: 3, client: newHTTPClient()}
}

type weatherAPIResponse struct {
	Location struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Humidity  int     `json:"humidity"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
	Forecast struct {
		ForecastDay []struct {
			Date string `json:"date"`
			Day  struct {
				AvgTempC  float64 `json:"avgtemp_c"`
				Condition struct {
					Text string `json:"text"`
				} `json:"condition"`
			} `json:"day"`
		} `json:"forecastday"`
	} `json:"forecast"`
}

// Fetch retrieves weather for location.
func (c *WeatherClient) Fetch(ctx context.Context, location string) (*WeatherReport, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("q", location)
	q.Set("days", strconv.Itoa(c.days))
	q.Set("aqi", "no")
	q.Set("alerts", "no")

	var raw weatherAPIResponse
	if err := doGet(ctx, c.client, c.baseURL+"?"+q.Encode(), nil, &raw); err != nil {
		return nil, fmt.Errorf("weatherapi fetch for %s: %w", location, err)
	}

	name := raw.Location.Name
	if name == "" {
		name = location
	}

	report := &WeatherReport{
		Location: name,
		Country:  raw.Location.Country,
		WeatherInfo: catalog.WeatherInfo{
			Current: catalog.WeatherNow{
				Temperature: raw.Current.TempC,
				Condition:   raw.Current.Condition.Text,
				Humidity:    strconv.Itoa(raw.Current.Humidity) + "%",
			},
			Forecast: make([]catalog.ForecastDay, 0, len(raw.Forecast.ForecastDay)),
		},
		Source: SourceWeatherAPI,
	}
	for i, fd := range raw.Forecast.ForecastDay {
		report.Forecast = append(report.Forecast, catalog.ForecastDay{
			Day:       dayLabel(i),
			Temp:      fd.Day.AvgTempC,
			Condition: fd.Day.Condition.Text,
		})
	}

	return report, nil
}

// dayLabel names forecast days the way the canned tables do.
func dayLabel(i int) string {
	switch i {
	case 0:
		return "Today"
	case 1:
		return "Tomorrow"
	default:
		return "Day " + strconv.Itoa(i+1)
	}
}

// MockWeather builds the fallback report for location from the canned tables.
func MockWeather(lookups *catalog.Lookups, location string) *WeatherReport {
	return &WeatherReport{
		Location:    location,
		Country:     "Unknown",
		WeatherInfo: lookups.Weather(location),
		Source:      SourceMock,
	}
}
