package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/neexbeast/travel-planner/internal/catalog"
)

// SourceCalendarific marks holidays fetched from Calendarific.
const SourceCalendarific = "Calendarific"

// DefaultHolidayWindow is how far ahead Upcoming looks.
const DefaultHolidayWindow = 90 * 24 * time.Hour

// countryCodes maps catalog country names to ISO 3166-1 alpha-2 codes.
var countryCodes = map[string]string{
	"usa":           "US",
	"united states": "US",
	"indonesia":     "ID",
	"maldives":      "MV",
	"thailand":      "TH",
	"mexico":        "MX",
	"switzerland":   "CH",
	"canada":        "CA",
	"new zealand":   "NZ",
	"japan":         "JP",
	"france":        "FR",
	"spain":         "ES",
	"greece":        "GR",
}

// CountryCode resolves a country name or two-letter code to an ISO code.
func CountryCode(country string) (string, error) {
	c := strings.TrimSpace(country)
	if code, ok := countryCodes[strings.ToLower(c)]; ok {
		return code, nil
	}
	if len(c) == 2 {
		return strings.ToUpper(c), nil
	}
	return "", fmt.Errorf("no country code known for %q", country)
}

// HolidayClient fetches public holidays from Calendarific.
type HolidayClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

const calendarificDefaultURL = "https://calendarific.com/api/v2/holidays"

// NewHolidayClient constructs a HolidayClient with the given API key.
func NewHolidayClient(apiKey string) *HolidayClient {
	return NewHolidayClientWithURL(calendarificDefaultURL, apiKey)
}

// NewHolidayClientWithURL constructs a HolidayClient pointing at a custom base URL (for tests).
func NewHolidayClientWithURL(baseURL, apiKey string) *HolidayClient {
	return &HolidayClient{apiKey: apiKey, baseURL: baseURL, client: newHTTPClient()}
}

type calendarificResponse struct {
	Response struct {
		Holidays []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Date        struct {
				ISO string `json:"iso"`
			} `json:"date"`
		} `json:"holidays"`
	} `json:"response"`
}

// Year retrieves every holiday of year in country.
func (c *HolidayClient) Year(ctx context.Context, country string, year int) ([]catalog.Holiday, error) {
	code, err := CountryCode(country)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("country", code)
	q.Set("year", strconv.Itoa(year))

	var raw calendarificResponse
	if err := doGet(ctx, c.client, c.baseURL+"?"+q.Encode(), nil, &raw); err != nil {
		return nil, fmt.Errorf("calendarific fetch for %s %d: %w", code, year, err)
	}

	out := make([]catalog.Holiday, 0, len(raw.Response.Holidays))
	for _, h := range raw.Response.Holidays {
		date := h.Date.ISO
		if len(date) > 10 {
			date = date[:10]
		}
		out = append(out, catalog.Holiday{Name: h.Name, Date: date, Description: h.Description})
	}
	return out, nil
}

// Upcoming returns holidays in country between now and now+window, in date order.
func (c *HolidayClient) Upcoming(ctx context.Context, country string, now time.Time, window time.Duration) ([]catalog.Holiday, error) {
	end := now.Add(window)

	all, err := c.Year(ctx, country, now.Year())
	if err != nil {
		return nil, err
	}
	if end.Year() != now.Year() {
		next, err := c.Year(ctx, country, end.Year())
		if err != nil {
			return nil, err
		}
		all = append(all, next...)
	}

	from := now.Format(time.DateOnly)
	to := end.Format(time.DateOnly)

	upcoming := make([]catalog.Holiday, 0, len(all))
	for _, h := range all {
		if h.Date >= from && h.Date <= to {
			upcoming = append(upcoming, h)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool { return upcoming[i].Date < upcoming[j].Date })

	return upcoming, nil
}
