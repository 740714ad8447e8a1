package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Category partitions the catalog into destination kinds.
type Category string

const (
	Beach     Category = "beach"
	Mountain  Category = "mountain"
	City      Category = "city"
	Adventure Category = "adventure"
	Relaxing  Category = "relaxing"
)

// Categories returns every known category in canonical order.
func Categories() []Category {
	return []Category{Beach, Mountain, City, Adventure, Relaxing}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

// ParseCategory converts s into a Category, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

// Flag tags carried on destinations.
const (
	TagFamilyFriendly = "family_friendly"
	TagRomantic       = "romantic"
	TagBudgetFriendly = "budget_friendly"
)

// DomesticCountry is the country treated as domestic travel.
const DomesticCountry = "USA"

// Destination is a single catalog record. Costs are USD baselines.
type Destination struct {
	Name             string   `json:"name"`
	Country          string   `json:"country"`
	State            string   `json:"state,omitempty"`
	Category         Category `json:"type"`
	Description      string   `json:"description,omitempty"`
	Image            string   `json:"image,omitempty"`
	Rating           float64  `json:"rating"`
	CostPerDayUSD    float64  `json:"cost_day_usd"`
	AvgFlightCostUSD float64  `json:"avg_flight_cost"`
	Climate          string   `json:"weather,omitempty"`
	Highlights       []string `json:"highlights,omitempty"`
	BestTime         string   `json:"best_time,omitempty"`
	Airport          string   `json:"airport,omitempty"`
	Tags             []string `json:"tags"`
}

// HasTag reports whether the destination carries tag.
func (d Destination) HasTag(tag string) bool {
	return slices.Contains(d.Tags, tag)
}

func (d Destination) FamilyFriendly() bool { return d.HasTag(TagFamilyFriendly) }
func (d Destination) Romantic() bool       { return d.HasTag(TagRomantic) }
func (d Destination) BudgetFriendly() bool { return d.HasTag(TagBudgetFriendly) }

// Domestic reports whether the destination is inside DomesticCountry.
func (d Destination) Domestic() bool {
	return d.Country == DomesticCountry
}

// TripCostUSD estimates a trip of the given length: daily cost times days plus one flight.
func (d Destination) TripCostUSD(days int) float64 {
	return d.CostPerDayUSD*float64(days) + d.AvgFlightCostUSD
}

// Clone returns a deep copy so callers cannot alias catalog slices.
func (d Destination) Clone() Destination {
	d.Tags = slices.Clone(d.Tags)
	d.Highlights = slices.Clone(d.Highlights)
	return d
}

// Validate checks the schema constraints of a single record.
func (d Destination) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("destination has empty name")
	}
	if strings.TrimSpace(d.Country) == "" {
		return fmt.Errorf("destination %s has empty country", d.Name)
	}
	if !d.Category.Valid() {
		return fmt.Errorf("destination %s has unknown category %q", d.Name, d.Category)
	}
	if d.Rating < 0 || d.Rating > 10 {
		return fmt.Errorf("destination %s rating %.1f outside [0,10]", d.Name, d.Rating)
	}
	if d.CostPerDayUSD < 0 || d.AvgFlightCostUSD < 0 {
		return fmt.Errorf("destination %s has negative cost", d.Name)
	}
	return nil
}

// WeatherNow is the current-conditions part of WeatherInfo.
type WeatherNow struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Humidity    string  `json:"humidity"`
}

// ForecastDay is one day of a short forecast.
type ForecastDay struct {
	Day       string  `json:"day"`
	Temp      float64 `json:"temp"`
	Condition string  `json:"condition"`
}

// WeatherInfo holds current conditions plus a short forecast.
type WeatherInfo struct {
	Current  WeatherNow    `json:"current"`
	Forecast []ForecastDay `json:"forecast"`
}

// Holiday is a public holiday or festival.
type Holiday struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
}
