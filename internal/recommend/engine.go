package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/neexbeast/travel-planner/internal/catalog"
	"github.com/neexbeast/travel-planner/internal/currency"
)

// Preferences is the raw request a traveller submits.
type Preferences struct {
	Destination     string `json:"destination" validate:"required,max=200"`
	Budget          string `json:"budget" validate:"max=100"`
	TravelDates     string `json:"travelDates" validate:"max=100"`
	CurrentLocation string `json:"currentLocation" validate:"max=200"`
	Preferences     string `json:"preferences" validate:"max=500"`
	Currency        string `json:"currency" validate:"omitempty,len=3,alpha"`
	TravelType      string `json:"travelType" validate:"omitempty,oneof=domestic international"`
}

// withDefaults fills the fields the client may omit.
func (p Preferences) withDefaults() Preferences {
	p.Currency = strings.ToUpper(strings.TrimSpace(p.Currency))
	if p.Currency == "" {
		p.Currency = currency.USD
	}
	p.TravelType = strings.ToLower(strings.TrimSpace(p.TravelType))
	if p.TravelType == "" {
		p.TravelType = string(International)
	}
	return p
}

// Summary aggregates the ranked places.
type Summary struct {
	TotalDestinations int      `json:"totalDestinations"`
	AverageCost       float64  `json:"averageCost"`
	AverageFlightCost float64  `json:"averageFlightCost"`
	BestTimeToVisit   string   `json:"bestTimeToVisit"`
	TravelTips        []string `json:"travelTips"`
	Currency          string   `json:"currency"`
	TravelType        string   `json:"travelType"`
	MatchedType       string   `json:"matchedType"`
}

// Recommendation is the assembled answer to a Preferences request.
type Recommendation struct {
	SearchID string              `json:"searchId"`
	Places   []ScoredDestination `json:"places"`
	Weather  catalog.WeatherInfo `json:"weather"`
	Holidays []catalog.Holiday   `json:"holidays"`
	Summary  Summary             `json:"summary"`
}

// Engine runs the parse → rank → convert → assemble pipeline.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	parser  *Parser
	ranker  *Ranker
	lookups *catalog.Lookups
	newID   func() string
}

// Option customises an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	parserOpts []ParserOption
	rules      []PreferenceRule
	limit      int
	tripDays   int
	newID      func() string
}

// WithFallback sets the category used when the destination text matches nothing.
func WithFallback(c catalog.Category) Option {
	return func(cfg *engineConfig) {
		cfg.parserOpts = append(cfg.parserOpts, WithFallbackCategory(c))
	}
}

// WithLimit caps the number of places returned.
func WithLimit(n int) Option {
	return func(cfg *engineConfig) { cfg.limit = n }
}

// WithRules replaces the preference rule table.
func WithRules(rules []PreferenceRule) Option {
	return func(cfg *engineConfig) { cfg.rules = rules }
}

// WithIDGenerator replaces the search ID generator.
func WithIDGenerator(fn func() string) Option {
	return func(cfg *engineConfig) { cfg.newID = fn }
}

// NewEngine wires an Engine over injected, read-only data.
func NewEngine(cat *catalog.Catalog, rates currency.Rates, lookups *catalog.Lookups, opts ...Option) *Engine {
	cfg := engineConfig{
		limit:    DefaultLimit,
		tripDays: DefaultTripDays,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	ranker := NewRanker(cat, rates, NewMatcher(cfg.rules))
	if cfg.limit > 0 {
		ranker.limit = cfg.limit
	}
	ranker.tripDays = cfg.tripDays

	return &Engine{
		parser:  NewParser(rates, cfg.parserOpts...),
		ranker:  ranker,
		lookups: lookups,
		newID:   cfg.newID,
	}
}

// Parser exposes the engine's preference parser.
func (e *Engine) Parser() *Parser { return e.parser }

// Recommend ranks destinations for p and assembles the response.
// The only error it returns wraps currency.ErrUnsupportedCurrency.
func (e *Engine) Recommend(p Preferences) (*Recommendation, error) {
	p = p.withDefaults()

	category, _ := e.parser.ParseCategory(p.Destination)

	budgetUSD, err := e.parser.ParseBudget(p.Budget, p.Currency)
	if err != nil {
		return nil, fmt.Errorf("parsing budget: %w", err)
	}

	places, err := e.ranker.Rank(Query{
		Category:    category,
		BudgetUSD:   budgetUSD,
		TravelType:  TravelType(p.TravelType),
		Preferences: p.Preferences,
		Currency:    p.Currency,
	})
	if err != nil {
		return nil, fmt.Errorf("ranking destinations: %w", err)
	}

	rec := &Recommendation{
		SearchID: e.newID(),
		Places:   places,
		Weather:  e.lookups.DefaultWeather(),
		Holidays: e.lookups.DefaultHolidays(),
		Summary: Summary{
			TotalDestinations: len(places),
			BestTimeToVisit:   e.lookups.BestTime(category),
			TravelTips:        travelTips(p),
			Currency:          p.Currency,
			TravelType:        p.TravelType,
			MatchedType:       string(category),
		},
	}

	if len(places) > 0 {
		top := places[0]
		rec.Weather = e.lookups.Weather(top.Name)
		rec.Holidays = e.lookups.Holidays(top.Country)

		var day, flight int
		for _, pl := range places {
			day += pl.CostDayConverted
			flight += pl.FlightCostConverted
		}
		n := float64(len(places))
		rec.Summary.AverageCost = round2(float64(day) / n)
		rec.Summary.AverageFlightCost = round2(float64(flight) / n)
	}

	return rec, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
