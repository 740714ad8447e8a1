package recommend

import (
	"sort"

	"github.com/neexbeast/travel-planner/internal/catalog"
	"github.com/neexbeast/travel-planner/internal/currency"
)

const (
	// DefaultLimit caps the number of ranked results.
	DefaultLimit = 6
	// DefaultTripDays is the trip length assumed when estimating total cost.
	DefaultTripDays = 7
)

// Budget-fit adjustments added to a destination's rating.
const (
	withinBudgetBonus = 0.5
	nearBudgetBonus   = 0.2
	overBudgetPenalty = -0.3
	nearBudgetRatio   = 1.5
)

// TravelType restricts candidates to domestic or international destinations.
type TravelType string

const (
	Domestic      TravelType = "domestic"
	International TravelType = "international"
)

func (t TravelType) allows(d catalog.Destination) bool {
	switch t {
	case Domestic:
		return d.Domestic()
	case International:
		return !d.Domestic()
	default:
		return true
	}
}

// Query is the parsed input to a ranking call.
type Query struct {
	Category    catalog.Category
	BudgetUSD   *float64
	TravelType  TravelType
	Preferences string
	Currency    string
}

// ScoredDestination is a request-scoped copy of a catalog entry with its
// score and costs converted to the requested currency.
type ScoredDestination struct {
	catalog.Destination
	Score               float64 `json:"score"`
	CostDayConverted    int     `json:"cost_day_converted"`
	FlightCostConverted int     `json:"flight_cost_converted"`
	Currency            string  `json:"currency"`
}

// Ranker scores catalog entries against a Query.
type Ranker struct {
	catalog  *catalog.Catalog
	rates    currency.Rates
	matcher  *Matcher
	limit    int
	tripDays int
}

// NewRanker constructs a Ranker over an injected catalog and rate table.
func NewRanker(cat *catalog.Catalog, rates currency.Rates, matcher *Matcher) *Ranker {
	if matcher == nil {
		matcher = NewMatcher(nil)
	}
	return &Ranker{
		catalog:  cat,
		rates:    rates,
		matcher:  matcher,
		limit:    DefaultLimit,
		tripDays: DefaultTripDays,
	}
}

// Candidates returns the entries in category allowed by travel type. If none
// qualify it broadens to every category, still honouring travel type.
func (r *Ranker) Candidates(category catalog.Category, tt TravelType) []catalog.Destination {
	out := r.catalog.Filter(func(d catalog.Destination) bool {
		return d.Category == category && tt.allows(d)
	})
	if len(out) > 0 {
		return out
	}
	return r.catalog.Filter(tt.allows)
}

// BudgetDelta returns the additive adjustment for a trip costing totalCost
// against budget, both in USD.
func BudgetDelta(totalCost, budget float64) float64 {
	switch {
	case totalCost <= budget:
		return withinBudgetBonus
	case totalCost <= budget*nearBudgetRatio:
		return nearBudgetBonus
	default:
		return overBudgetPenalty
	}
}

// Score computes (rating + budget delta) * preference factor.
func (r *Ranker) Score(d catalog.Destination, budgetUSD *float64, preferences string) float64 {
	score := d.Rating
	if budgetUSD != nil {
		score += BudgetDelta(d.TripCostUSD(r.tripDays), *budgetUSD)
	}
	return score * r.matcher.MatchFactor(d, preferences)
}

// Rank returns at most the configured limit of candidates, highest score
// first. Ties keep catalog order.
func (r *Ranker) Rank(q Query) ([]ScoredDestination, error) {
	code, err := r.rates.Code(q.Currency)
	if err != nil {
		return nil, err
	}

	candidates := r.Candidates(q.Category, q.TravelType)
	scored := make([]ScoredDestination, 0, len(candidates))
	for _, d := range candidates {
		scored = append(scored, ScoredDestination{
			Destination: d,
			Score:       r.Score(d, q.BudgetUSD, q.Preferences),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > r.limit {
		scored = scored[:r.limit]
	}

	for i := range scored {
		day, err := r.rates.Convert(scored[i].CostPerDayUSD, code)
		if err != nil {
			return nil, err
		}
		flight, err := r.rates.Convert(scored[i].AvgFlightCostUSD, code)
		if err != nil {
			return nil, err
		}
		scored[i].CostDayConverted = day
		scored[i].FlightCostConverted = flight
		scored[i].Currency = code
	}

	return scored, nil
}
