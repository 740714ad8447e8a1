package recommend_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/travel-planner/internal/catalog"
	"github.com/neexbeast/travel-planner/internal/currency"
	"github.com/neexbeast/travel-planner/internal/recommend"
)

func newCatalog(t *testing.T, entries ...catalog.Destination) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(entries)
	require.NoError(t, err)
	return c
}

func budget(v float64) *float64 { return &v }

func names(places []recommend.ScoredDestination) []string {
	out := make([]string, len(places))
	for i, p := range places {
		out[i] = p.Name
	}
	return out
}

func TestBudgetDelta(t *testing.T) {
	assert.Equal(t, 0.5, recommend.BudgetDelta(900, 1000))
	assert.Equal(t, 0.5, recommend.BudgetDelta(1000, 1000))
	assert.Equal(t, 0.2, recommend.BudgetDelta(1500, 1000))
	assert.Equal(t, -0.3, recommend.BudgetDelta(1501, 1000))
}

func TestScore_BudgetFitOrdering(t *testing.T) {
	cheap := catalog.Destination{Name: "Cheap", Country: "Peru", Category: catalog.Beach, Rating: 8, CostPerDayUSD: 100, AvgFlightCostUSD: 200}
	pricey := catalog.Destination{Name: "Pricey", Country: "Peru", Category: catalog.Beach, Rating: 8, CostPerDayUSD: 200, AvgFlightCostUSD: 400}
	r := recommend.NewRanker(newCatalog(t, cheap, pricey), currency.DefaultRates(), nil)

	require.Equal(t, 900.0, cheap.TripCostUSD(recommend.DefaultTripDays))
	require.Equal(t, 1800.0, pricey.TripCostUSD(recommend.DefaultTripDays))

	diff := r.Score(cheap, budget(1000), "") - r.Score(pricey, budget(1000), "")
	assert.InDelta(t, 0.8, diff, 1e-9)
}

func TestScore_NoBudgetIsRatingTimesFactor(t *testing.T) {
	d := catalog.Destination{Name: "A", Country: "Peru", Category: catalog.Beach, Rating: 8, Tags: []string{catalog.TagRomantic}}
	r := recommend.NewRanker(newCatalog(t, d), currency.DefaultRates(), nil)

	assert.InDelta(t, 8.0, r.Score(d, nil, ""), 1e-9)
	assert.InDelta(t, 8.0*1.3, r.Score(d, nil, "romantic"), 1e-9)
}

func TestScore_BudgetAppliedBeforeFactor(t *testing.T) {
	d := catalog.Destination{Name: "A", Country: "Peru", Category: catalog.Beach, Rating: 8, CostPerDayUSD: 10, AvgFlightCostUSD: 10, Tags: []string{catalog.TagRomantic}}
	r := recommend.NewRanker(newCatalog(t, d), currency.DefaultRates(), nil)

	assert.InDelta(t, (8.0+0.5)*1.3, r.Score(d, budget(1000), "romantic"), 1e-9)
}

func TestScore_MonotonicInRating(t *testing.T) {
	base := catalog.Destination{Name: "A", Country: "Peru", Category: catalog.Beach, CostPerDayUSD: 100, AvgFlightCostUSD: 300, Tags: []string{"food"}}
	r := recommend.NewRanker(newCatalog(t, base), currency.DefaultRates(), nil)

	for _, prefs := range []string{"", "family", "food", "romantic budget"} {
		for _, b := range []*float64{nil, budget(500), budget(5000)} {
			prev := -1.0
			for rating := 0.0; rating <= 10; rating += 0.5 {
				d := base
				d.Rating = rating
				s := r.Score(d, b, prefs)
				assert.GreaterOrEqual(t, s, prev)
				prev = s
			}
		}
	}
}

func TestCandidates_TravelTypeFilter(t *testing.T) {
	c := newCatalog(t,
		catalog.Destination{Name: "Home Beach", Country: "USA", Category: catalog.Beach, Rating: 8},
		catalog.Destination{Name: "Away Beach", Country: "Fiji", Category: catalog.Beach, Rating: 8},
		catalog.Destination{Name: "Away City", Country: "Italy", Category: catalog.City, Rating: 8},
	)
	r := recommend.NewRanker(c, currency.DefaultRates(), nil)

	dom := r.Candidates(catalog.Beach, recommend.Domestic)
	require.Len(t, dom, 1)
	assert.Equal(t, "Home Beach", dom[0].Name)

	intl := r.Candidates(catalog.Beach, recommend.International)
	require.Len(t, intl, 1)
	assert.Equal(t, "Away Beach", intl[0].Name)

	assert.Len(t, r.Candidates(catalog.Beach, ""), 2)
}

func TestCandidates_BroadensWhenEmpty(t *testing.T) {
	c := newCatalog(t,
		catalog.Destination{Name: "Home Beach", Country: "USA", Category: catalog.Beach, Rating: 8},
		catalog.Destination{Name: "Away City", Country: "Italy", Category: catalog.City, Rating: 8},
		catalog.Destination{Name: "Home City", Country: "USA", Category: catalog.City, Rating: 8},
	)
	r := recommend.NewRanker(c, currency.DefaultRates(), nil)

	got := r.Candidates(catalog.Beach, recommend.International)
	require.Len(t, got, 1)
	assert.Equal(t, "Away City", got[0].Name)

	got = r.Candidates(catalog.Adventure, recommend.Domestic)
	assert.Equal(t, []string{"Home Beach", "Home City"}, []string{got[0].Name, got[1].Name})
}

func TestRank_EmptyWhenNothingQualifies(t *testing.T) {
	c := newCatalog(t, catalog.Destination{Name: "Home", Country: "USA", Category: catalog.Beach, Rating: 8})
	r := recommend.NewRanker(c, currency.DefaultRates(), nil)

	got, err := r.Rank(recommend.Query{Category: catalog.Beach, TravelType: recommend.International, Currency: "USD"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRank_CapsAtLimit(t *testing.T) {
	var entries []catalog.Destination
	for i := 0; i < 20; i++ {
		entries = append(entries, catalog.Destination{
			Name: fmt.Sprintf("Beach %02d", i), Country: "Fiji", Category: catalog.Beach, Rating: float64(i % 10),
		})
	}
	r := recommend.NewRanker(newCatalog(t, entries...), currency.DefaultRates(), nil)

	got, err := r.Rank(recommend.Query{Category: catalog.Beach, Currency: "USD"})
	require.NoError(t, err)
	assert.Len(t, got, recommend.DefaultLimit)
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func TestRank_TiesKeepCatalogOrder(t *testing.T) {
	c := newCatalog(t,
		catalog.Destination{Name: "First", Country: "Fiji", Category: catalog.Beach, Rating: 8},
		catalog.Destination{Name: "Better", Country: "Fiji", Category: catalog.Beach, Rating: 9},
		catalog.Destination{Name: "Second", Country: "Fiji", Category: catalog.Beach, Rating: 8},
		catalog.Destination{Name: "Third", Country: "Fiji", Category: catalog.Beach, Rating: 8},
	)
	r := recommend.NewRanker(c, currency.DefaultRates(), nil)

	got, err := r.Rank(recommend.Query{Category: catalog.Beach, Currency: "USD"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Better", "First", "Second", "Third"}, names(got))
}

func TestRank_Deterministic(t *testing.T) {
	r := recommend.NewRanker(catalog.Default(), currency.DefaultRates(), nil)
	q := recommend.Query{Category: catalog.City, BudgetUSD: budget(2500), TravelType: recommend.International, Preferences: "food culture", Currency: "EUR"}

	first, err := r.Rank(q)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := r.Rank(q)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRank_ConvertsCosts(t *testing.T) {
	c := newCatalog(t, catalog.Destination{Name: "A", Country: "Fiji", Category: catalog.Beach, Rating: 8, CostPerDayUSD: 180, AvgFlightCostUSD: 1000})
	r := recommend.NewRanker(c, currency.DefaultRates(), nil)

	got, err := r.Rank(recommend.Query{Category: catalog.Beach, Currency: "EUR"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 153, got[0].CostDayConverted)
	assert.Equal(t, 850, got[0].FlightCostConverted)
	assert.Equal(t, "EUR", got[0].Currency)
	assert.Equal(t, 180.0, got[0].CostPerDayUSD)
}

func TestRank_NormalisesCurrencyCode(t *testing.T) {
	c := newCatalog(t, catalog.Destination{Name: "A", Country: "Fiji", Category: catalog.Beach, Rating: 8, CostPerDayUSD: 100, AvgFlightCostUSD: 500})
	r := recommend.NewRanker(c, currency.DefaultRates(), nil)

	got, err := r.Rank(recommend.Query{Category: catalog.Beach, Currency: " eur "})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "EUR", got[0].Currency)
	assert.Equal(t, 85, got[0].CostDayConverted)
}

func TestRank_UnsupportedCurrency(t *testing.T) {
	r := recommend.NewRanker(catalog.Default(), currency.DefaultRates(), nil)
	_, err := r.Rank(recommend.Query{Category: catalog.Beach, Currency: "XYZ"})
	assert.ErrorIs(t, err, currency.ErrUnsupportedCurrency)
}

func TestRank_DoesNotMutateCatalog(t *testing.T) {
	cat := catalog.Default()
	before := cat.All()

	r := recommend.NewRanker(cat, currency.DefaultRates(), nil)
	got, err := r.Rank(recommend.Query{Category: catalog.Beach, Currency: "JPY", Preferences: "family"})
	require.NoError(t, err)
	require.NotEmpty(t, got)
	got[0].Tags[0] = "mutated"
	got[0].Rating = 0

	assert.Equal(t, before, cat.All())
}

func TestRank_RomanticBeachScenario(t *testing.T) {
	c := newCatalog(t,
		catalog.Destination{Name: "Plain Isle", Country: "Fiji", Category: catalog.Beach, Rating: 9, CostPerDayUSD: 100, AvgFlightCostUSD: 800},
		catalog.Destination{Name: "Lovers Cove", Country: "Fiji", Category: catalog.Beach, Rating: 9, CostPerDayUSD: 100, AvgFlightCostUSD: 800, Tags: []string{catalog.TagRomantic}},
		catalog.Destination{Name: "Home Shore", Country: "USA", Category: catalog.Beach, Rating: 10, Tags: []string{catalog.TagRomantic}},
		catalog.Destination{Name: "Old Town", Country: "Italy", Category: catalog.City, Rating: 10, Tags: []string{catalog.TagRomantic}},
	)
	r := recommend.NewRanker(c, currency.DefaultRates(), nil)

	got, err := r.Rank(recommend.Query{
		Category:    catalog.Beach,
		BudgetUSD:   budget(2000),
		TravelType:  recommend.International,
		Preferences: "romantic",
		Currency:    "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Lovers Cove", "Plain Isle"}, names(got))
	assert.LessOrEqual(t, len(got), recommend.DefaultLimit)
}
