package api

import (
	"context"

	"github.com/neexbeast/travel-planner/internal/catalog"
	"github.com/neexbeast/travel-planner/internal/recommend"
	"github.com/neexbeast/travel-planner/internal/upstream"
)

// Recommender produces ranked recommendations for a preferences request.
type Recommender interface {
	Recommend(p recommend.Preferences) (*recommend.Recommendation, error)
}

// ConditionsEnricher fetches live weather and holidays for a destination.
type ConditionsEnricher interface {
	Conditions(ctx context.Context, place catalog.Destination) (*upstream.Conditions, error)
}

// DestinationLister exposes the destination catalog.
type DestinationLister interface {
	All() []catalog.Destination
	ByCategory(c catalog.Category) []catalog.Destination
}

// CurrencyLister lists the currencies recommendations can be priced in.
type CurrencyLister interface {
	Supported() []string
}

// TravelGateway proxies the external travel APIs with static fallbacks.
type TravelGateway interface {
	Weather(ctx context.Context, location string) *upstream.WeatherReport
	Holidays(ctx context.Context, country string) *upstream.HolidayReport
	Convert(ctx context.Context, amount float64, from, to string) (*upstream.Conversion, error)
	Rates(ctx context.Context, base string) (*upstream.RatesReport, error)
	Flights(ctx context.Context, s upstream.FlightSearch) *upstream.FlightReport
	Hotels(ctx context.Context, s upstream.HotelSearch) (*upstream.HotelReport, error)
	Activities(ctx context.Context, s upstream.ActivitySearch) *upstream.ActivityReport
	Chat(ctx context.Context, history []upstream.ChatMessage, message string) upstream.ChatReply
}

// Pinger reports whether a backing service is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
