package upstream

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/neexbeast/travel-planner/internal/cache"
	"github.com/neexbeast/travel-planner/internal/catalog"
	"github.com/neexbeast/travel-planner/internal/currency"
)

// SourceFallback marks canned chat replies.
const SourceFallback = "Fallback"

// weatherFetcher is the interface satisfied by WeatherClient.
type weatherFetcher interface {
	Fetch(ctx context.Context, location string) (*WeatherReport, error)
}

// holidayFetcher is the interface satisfied by HolidayClient.
type holidayFetcher interface {
	Upcoming(ctx context.Context, country string, now time.Time, window time.Duration) ([]catalog.Holiday, error)
}

// currencyConverter is the interface satisfied by CurrencyClient.
type currencyConverter interface {
	Convert(ctx context.Context, amount float64, from, to string) (*Conversion, error)
	Live(ctx context.Context, base string) (*RatesReport, error)
}

// flightSearcher is the interface satisfied by FlightClient.
type flightSearcher interface {
	Search(ctx context.Context, s FlightSearch) ([]Flight, error)
}

// chatReplier is the interface satisfied by ChatClient.
type chatReplier interface {
	Reply(ctx context.Context, history []ChatMessage, message string) (string, error)
}

// HolidayReport lists upcoming holidays for a country.
type HolidayReport struct {
	Country  string            `json:"country"`
	Holidays []catalog.Holiday `json:"holidays"`
	Source   string            `json:"source"`
}

// FlightReport lists flight offers for a search.
type FlightReport struct {
	Flights []Flight `json:"flights"`
	Source  string   `json:"source"`
}

// ChatReply is the assistant's answer to one chat message.
type ChatReply struct {
	Response string `json:"response"`
	Source   string `json:"source"`
}

// Gateway proxies the external travel APIs. Any client left unset, or any
// failing call, degrades to the static tables. Successful upstream responses
// are cached; fallbacks are not.
type Gateway struct {
	weather  weatherFetcher
	holidays holidayFetcher
	currency currencyConverter
	flights  flightSearcher
	chat     chatReplier

	lookups *catalog.Lookups
	rates   currency.Rates
	store   Store
	window  time.Duration
	now     func() time.Time
}

// GatewayOption configures a Gateway.
type GatewayOption func(*Gateway)

// WithWeather enables live weather.
func WithWeather(c weatherFetcher) GatewayOption { return func(g *Gateway) { g.weather = c } }

// WithHolidays enables live holidays.
func WithHolidays(c holidayFetcher) GatewayOption { return func(g *Gateway) { g.holidays = c } }

// WithCurrency enables live currency conversion.
func WithCurrency(c currencyConverter) GatewayOption { return func(g *Gateway) { g.currency = c } }

// WithFlights enables live flight search.
func WithFlights(c flightSearcher) GatewayOption { return func(g *Gateway) { g.flights = c } }

// WithChat enables the chat model.
func WithChat(c chatReplier) GatewayOption { return func(g *Gateway) { g.chat = c } }

// WithStore caches successful upstream responses.
func WithStore(s Store) GatewayOption { return func(g *Gateway) { g.store = s } }

// WithClock overrides time.Now (used in tests).
func WithClock(now func() time.Time) GatewayOption { return func(g *Gateway) { g.now = now } }

// NewGateway constructs a Gateway that falls back to lookups and rates.
func NewGateway(lookups *catalog.Lookups, rates currency.Rates, opts ...GatewayOption) *Gateway {
	g := &Gateway{
		lookups: lookups,
		rates:   rates,
		window:  DefaultHolidayWindow,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Weather returns live weather for location, or the canned report.
func (g *Gateway) Weather(ctx context.Context, location string) *WeatherReport {
	if g.weather == nil {
		return MockWeather(g.lookups, location)
	}

	report, err := cached(ctx, g.store, cache.Key("weather", location), func(ctx context.Context) (*WeatherReport, error) {
		return g.weather.Fetch(ctx, location)
	})
	if err != nil {
		slog.Warn("weather fetch failed, using static data", "location", location, "err", err)
		return MockWeather(g.lookups, location)
	}
	return report
}

// Holidays returns upcoming holidays for country, or the canned list.
func (g *Gateway) Holidays(ctx context.Context, country string) *HolidayReport {
	mock := &HolidayReport{Country: country, Holidays: g.lookups.Holidays(country), Source: SourceMock}
	if g.holidays == nil {
		return mock
	}

	now := g.now()
	key := cache.Key("holidays", country, now.Format(time.DateOnly))
	hs, err := cached(ctx, g.store, key, func(ctx context.Context) ([]catalog.Holiday, error) {
		return g.holidays.Upcoming(ctx, country, now, g.window)
	})
	if err != nil {
		slog.Warn("holiday fetch failed, using static data", "country", country, "err", err)
		return mock
	}
	return &HolidayReport{Country: country, Holidays: hs, Source: SourceCalendarific}
}

// Convert converts amount between currencies. It returns an error only when
// the live call is unavailable and the static table lacks a code.
func (g *Gateway) Convert(ctx context.Context, amount float64, from, to string) (*Conversion, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))

	if g.currency != nil {
		key := cache.Key("currency", from, to, strconv.FormatFloat(amount, 'f', -1, 64))
		conv, err := cached(ctx, g.store, key, func(ctx context.Context) (*Conversion, error) {
			return g.currency.Convert(ctx, amount, from, to)
		})
		if err == nil {
			return conv, nil
		}
		slog.Warn("currency conversion failed, using static rates", "from", from, "to", to, "err", err)
	}

	return MockConversion(g.rates, amount, from, to)
}

// Rates lists exchange rates against base, live when possible and otherwise
// rebased from the static table. It errors only for an unsupported base with
// no live data.
func (g *Gateway) Rates(ctx context.Context, base string) (*RatesReport, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	if base == "" {
		base = "USD"
	}

	if g.currency != nil {
		report, err := cached(ctx, g.store, cache.Key("rates", base), func(ctx context.Context) (*RatesReport, error) {
			return g.currency.Live(ctx, base)
		})
		if err == nil {
			return report, nil
		}
		slog.Warn("live rates failed, using static rates", "base", base, "err", err)
	}

	return MockRates(g.rates, base)
}

// Flights searches flight offers, or returns canned ones.
func (g *Gateway) Flights(ctx context.Context, s FlightSearch) *FlightReport {
	s.Origin = strings.ToUpper(s.Origin)
	s.Destination = strings.ToUpper(s.Destination)

	mock := &FlightReport{Flights: MockFlights(s.DepartureDate), Source: SourceMock}
	if g.flights == nil {
		return mock
	}

	key := cache.Key("flights", s.Origin, s.Destination, s.DepartureDate, strconv.Itoa(s.Passengers))
	fs, err := cached(ctx, g.store, key, func(ctx context.Context) ([]Flight, error) {
		return g.flights.Search(ctx, s)
	})
	if err != nil {
		slog.Warn("flight search failed, using mock offers", "origin", s.Origin, "destination", s.Destination, "err", err)
		return mock
	}
	if len(fs) == 0 {
		return mock
	}
	return &FlightReport{Flights: fs, Source: SourceAmadeus}
}

// Hotels returns hotel offers for s. Guests and rooms default to 1.
func (g *Gateway) Hotels(_ context.Context, s HotelSearch) (*HotelReport, error) {
	if s.Guests == 0 {
		s.Guests = 1
	}
	if s.Rooms == 0 {
		s.Rooms = 1
	}
	nights, err := s.Nights()
	if err != nil {
		return nil, err
	}
	return &HotelReport{Hotels: MockHotels(), Search: s, Nights: nights, Source: SourceMock}, nil
}

// Activities returns bookable activities for s. Participants defaults to 1.
func (g *Gateway) Activities(_ context.Context, s ActivitySearch) *ActivityReport {
	if s.Participants == 0 {
		s.Participants = 1
	}
	return &ActivityReport{Activities: MockActivities(), Search: s, Source: SourceMock}
}

// Chat answers message in the context of history. Chat replies are not cached.
func (g *Gateway) Chat(ctx context.Context, history []ChatMessage, message string) ChatReply {
	if g.chat == nil {
		return ChatReply{Response: FallbackReply, Source: SourceFallback}
	}

	resp, err := g.chat.Reply(ctx, history, message)
	if err != nil {
		slog.Warn("chat completion failed, using fallback reply", "err", err)
		return ChatReply{Response: FallbackReply, Source: SourceFallback}
	}
	return ChatReply{Response: resp, Source: SourceGroq}
}
