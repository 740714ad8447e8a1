package upstream

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"
)

// SourceAmadeus marks flights fetched from Amadeus.
const SourceAmadeus = "Amadeus"

// FlightSearch describes a one-way flight search.
type FlightSearch struct {
	Origin        string `json:"origin" validate:"required,len=3,alpha"`
	Destination   string `json:"destination" validate:"required,len=3,alpha"`
	DepartureDate string `json:"departure_date" validate:"required,datetime=2006-01-02"`
	Passengers    int    `json:"passengers" validate:"omitempty,min=1,max=9"`
}

// Flight is a single flight offer.
type Flight struct {
	ID            string             `json:"id"`
	Airline       string             `json:"airline"`
	FlightNumber  string             `json:"flight_number"`
	DepartureTime string             `json:"departure_time"`
	ArrivalTime   string             `json:"arrival_time"`
	Duration      string             `json:"duration"`
	Price         map[string]float64 `json:"price"`
	Stops         int                `json:"stops"`
	Aircraft      string             `json:"aircraft"`
	BookingLink   string             `json:"booking_link"`
	Source        string             `json:"source"`
}

// FlightClient searches flight offers on the Amadeus self-service API.
// Access tokens are fetched with client credentials and reused until expiry.
type FlightClient struct {
	clientID     string
	clientSecret string
	tokenURL     string
	offersURL    string
	client       *http.Client

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

const (
	amadeusTokenDefault  = "https://test.api.amadeus.com/v1/security/oauth2/token"
	amadeusOffersDefault = "https://test.api.amadeus.com/v2/shopping/flight-offers"
	tokenExpirySlack     = 30 * time.Second
	maxOffers            = 10
)

// NewFlightClient constructs a FlightClient against the Amadeus test environment.
func NewFlightClient(clientID, clientSecret string) *FlightClient {
	return NewFlightClientWithURLs(amadeusTokenDefault, amadeusOffersDefault, clientID, clientSecret)
}

// NewFlightClientWithURLs constructs a FlightClient pointing at custom URLs (for tests).
func NewFlightClientWithURLs(tokenURL, offersURL, clientID, clientSecret string) *FlightClient {
	return &FlightClient{
		clientID:     clientID,
		clientSecret: clientSecret,
		tokenURL:     tokenURL,
		offersURL:    offersURL,
		client:       newHTTPClient(),
	}
}

type amadeusToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// accessToken returns a cached token or fetches a new one.
func (c *FlightClient) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp) {
		return c.token, nil
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	var tok amadeusToken
	if err := doPostForm(ctx, c.client, c.tokenURL, form, &tok); err != nil {
		return "", fmt.Errorf("amadeus token: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("amadeus token: empty access token")
	}

	c.token = tok.AccessToken
	c.tokenExp = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - tokenExpirySlack)
	return c.token, nil
}

type amadeusSegment struct {
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
	Departure   struct {
		At string `json:"at"`
	} `json:"departure"`
	Arrival struct {
		At string `json:"at"`
	} `json:"arrival"`
	Aircraft struct {
		Code string `json:"code"`
	} `json:"aircraft"`
}

type amadeusOffers struct {
	Data []struct {
		ID          string `json:"id"`
		Itineraries []struct {
			Duration string           `json:"duration"`
			Segments []amadeusSegment `json:"segments"`
		} `json:"itineraries"`
		Price struct {
			Currency string `json:"currency"`
			Total    string `json:"total"`
		} `json:"price"`
	} `json:"data"`
}

// Search returns flight offers for s.
func (c *FlightClient) Search(ctx context.Context, s FlightSearch) ([]Flight, error) {
	token, err := c.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	adults := s.Passengers
	if adults < 1 {
		adults = 1
	}

	q := url.Values{}
	q.Set("originLocationCode", s.Origin)
	q.Set("destinationLocationCode", s.Destination)
	q.Set("departureDate", s.DepartureDate)
	q.Set("adults", strconv.Itoa(adults))
	q.Set("max", strconv.Itoa(maxOffers))

	header := http.Header{}
	header.Set("Authorization", "Bearer "+token)

	var raw amadeusOffers
	if err := doGet(ctx, c.client, c.offersURL+"?"+q.Encode(), header, &raw); err != nil {
		return nil, fmt.Errorf("amadeus flight offers %s->%s: %w", s.Origin, s.Destination, err)
	}

	flights := make([]Flight, 0, len(raw.Data))
	for _, offer := range raw.Data {
		if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
			continue
		}
		it := offer.Itineraries[0]
		first := it.Segments[0]
		last := it.Segments[len(it.Segments)-1]

		total, err := strconv.ParseFloat(offer.Price.Total, 64)
		if err != nil {
			slog.Warn("skipping flight offer with unparseable price", "offer_id", offer.ID, "total", offer.Price.Total)
			continue
		}
		cur := offer.Price.Currency
		if cur == "" {
			cur = "USD"
		}

		aircraft := "Commercial Aircraft"
		if first.Aircraft.Code != "" {
			aircraft = first.Aircraft.Code
		}

		flights = append(flights, Flight{
			ID:            "amadeus_" + offer.ID,
			Airline:       first.CarrierCode,
			FlightNumber:  first.CarrierCode + " " + first.Number,
			DepartureTime: first.Departure.At,
			ArrivalTime:   last.Arrival.At,
			Duration:      it.Duration,
			Price:         map[string]float64{cur: total},
			Stops:         len(it.Segments) - 1,
			Aircraft:      aircraft,
			BookingLink:   "https://www.amadeus.com/flights/" + offer.ID,
			Source:        SourceAmadeus,
		})
	}

	return flights, nil
}

// MockFlights returns the canned offers used when Amadeus is unavailable.
func MockFlights(departureDate string) []Flight {
	return []Flight{
		{
			ID:            "mock_1",
			Airline:       "Delta Airlines",
			FlightNumber:  "DL123",
			DepartureTime: departureDate + "T09:00:00",
			ArrivalTime:   departureDate + "T11:30:00",
			Duration:      "2h 30m",
			Price:         map[string]float64{"USD": 450, "EUR": 380, "GBP": 330},
			Stops:         0,
			Aircraft:      "Boeing 737",
			BookingLink:   "https://www.delta.com",
			Source:        SourceMock,
		},
		{
			ID:            "mock_2",
			Airline:       "American Airlines",
			FlightNumber:  "AA456",
			DepartureTime: departureDate + "T14:15:00",
			ArrivalTime:   departureDate + "T16:45:00",
			Duration:      "2h 30m",
			Price:         map[string]float64{"USD": 380, "EUR": 320, "GBP": 280},
			Stops:         1,
			Aircraft:      "Airbus A320",
			BookingLink:   "https://www.aa.com",
			Source:        SourceMock,
		},
	}
}
