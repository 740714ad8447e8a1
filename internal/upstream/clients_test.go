package upstream_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/travel-planner/internal/upstream"
)

func jsonServer(t *testing.T, fn http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(fn)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestWeatherClient_Fetch(t *testing.T) {
	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "Paris", r.URL.Query().Get("q"))
		assert.Equal(t, "3", r.URL.Query().Get("days"))
		writeJSON(w, map[string]any{
			"location": map[string]any{"name": "Paris", "country": "France"},
			"current": map[string]any{
				"temp_c":    18.5,
				"humidity":  70,
				"condition": map[string]any{"text": "Overcast"},
			},
			"forecast": map[string]any{
				"forecastday": []map[string]any{
					{"date": "2024-06-01", "day": map[string]any{"avgtemp_c": 19.0, "condition": map[string]any{"text": "Cloudy"}}},
					{"date": "2024-06-02", "day": map[string]any{"avgtemp_c": 21.0, "condition": map[string]any{"text": "Sunny"}}},
					{"date": "2024-06-03", "day": map[string]any{"avgtemp_c": 17.0, "condition": map[string]any{"text": "Rain"}}},
				},
			},
		})
	})

	c := upstream.NewWeatherClientWithURL(srv.URL, "test-key")
	report, err := c.Fetch(context.Background(), "Paris")
	require.NoError(t, err)

	assert.Equal(t, "Paris", report.Location)
	assert.Equal(t, "France", report.Country)
	assert.Equal(t, upstream.SourceWeatherAPI, report.Source)
	assert.Equal(t, 18.5, report.Current.Temperature)
	assert.Equal(t, "70%", report.Current.Humidity)
	require.Len(t, report.Forecast, 3)
	assert.Equal(t, "Today", report.Forecast[0].Day)
	assert.Equal(t, "Tomorrow", report.Forecast[1].Day)
	assert.Equal(t, "Day 3", report.Forecast[2].Day)
}

func TestWeatherClient_Non200(t *testing.T) {
	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c := upstream.NewWeatherClientWithURL(srv.URL, "secret")
	_, err := c.Fetch(context.Background(), "Paris")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
	assert.NotContains(t, err.Error(), "secret")
}

func TestClients_TransportErrorHidesKey(t *testing.T) {
	const secret = "SECRET-KEY-123"
	ctx := context.Background()

	_, err := upstream.NewWeatherClientWithURL("http://127.0.0.1:1/forecast.json", secret).Fetch(ctx, "Paris")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), secret)
	assert.Contains(t, err.Error(), "REDACTED")

	_, err = upstream.NewCurrencyClientWithURL("http://127.0.0.1:1/convert", secret).Convert(ctx, 10, "USD", "EUR")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), secret)
}

func TestHolidayClient_Upcoming(t *testing.T) {
	var calls atomic.Int32
	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.Equal(t, "JP", r.URL.Query().Get("country"))
		switch r.URL.Query().Get("year") {
		case "2024":
			writeJSON(w, map[string]any{"response": map[string]any{"holidays": []map[string]any{
				{"name": "Culture Day", "description": "d", "date": map[string]any{"iso": "2024-11-03"}},
				{"name": "Christmas", "description": "d", "date": map[string]any{"iso": "2024-12-25T00:00:00"}},
				{"name": "Obon", "description": "d", "date": map[string]any{"iso": "2024-08-13"}},
			}}})
		case "2025":
			writeJSON(w, map[string]any{"response": map[string]any{"holidays": []map[string]any{
				{"name": "New Year's Day", "description": "d", "date": map[string]any{"iso": "2025-01-01"}},
				{"name": "Golden Week", "description": "d", "date": map[string]any{"iso": "2025-04-29"}},
			}}})
		default:
			t.Errorf("unexpected year %q", r.URL.Query().Get("year"))
		}
	})

	c := upstream.NewHolidayClientWithURL(srv.URL, "test-key")
	now := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
	hs, err := c.Upcoming(context.Background(), "Japan", now, upstream.DefaultHolidayWindow)
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
	require.Len(t, hs, 3)
	assert.Equal(t, "Culture Day", hs[0].Name)
	assert.Equal(t, "2024-12-25", hs[1].Date)
	assert.Equal(t, "New Year's Day", hs[2].Name)
}

func TestHolidayClient_UnknownCountry(t *testing.T) {
	c := upstream.NewHolidayClientWithURL("http://127.0.0.1:1", "k")
	_, err := c.Year(context.Background(), "Atlantis", 2024)
	require.Error(t, err)
}

func TestCountryCode(t *testing.T) {
	code, err := upstream.CountryCode("Indonesia")
	require.NoError(t, err)
	assert.Equal(t, "ID", code)

	code, err = upstream.CountryCode("gb")
	require.NoError(t, err)
	assert.Equal(t, "GB", code)
}

func TestCurrencyClient_Convert(t *testing.T) {
	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "USD", r.URL.Query().Get("from"))
		assert.Equal(t, "EUR", r.URL.Query().Get("to"))
		assert.Equal(t, "100", r.URL.Query().Get("amount"))
		writeJSON(w, map[string]any{"success": true, "result": 92.1, "info": map[string]any{"rate": 0.921}})
	})

	c := upstream.NewCurrencyClientWithURL(srv.URL, "k")
	conv, err := c.Convert(context.Background(), 100, "USD", "EUR")
	require.NoError(t, err)
	assert.Equal(t, 92.1, conv.Converted)
	assert.Equal(t, 0.921, conv.Rate)
	assert.Equal(t, upstream.SourceExchangeRate, conv.Source)
}

func TestCurrencyClient_Unsuccessful(t *testing.T) {
	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"success": false, "error": map[string]any{"info": "invalid access key"}})
	})

	c := upstream.NewCurrencyClientWithURL(srv.URL, "k")
	_, err := c.Convert(context.Background(), 100, "USD", "EUR")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid access key")
}

func TestCurrencyClient_Live(t *testing.T) {
	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/live", r.URL.Path)
		assert.Equal(t, "EUR", r.URL.Query().Get("source"))
		writeJSON(w, map[string]any{
			"success": true,
			"source":  "EUR",
			"quotes":  map[string]any{"EURUSD": 1.08, "EURGBP": 0.86},
		})
	})

	c := upstream.NewCurrencyClientWithURLs(srv.URL+"/convert", srv.URL+"/live", "k")
	report, err := c.Live(context.Background(), "EUR")
	require.NoError(t, err)
	assert.Equal(t, "EUR", report.Base)
	assert.Equal(t, upstream.SourceExchangeRate, report.Source)
	assert.Equal(t, map[string]float64{"EUR": 1, "USD": 1.08, "GBP": 0.86}, report.Rates)
}

func TestCurrencyClient_LiveNoQuotes(t *testing.T) {
	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"success": true, "quotes": map[string]any{}})
	})

	_, err := upstream.NewCurrencyClientWithURL(srv.URL, "k").Live(context.Background(), "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no quotes")
}

func TestFlightClient_SearchReusesToken(t *testing.T) {
	var tokenCalls atomic.Int32
	tokenSrv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))
		assert.Equal(t, "id", r.PostForm.Get("client_id"))
		writeJSON(w, map[string]any{"access_token": "tok", "expires_in": 1799})
	})
	offersSrv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "JFK", r.URL.Query().Get("originLocationCode"))
		assert.Equal(t, "2", r.URL.Query().Get("adults"))
		writeJSON(w, map[string]any{"data": []map[string]any{{
			"id": "1",
			"itineraries": []map[string]any{{
				"duration": "PT9H",
				"segments": []map[string]any{
					{"carrierCode": "AF", "number": "7", "departure": map[string]any{"at": "2024-06-01T18:00:00"}, "arrival": map[string]any{"at": "2024-06-02T02:00:00"}, "aircraft": map[string]any{"code": "77W"}},
					{"carrierCode": "AF", "number": "1000", "departure": map[string]any{"at": "2024-06-02T03:00:00"}, "arrival": map[string]any{"at": "2024-06-02T07:30:00"}},
				},
			}},
			"price": map[string]any{"currency": "EUR", "total": "612.40"},
		}}})
	})

	c := upstream.NewFlightClientWithURLs(tokenSrv.URL, offersSrv.URL, "id", "secret")
	s := upstream.FlightSearch{Origin: "JFK", Destination: "CDG", DepartureDate: "2024-06-01", Passengers: 2}

	flights, err := c.Search(context.Background(), s)
	require.NoError(t, err)
	_, err = c.Search(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, int32(1), tokenCalls.Load())
	require.Len(t, flights, 1)
	f := flights[0]
	assert.Equal(t, "AF 7", f.FlightNumber)
	assert.Equal(t, "2024-06-02T07:30:00", f.ArrivalTime)
	assert.Equal(t, 1, f.Stops)
	assert.Equal(t, "77W", f.Aircraft)
	assert.Equal(t, 612.40, f.Price["EUR"])
	assert.Equal(t, upstream.SourceAmadeus, f.Source)
}

func TestFlightClient_SkipsUnpricedOffers(t *testing.T) {
	tokenSrv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"access_token": "tok", "expires_in": 1799})
	})
	offer := func(id, total string) map[string]any {
		return map[string]any{
			"id": id,
			"itineraries": []map[string]any{{
				"duration": "PT7H",
				"segments": []map[string]any{
					{"carrierCode": "BA", "number": id, "departure": map[string]any{"at": "2024-06-01T10:00:00"}, "arrival": map[string]any{"at": "2024-06-01T17:00:00"}},
				},
			}},
			"price": map[string]any{"currency": "USD", "total": total},
		}
	}
	offersSrv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"data": []map[string]any{offer("1", "n/a"), offer("2", "399.00")}})
	})

	c := upstream.NewFlightClientWithURLs(tokenSrv.URL, offersSrv.URL, "id", "secret")
	flights, err := c.Search(context.Background(), upstream.FlightSearch{Origin: "JFK", Destination: "LHR", DepartureDate: "2024-06-01"})
	require.NoError(t, err)

	require.Len(t, flights, 1)
	assert.Equal(t, "amadeus_2", flights[0].ID)
	assert.Equal(t, 399.0, flights[0].Price["USD"])
}

func TestFlightClient_TokenFailure(t *testing.T) {
	tokenSrv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c := upstream.NewFlightClientWithURLs(tokenSrv.URL, "http://127.0.0.1:1", "id", "secret")
	_, err := c.Search(context.Background(), upstream.FlightSearch{Origin: "JFK", Destination: "CDG", DepartureDate: "2024-06-01"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amadeus token")
}

func TestMockFlights(t *testing.T) {
	fs := upstream.MockFlights("2024-06-01")
	require.Len(t, fs, 2)
	assert.Equal(t, "DL123", fs[0].FlightNumber)
	assert.Equal(t, 450.0, fs[0].Price["USD"])
	assert.Equal(t, "2024-06-01T09:00:00", fs[0].DepartureTime)
	assert.Equal(t, 380.0, fs[1].Price["USD"])
}

func TestChatClient_Reply(t *testing.T) {
	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer k", r.Header.Get("Authorization"))

		var body struct {
			Model    string                 `json:"model"`
			Messages []upstream.ChatMessage `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "llama3-70b-8192", body.Model)
		if !assert.Len(t, body.Messages, 3) {
			return
		}
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "assistant", body.Messages[1].Role)
		assert.Equal(t, "beach please", body.Messages[2].Content)

		writeJSON(w, map[string]any{"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": "How about Bali?"}},
		}})
	})

	c := upstream.NewChatClientWithURL(srv.URL, "k")
	history := []upstream.ChatMessage{{Role: "assistant", Content: "Where to?"}}
	reply, err := c.Reply(context.Background(), history, "beach please")
	require.NoError(t, err)
	assert.Equal(t, "How about Bali?", reply)
}

func TestChatClient_EmptyChoices(t *testing.T) {
	srv := jsonServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"choices": []any{}})
	})

	c := upstream.NewChatClientWithURL(srv.URL, "k")
	_, err := c.Reply(context.Background(), nil, "hi")
	require.Error(t, err)
}
