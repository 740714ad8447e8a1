package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/neexbeast/travel-planner/internal/catalog"
	"github.com/neexbeast/travel-planner/internal/currency"
	"github.com/neexbeast/travel-planner/internal/recommend"
	"github.com/neexbeast/travel-planner/internal/upstream"
)

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	recommender  Recommender
	enricher     ConditionsEnricher
	destinations DestinationLister
	currencies   CurrencyLister
	gateway      TravelGateway
	validate     *validator.Validate
	log          *slog.Logger
}

// NewHandlers constructs Handlers. enricher may be nil, in which case
// recommendations carry the static weather and holiday tables.
func NewHandlers(rec Recommender, enricher ConditionsEnricher, dests DestinationLister, currencies CurrencyLister, gw TravelGateway, log *slog.Logger) *Handlers {
	return &Handlers{
		recommender:  rec,
		enricher:     enricher,
		destinations: dests,
		currencies:   currencies,
		gateway:      gw,
		validate:     newValidator(),
		log:          log,
	}
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// Recommend handles POST /api/v1/recommendations.
func (h *Handlers) Recommend(w http.ResponseWriter, r *http.Request) {
	var prefs recommend.Preferences
	if err := h.decodeAndValidate(w, r, &prefs); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := h.recommender.Recommend(prefs)
	if err != nil {
		if errors.Is(err, currency.ErrUnsupportedCurrency) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("recommendation failed", "request_id", middleware.GetReqID(r.Context()), "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.enricher != nil && len(rec.Places) > 0 {
		top := rec.Places[0].Destination
		cond, err := h.enricher.Conditions(r.Context(), top)
		if err != nil {
			h.log.Warn("enrichment failed, keeping static conditions", "place", top.Name, "err", err)
		} else {
			rec.Weather = cond.Weather
			rec.Holidays = cond.Holidays
		}
	}

	h.log.Info("recommendation served",
		"request_id", middleware.GetReqID(r.Context()),
		"search_id", rec.SearchID,
		"matched_type", rec.Summary.MatchedType,
		"places", len(rec.Places),
	)
	writeJSON(w, http.StatusOK, rec)
}

type destinationList struct {
	Destinations []catalog.Destination `json:"destinations"`
	Count        int                   `json:"count"`
}

// ListDestinations handles GET /api/v1/destinations?category=.
func (h *Handlers) ListDestinations(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("category")

	var dests []catalog.Destination
	if strings.TrimSpace(raw) == "" {
		dests = h.destinations.All()
	} else {
		c, err := catalog.ParseCategory(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		dests = h.destinations.ByCategory(c)
	}

	writeJSON(w, http.StatusOK, destinationList{Destinations: dests, Count: len(dests)})
}

// ListCurrencies handles GET /api/v1/currencies.
func (h *Handlers) ListCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"base":       currency.USD,
		"currencies": h.currencies.Supported(),
	})
}

// ConvertCurrency handles GET /api/v1/currency/convert.
func (h *Handlers) ConvertCurrency(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	amount, err := strconv.ParseFloat(q.Get("amount"), 64)
	if err != nil || amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		writeError(w, http.StatusBadRequest, "amount must be a non-negative number")
		return
	}
	from := q.Get("from_currency")
	if from == "" {
		from = currency.USD
	}
	to := q.Get("to_currency")
	if to == "" {
		writeError(w, http.StatusBadRequest, "to_currency is required")
		return
	}

	conv, err := h.gateway.Convert(r.Context(), amount, from, to)
	if err != nil {
		if errors.Is(err, currency.ErrUnsupportedCurrency) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("currency conversion failed", "from", from, "to", to, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, conv)
}

// CurrencyRates handles GET /api/v1/currency/rates?base_currency=.
func (h *Handlers) CurrencyRates(w http.ResponseWriter, r *http.Request) {
	base := r.URL.Query().Get("base_currency")

	report, err := h.gateway.Rates(r.Context(), base)
	if err != nil {
		if errors.Is(err, currency.ErrUnsupportedCurrency) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("exchange rates failed", "base", base, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// pathParam returns the decoded value of a route parameter. Chi matches
// against RawPath when the request carries one, leaving escapes intact.
func pathParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return strings.TrimSpace(v), nil
	}
	decoded, err := url.PathUnescape(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(decoded), nil
}

// Weather handles GET /api/v1/weather/{location}.
func (h *Handlers) Weather(w http.ResponseWriter, r *http.Request) {
	location, err := pathParam(r, "location")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid location")
		return
	}
	if location == "" {
		writeError(w, http.StatusBadRequest, "location is required")
		return
	}
	writeJSON(w, http.StatusOK, h.gateway.Weather(r.Context(), location))
}

// Holidays handles GET /api/v1/holidays/{country}.
func (h *Handlers) Holidays(w http.ResponseWriter, r *http.Request) {
	country, err := pathParam(r, "country")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid country")
		return
	}
	if country == "" {
		writeError(w, http.StatusBadRequest, "country is required")
		return
	}
	writeJSON(w, http.StatusOK, h.gateway.Holidays(r.Context(), country))
}

// Flights handles POST /api/v1/flights.
func (h *Handlers) Flights(w http.ResponseWriter, r *http.Request) {
	var s upstream.FlightSearch
	if err := h.decodeAndValidate(w, r, &s); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if s.Passengers == 0 {
		s.Passengers = 1
	}
	writeJSON(w, http.StatusOK, h.gateway.Flights(r.Context(), s))
}

// Hotels handles POST /api/v1/hotels.
func (h *Handlers) Hotels(w http.ResponseWriter, r *http.Request) {
	var s upstream.HotelSearch
	if err := h.decodeAndValidate(w, r, &s); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.gateway.Hotels(r.Context(), s)
	if err != nil {
		if errors.Is(err, upstream.ErrStayRange) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("hotel search failed", "destination", s.Destination, "err", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// Activities handles POST /api/v1/activities.
func (h *Handlers) Activities(w http.ResponseWriter, r *http.Request) {
	var s upstream.ActivitySearch
	if err := h.decodeAndValidate(w, r, &s); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.gateway.Activities(r.Context(), s))
}

type chatRequest struct {
	Message             string                 `json:"message" validate:"required,max=2000"`
	ConversationHistory []upstream.ChatMessage `json:"conversation_history" validate:"max=50,dive"`
}

// Chat handles POST /api/v1/chat.
func (h *Handlers) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := h.decodeAndValidate(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, h.gateway.Chat(r.Context(), req.ConversationHistory, req.Message))
}

// HealthHandlerFunc returns an http.HandlerFunc that checks redis and, when
// configured, database connectivity. A nil db is reported as "disabled".
func HealthHandlerFunc(db Pinger, redis Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "disabled"
		redisStatus := "ok"

		if db != nil {
			dbStatus = "ok"
			if err := db.Ping(ctx); err != nil {
				log.Error("health check: db ping failed", "err", err)
				dbStatus = "error"
				status = http.StatusServiceUnavailable
			}
		}

		if err := redis.Ping(ctx); err != nil {
			log.Error("health check: redis ping failed", "err", err)
			redisStatus = "error"
			status = http.StatusServiceUnavailable
		}

		overall := "ok"
		if status != http.StatusOK {
			overall = "degraded"
		}
		writeJSON(w, status, map[string]string{
			"status": overall,
			"db":     dbStatus,
			"redis":  redisStatus,
		})
	}
}
