package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// NewRouter builds the Chi router with all routes under /api/v1.
// Rate limiting is applied globally per IP at ratePerMinute requests.
func NewRouter(handlers *Handlers, ratePerMinute int, db, redis Pinger, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(CORS())
	r.Use(httprate.LimitByIP(ratePerMinute, time.Minute))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", HealthHandlerFunc(db, redis, log))

		r.Post("/recommendations", handlers.Recommend)
		r.Get("/destinations", handlers.ListDestinations)
		r.Get("/currencies", handlers.ListCurrencies)
		r.Get("/currency/convert", handlers.ConvertCurrency)
		r.Get("/currency/rates", handlers.CurrencyRates)
		r.Get("/weather/{location}", handlers.Weather)
		r.Get("/holidays/{country}", handlers.Holidays)
		r.Post("/flights", handlers.Flights)
		r.Post("/hotels", handlers.Hotels)
		r.Post("/activities", handlers.Activities)
		r.Post("/chat", handlers.Chat)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
