package upstream

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/neexbeast/travel-planner/internal/catalog"
)

// Conditions is the live weather and holiday outlook for a destination.
type Conditions struct {
	Weather  catalog.WeatherInfo
	Holidays []catalog.Holiday
}

// Enricher decorates a recommendation with live conditions for its top place.
type Enricher struct {
	gw *Gateway
}

// NewEnricher constructs an Enricher backed by gw.
func NewEnricher(gw *Gateway) *Enricher {
	return &Enricher{gw: gw}
}

// Conditions fetches weather and holidays for place in parallel.
// Upstream failures are absorbed by the gateway; only a panic is reported.
func (e *Enricher) Conditions(ctx context.Context, place catalog.Destination) (*Conditions, error) {
	g, gCtx := errgroup.WithContext(ctx)

	var weather *WeatherReport
	var holidays *HolidayReport

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("weather enrichment panicked", "recover", r)
				err = fmt.Errorf("weather enrichment panicked: %v", r)
			}
		}()
		weather = e.gw.Weather(gCtx, place.Name)
		return nil
	})

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("holiday enrichment panicked", "recover", r)
				err = fmt.Errorf("holiday enrichment panicked: %v", r)
			}
		}()
		holidays = e.gw.Holidays(gCtx, place.Country)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("enriching %s: %w", place.Name, err)
	}

	return &Conditions{Weather: weather.WeatherInfo, Holidays: holidays.Holidays}, nil
}
