package currency

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ErrUnsupportedCurrency is returned when a code has no entry in the rate table.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// USD is the base currency every rate is expressed against.
const USD = "USD"

// Rates maps a currency code to its value relative to one USD.
type Rates map[string]float64

// DefaultRates returns the static rate table.
func DefaultRates() Rates {
	return Rates{
		"USD": 1.0,
		"EUR": 0.85,
		"GBP": 0.73,
		"JPY": 110.0,
		"CAD": 1.25,
		"AUD": 1.35,
		"CHF": 0.88,
		"SGD": 1.35,
	}
}

// Rate returns the rate for code. Codes are matched case-insensitively.
func (r Rates) Rate(code string) (float64, error) {
	rate, ok := r[normalize(code)]
	if !ok || rate <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
	return rate, nil
}

// Code returns the canonical form of a supported code.
func (r Rates) Code(code string) (string, error) {
	if _, err := r.Rate(code); err != nil {
		return "", err
	}
	return normalize(code), nil
}

// Rebase expresses every rate relative to one unit of base.
func (r Rates) Rebase(base string) (Rates, error) {
	baseRate, err := r.Rate(base)
	if err != nil {
		return nil, err
	}
	out := make(Rates, len(r))
	for code, rate := range r {
		out[code] = rate / baseRate
	}
	return out, nil
}

// Supports reports whether code has a rate.
func (r Rates) Supports(code string) bool {
	_, err := r.Rate(code)
	return err == nil
}

// Supported returns the known codes sorted alphabetically.
func (r Rates) Supported() []string {
	codes := make([]string, 0, len(r))
	for code := range r {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Convert expresses a USD amount in code, rounded to the nearest whole unit.
func (r Rates) Convert(amountUSD float64, code string) (int, error) {
	rate, err := r.Rate(code)
	if err != nil {
		return 0, err
	}
	return int(math.Round(amountUSD * rate)), nil
}

// ToUSD converts an amount stated in code into USD.
func (r Rates) ToUSD(amount float64, code string) (float64, error) {
	rate, err := r.Rate(code)
	if err != nil {
		return 0, err
	}
	return amount / rate, nil
}

// Cross converts between two arbitrary codes, rounding to cents.
// It also returns the effective from→to rate.
func (r Rates) Cross(amount float64, from, to string) (converted, rate float64, err error) {
	fromRate, err := r.Rate(from)
	if err != nil {
		return 0, 0, err
	}
	toRate, err := r.Rate(to)
	if err != nil {
		return 0, 0, err
	}
	rate = toRate / fromRate
	return math.Round(amount*rate*100) / 100, rate, nil
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
