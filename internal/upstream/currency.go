package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/neexbeast/travel-planner/internal/currency"
)

// SourceExchangeRate marks conversions fetched from exchangerate.host.
const SourceExchangeRate = "ExchangeRate-API"

// Conversion is the result of converting Amount from one currency to another.
type Conversion struct {
	From      string  `json:"from_currency"`
	To        string  `json:"to_currency"`
	Amount    float64 `json:"amount"`
	Converted float64 `json:"converted_amount"`
	Rate      float64 `json:"rate"`
	Source    string  `json:"source"`
}

// RatesReport lists how many units of each currency one unit of Base buys.
type RatesReport struct {
	Base   string             `json:"base_currency"`
	Rates  map[string]float64 `json:"rates"`
	Source string             `json:"source"`
}

// CurrencyClient converts amounts via exchangerate.host.
type CurrencyClient struct {
	apiKey  string
	baseURL string
	liveURL string
	client  *http.Client
}

const (
	exchangeRateDefaultURL = "https://api.exchangerate.host/convert"
	exchangeRateLiveURL    = "https://api.exchangerate.host/live"
)

// NewCurrencyClient constructs a CurrencyClient with the given access key.
func NewCurrencyClient(apiKey string) *CurrencyClient {
	return NewCurrencyClientWithURLs(exchangeRateDefaultURL, exchangeRateLiveURL, apiKey)
}

// NewCurrencyClientWithURL constructs a CurrencyClient pointing at a custom base URL (for tests).
// Live rate lookups go to the same URL.
func NewCurrencyClientWithURL(baseURL, apiKey string) *CurrencyClient {
	return NewCurrencyClientWithURLs(baseURL, baseURL, apiKey)
}

// NewCurrencyClientWithURLs sets the convert and live endpoints separately.
func NewCurrencyClientWithURLs(convertURL, liveURL, apiKey string) *CurrencyClient {
	return &CurrencyClient{apiKey: apiKey, baseURL: convertURL, liveURL: liveURL, client: newHTTPClient()}
}

type exchangeRateResponse struct {
	Success *bool   `json:"success"`
	Result  float64 `json:"result"`
	Info    struct {
		Rate  float64 `json:"rate"`
		Quote float64 `json:"quote"`
	} `json:"info"`
	Error struct {
		Info string `json:"info"`
	} `json:"error"`
}

// Convert converts amount between two currency codes.
func (c *CurrencyClient) Convert(ctx context.Context, amount float64, from, to string) (*Conversion, error) {
	q := url.Values{}
	q.Set("access_key", c.apiKey)
	q.Set("from", from)
	q.Set("to", to)
	q.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))

	var raw exchangeRateResponse
	if err := doGet(ctx, c.client, c.baseURL+"?"+q.Encode(), nil, &raw); err != nil {
		return nil, fmt.Errorf("exchangerate convert %s->%s: %w", from, to, err)
	}
	if raw.Success != nil && !*raw.Success {
		return nil, fmt.Errorf("exchangerate convert %s->%s: %s", from, to, raw.Error.Info)
	}

	rate := raw.Info.Rate
	if rate == 0 {
		rate = raw.Info.Quote
	}

	return &Conversion{
		From:      from,
		To:        to,
		Amount:    amount,
		Converted: raw.Result,
		Rate:      rate,
		Source:    SourceExchangeRate,
	}, nil
}

type exchangeRateLive struct {
	Success *bool              `json:"success"`
	Source  string             `json:"source"`
	Quotes  map[string]float64 `json:"quotes"`
	Error   struct {
		Info string `json:"info"`
	} `json:"error"`
}

// Live returns the current quotes against base. Quote keys arrive as
// base+target ("USDEUR") and are returned as the target code alone.
func (c *CurrencyClient) Live(ctx context.Context, base string) (*RatesReport, error) {
	q := url.Values{}
	q.Set("access_key", c.apiKey)
	q.Set("source", base)

	var raw exchangeRateLive
	if err := doGet(ctx, c.client, c.liveURL+"?"+q.Encode(), nil, &raw); err != nil {
		return nil, fmt.Errorf("exchangerate live %s: %w", base, err)
	}
	if raw.Success != nil && !*raw.Success {
		return nil, fmt.Errorf("exchangerate live %s: %s", base, raw.Error.Info)
	}
	if len(raw.Quotes) == 0 {
		return nil, fmt.Errorf("exchangerate live %s: no quotes", base)
	}

	rates := make(map[string]float64, len(raw.Quotes)+1)
	rates[base] = 1
	for pair, rate := range raw.Quotes {
		code := strings.TrimPrefix(pair, base)
		if code == "" || code == pair {
			continue
		}
		rates[code] = rate
	}

	return &RatesReport{Base: base, Rates: rates, Source: SourceExchangeRate}, nil
}

// MockRates rebases the static rate table onto base.
func MockRates(rates currency.Rates, base string) (*RatesReport, error) {
	rebased, err := rates.Rebase(base)
	if err != nil {
		return nil, err
	}
	code, err := rates.Code(base)
	if err != nil {
		return nil, err
	}
	return &RatesReport{Base: code, Rates: rebased, Source: SourceMock}, nil
}

// MockConversion converts with the static rate table.
func MockConversion(rates currency.Rates, amount float64, from, to string) (*Conversion, error) {
	converted, rate, err := rates.Cross(amount, from, to)
	if err != nil {
		return nil, err
	}
	return &Conversion{
		From:      from,
		To:        to,
		Amount:    amount,
		Converted: converted,
		Rate:      rate,
		Source:    SourceMock,
	}, nil
}
