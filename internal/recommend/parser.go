package recommend

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/neexbeast/travel-planner/internal/catalog"
	"github.com/neexbeast/travel-planner/internal/currency"
)

// DefaultFallbackCategory is used when free text names no known category.
// Kept configurable: it biases unmatched searches towards one category.
const DefaultFallbackCategory = catalog.Beach

// KeywordSet lists the trigger substrings for one category.
type KeywordSet struct {
	Category catalog.Category
	Keywords []string
}

// DefaultKeywords returns the category trigger table. Order matters: the
// first set with a matching keyword wins.
func DefaultKeywords() []KeywordSet {
	return []KeywordSet{
		{Category: catalog.Beach, Keywords: []string{"beach", "ocean", "sea", "coast", "island", "tropical"}},
		{Category: catalog.Mountain, Keywords: []string{"mountain", "ski", "hike", "alpine", "rocky", "peaks"}},
		{Category: catalog.City, Keywords: []string{"city", "urban", "metropolitan", "downtown", "culture", "museum"}},
		{Category: catalog.Adventure, Keywords: []string{"adventure", "extreme", "thrill", "bungee", "skydive", "climb"}},
		{Category: catalog.Relaxing, Keywords: []string{"relax", "peaceful", "quiet", "spa", "wellness", "tranquil"}},
	}
}

var (
	numberPattern   = regexp.MustCompile(`\d+(?:\.\d+)?`)
	groupedThousand = regexp.MustCompile(`(\d),(\d)`)
	thousandScale   = regexp.MustCompile(`\d\s*(?:k|thousand)\b`)
	millionScale    = regexp.MustCompile(`\d\s*(?:mil|million)\b`)
)

// Parser extracts a category and a USD budget from free-text input.
type Parser struct {
	keywords []KeywordSet
	fallback catalog.Category
	rates    currency.Rates
}

// ParserOption customises a Parser.
type ParserOption func(*Parser)

// WithKeywords replaces the category trigger table.
func WithKeywords(sets []KeywordSet) ParserOption {
	return func(p *Parser) { p.keywords = sets }
}

// WithFallbackCategory sets the category used when nothing matches.
func WithFallbackCategory(c catalog.Category) ParserOption {
	return func(p *Parser) { p.fallback = c }
}

// NewParser constructs a Parser that converts budgets with rates.
func NewParser(rates currency.Rates, opts ...ParserOption) *Parser {
	p := &Parser{
		keywords: DefaultKeywords(),
		fallback: DefaultFallbackCategory,
		rates:    rates,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fallback returns the configured fallback category.
func (p *Parser) Fallback() catalog.Category {
	return p.fallback
}

// ParseCategory returns the first category whose keywords occur in raw.
// matched is false when the fallback category was used.
func (p *Parser) ParseCategory(raw string) (c catalog.Category, matched bool) {
	input := strings.ToLower(raw)
	for _, set := range p.keywords {
		for _, kw := range set.Keywords {
			if strings.Contains(input, kw) {
				return set.Category, true
			}
		}
	}
	return p.fallback, false
}

// ParseBudget extracts a budget from raw text stated in code and returns it in USD.
// A nil result means no budget constraint; text without digits is not an error.
// Only an unsupported currency code fails.
func (p *Parser) ParseBudget(raw, code string) (*float64, error) {
	rate, err := p.rates.Rate(code)
	if err != nil {
		return nil, err
	}

	input := strings.ToLower(raw)
	for groupedThousand.MatchString(input) {
		input = groupedThousand.ReplaceAllString(input, "$1$2")
	}

	matches := numberPattern.FindAllString(input, -1)
	if len(matches) == 0 {
		return nil, nil
	}

	scale := 1.0
	switch {
	case thousandScale.MatchString(input):
		scale = 1_000
	case millionScale.MatchString(input):
		scale = 1_000_000
	}

	first, err := strconv.ParseFloat(matches[0], 64)
	if err != nil {
		return nil, nil
	}
	amount := first * scale

	if len(matches) > 1 {
		second, err := strconv.ParseFloat(matches[1], 64)
		if err == nil {
			amount = (amount + second*scale) / 2
		}
	}

	usd := amount / rate
	return &usd, nil
}
