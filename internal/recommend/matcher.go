package recommend

import (
	"math"
	"strings"

	"github.com/neexbeast/travel-planner/internal/catalog"
)

// MinPreferenceFactor is the floor of MatchFactor.
const MinPreferenceFactor = 0.1

// PreferenceRule adjusts the preference factor when Keyword occurs in the
// free-text preferences: Hit is added when Applies holds, Miss otherwise.
type PreferenceRule struct {
	Keyword string
	Applies func(catalog.Destination) bool
	Hit     float64
	Miss    float64
}

func always(catalog.Destination) bool { return true }

func hasTag(tag string) func(catalog.Destination) bool {
	return func(d catalog.Destination) bool { return d.HasTag(tag) }
}

// DefaultPreferenceRules returns the built-in preference table.
func DefaultPreferenceRules() []PreferenceRule {
	return []PreferenceRule{
		{Keyword: "family", Applies: catalog.Destination.FamilyFriendly, Hit: 0.3, Miss: -0.2},
		{Keyword: "romantic", Applies: catalog.Destination.Romantic, Hit: 0.3, Miss: -0.2},
		{Keyword: "budget", Applies: catalog.Destination.BudgetFriendly, Hit: 0.3, Miss: -0.2},
		{Keyword: "solo", Applies: always, Hit: 0.1},
		{Keyword: "food", Applies: hasTag("food"), Hit: 0.2},
		{Keyword: "culture", Applies: hasTag("cultural"), Hit: 0.2},
	}
}

// Matcher turns free-text preferences into a multiplicative score factor.
type Matcher struct {
	rules []PreferenceRule
}

// NewMatcher constructs a Matcher. A nil rules slice uses the defaults.
func NewMatcher(rules []PreferenceRule) *Matcher {
	if rules == nil {
		rules = DefaultPreferenceRules()
	}
	return &Matcher{rules: rules}
}

// MatchFactor returns a factor >= MinPreferenceFactor. Blank preferences yield exactly 1.
func (m *Matcher) MatchFactor(d catalog.Destination, preferences string) float64 {
	text := strings.ToLower(strings.TrimSpace(preferences))
	if text == "" {
		return 1.0
	}

	factor := 1.0
	for _, rule := range m.rules {
		if !strings.Contains(text, rule.Keyword) {
			continue
		}
		if rule.Applies(d) {
			factor += rule.Hit
		} else {
			factor += rule.Miss
		}
	}

	return math.Max(MinPreferenceFactor, factor)
}
