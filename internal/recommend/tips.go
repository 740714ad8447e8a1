package recommend

import "strings"

// travelTips builds advice from the raw request text. Order is stable.
func travelTips(p Preferences) []string {
	var tips []string

	if TravelType(p.TravelType) == Domestic {
		tips = append(tips,
			"Consider booking flights 2-3 months in advance for best prices",
			"Check for local events and festivals during your visit",
		)
	} else {
		tips = append(tips,
			"Book international flights 3-6 months in advance",
			"Check visa requirements and passport validity",
			"Consider travel insurance for international trips",
		)
	}

	dest := strings.ToLower(p.Destination)
	if strings.Contains(dest, "beach") {
		tips = append(tips,
			"Pack sunscreen and beach essentials",
			"Book accommodations early during peak season",
		)
	}
	if strings.Contains(dest, "mountain") {
		tips = append(tips,
			"Check weather conditions before hiking",
			"Pack appropriate gear for altitude changes",
		)
	}

	if strings.Contains(strings.ToLower(p.Budget), "budget") {
		tips = append(tips,
			"Consider staying in hostels or budget accommodations",
			"Eat at local restaurants for authentic and affordable meals",
		)
	}

	prefs := strings.ToLower(p.Preferences)
	if strings.Contains(prefs, "family") {
		tips = append(tips,
			"Look for family-friendly activities and accommodations",
			"Plan activities suitable for all ages",
		)
	}
	if strings.Contains(prefs, "romantic") {
		tips = append(tips,
			"Book romantic accommodations and experiences",
			"Plan special dinners and sunset activities",
		)
	}

	return tips
}
