package upstream

// ActivitySearch is the validated request body for an activity search.
type ActivitySearch struct {
	Destination  string `json:"destination" validate:"required,max=200"`
	Date         string `json:"date" validate:"required,datetime=2006-01-02"`
	Participants int    `json:"participants" validate:"omitempty,min=1,max=50"`
}

// Activity is one bookable activity with per-person prices keyed by currency code.
type Activity struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Duration    string             `json:"duration"`
	Price       map[string]float64 `json:"price"`
	Rating      float64            `json:"rating"`
	Category    string             `json:"category"`
	Image       string             `json:"image"`
	BookingLink string             `json:"booking_link"`
	Source      string             `json:"source"`
}

// ActivityReport lists activities for a search.
type ActivityReport struct {
	Activities []Activity     `json:"activities"`
	Search     ActivitySearch `json:"search"`
	Source     string         `json:"source"`
}

// MockActivities returns the two canned activities.
func MockActivities() []Activity {
	return []Activity{
		{
			ID:          "activity_1",
			Name:        "City Walking Tour",
			Description: "Explore the city with a knowledgeable guide",
			Duration:    "3 hours",
			Price:       map[string]float64{"USD": 45, "EUR": 38, "GBP": 33},
			Rating:      4.7,
			Category:    "Cultural",
			Image:       "https://images.unsplash.com/photo-1449824913935-59a10b8d2000?w=800",
			BookingLink: "https://www.viator.com",
			Source:      SourceMock,
		},
		{
			ID:          "activity_2",
			Name:        "Adventure Sports",
			Description: "Thrilling outdoor activities and sports",
			Duration:    "4 hours",
			Price:       map[string]float64{"USD": 80, "EUR": 68, "GBP": 59},
			Rating:      4.9,
			Category:    "Adventure",
			Image:       "https://images.unsplash.com/photo-1551698618-1dfe5d97d256?w=800",
			BookingLink: "https://www.getyourguide.com",
			Source:      SourceMock,
		},
	}
}
