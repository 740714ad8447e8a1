package upstream

import (
	"errors"
	"time"
)

// ErrStayRange is returned when a hotel search checks out on or before check-in.
var ErrStayRange = errors.New("check_out must be after check_in")

// HotelSearch is the validated request body for a hotel search.
type HotelSearch struct {
	Destination string `json:"destination" validate:"required,max=200"`
	CheckIn     string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut    string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Guests      int    `json:"guests" validate:"omitempty,min=1,max=20"`
	Rooms       int    `json:"rooms" validate:"omitempty,min=1,max=10"`
}

// Nights returns the length of the stay.
func (s HotelSearch) Nights() (int, error) {
	in, err := time.Parse(time.DateOnly, s.CheckIn)
	if err != nil {
		return 0, err
	}
	out, err := time.Parse(time.DateOnly, s.CheckOut)
	if err != nil {
		return 0, err
	}
	if !out.After(in) {
		return 0, ErrStayRange
	}
	return int(out.Sub(in).Hours() / 24), nil
}

// Hotel is one hotel offer with nightly prices keyed by currency code.
type Hotel struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Rating        float64            `json:"rating"`
	PricePerNight map[string]float64 `json:"price_per_night"`
	Amenities     []string           `json:"amenities"`
	Location      string             `json:"location"`
	Image         string             `json:"image"`
	BookingLink   string             `json:"booking_link"`
	Source        string             `json:"source"`
}

// HotelReport lists hotel offers for a search.
type HotelReport struct {
	Hotels []Hotel     `json:"hotels"`
	Search HotelSearch `json:"search"`
	Nights int         `json:"nights"`
	Source string      `json:"source"`
}

// MockHotels returns the two canned hotel offers.
func MockHotels() []Hotel {
	return []Hotel{
		{
			ID:            "hotel_1",
			Name:          "Grand Hotel & Spa",
			Rating:        4.8,
			PricePerNight: map[string]float64{"USD": 250, "EUR": 210, "GBP": 180},
			Amenities:     []string{"WiFi", "Pool", "Spa", "Restaurant"},
			Location:      "City Center",
			Image:         "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=800",
			BookingLink:   "https://www.hotels.com",
			Source:        SourceMock,
		},
		{
			ID:            "hotel_2",
			Name:          "Boutique Hotel",
			Rating:        4.5,
			PricePerNight: map[string]float64{"USD": 180, "EUR": 150, "GBP": 130},
			Amenities:     []string{"WiFi", "Breakfast", "Bar"},
			Location:      "Downtown",
			Image:         "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=800",
			BookingLink:   "https://www.booking.com",
			Source:        SourceMock,
		},
	}
}
