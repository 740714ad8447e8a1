package catalog

import "slices"

// Lookups holds the canned weather, holiday and best-time tables used when
// live data is unavailable. A Lookups value is read-only after construction.
type Lookups struct {
	weather         map[string]WeatherInfo
	defaultWeather  WeatherInfo
	holidays        map[string][]Holiday
	defaultHolidays []Holiday
	bestTime        map[Category]string
	defaultBestTime string
}

// DefaultLookups returns the built-in lookup tables.
func DefaultLookups() *Lookups {
	return &Lookups{
		weather: map[string]WeatherInfo{
			"Miami Beach, Florida": {
				Current: WeatherNow{Temperature: 28, Condition: "Sunny", Humidity: "75%"},
				Forecast: []ForecastDay{
					{Day: "Today", Temp: 28, Condition: "Sunny"},
					{Day: "Tomorrow", Temp: 29, Condition: "Partly Cloudy"},
					{Day: "Day 3", Temp: 27, Condition: "Light Rain"},
				},
			},
			"Bali, Indonesia": {
				Current: WeatherNow{Temperature: 30, Condition: "Sunny", Humidity: "80%"},
				Forecast: []ForecastDay{
					{Day: "Today", Temp: 30, Condition: "Sunny"},
					{Day: "Tomorrow", Temp: 31, Condition: "Partly Cloudy"},
					{Day: "Day 3", Temp: 29, Condition: "Light Rain"},
				},
			},
			"Tokyo, Japan": {
				Current: WeatherNow{Temperature: 22, Condition: "Clear", Humidity: "65%"},
				Forecast: []ForecastDay{
					{Day: "Today", Temp: 22, Condition: "Clear"},
					{Day: "Tomorrow", Temp: 24, Condition: "Sunny"},
					{Day: "Day 3", Temp: 20, Condition: "Cloudy"},
				},
			},
		},
		defaultWeather: WeatherInfo{
			Current: WeatherNow{Temperature: 22, Condition: "Sunny", Humidity: "65%"},
			Forecast: []ForecastDay{
				{Day: "Today", Temp: 22, Condition: "Sunny"},
				{Day: "Tomorrow", Temp: 24, Condition: "Partly Cloudy"},
				{Day: "Day 3", Temp: 21, Condition: "Light Rain"},
			},
		},
		holidays: map[string][]Holiday{
			"USA": {
				{Name: "Independence Day", Date: "2024-07-04", Description: "National holiday with fireworks"},
				{Name: "Labor Day", Date: "2024-09-02", Description: "End of summer celebration"},
			},
			"Indonesia": {
				{Name: "Independence Day", Date: "2024-08-17", Description: "National independence celebration"},
				{Name: "Nyepi", Date: "2024-03-11", Description: "Balinese day of silence"},
			},
			"Japan": {
				{Name: "Golden Week", Date: "2024-04-29", Description: "Series of national holidays"},
				{Name: "Obon", Date: "2024-08-13", Description: "Buddhist festival honoring ancestors"},
			},
		},
		defaultHolidays: []Holiday{
			{Name: "Local Festival", Date: "2024-08-15", Description: "Annual cultural celebration"},
		},
		bestTime: map[Category]string{
			Beach:     "March to October for best beach weather",
			Mountain:  "June to September for hiking, December to March for skiing",
			City:      "Spring (March to May) or Fall (September to November)",
			Adventure: "June to September for outdoor activities",
			Relaxing:  "April to October for pleasant weather",
		},
		defaultBestTime: "Year-round, but check specific destination for best times",
	}
}

// Weather returns the canned weather for a destination name, or the default.
func (l *Lookups) Weather(name string) WeatherInfo {
	w, ok := l.weather[name]
	if !ok {
		w = l.defaultWeather
	}
	w.Forecast = slices.Clone(w.Forecast)
	return w
}

// DefaultWeather returns the weather used when nothing better is known.
func (l *Lookups) DefaultWeather() WeatherInfo {
	w := l.defaultWeather
	w.Forecast = slices.Clone(w.Forecast)
	return w
}

// Holidays returns the canned holidays for a country, or the default list.
func (l *Lookups) Holidays(country string) []Holiday {
	h, ok := l.holidays[country]
	if !ok {
		h = l.defaultHolidays
	}
	return slices.Clone(h)
}

// DefaultHolidays returns the holidays used when nothing better is known.
func (l *Lookups) DefaultHolidays() []Holiday {
	return slices.Clone(l.defaultHolidays)
}

// BestTime returns best-time-to-visit advice for a category.
func (l *Lookups) BestTime(c Category) string {
	if s, ok := l.bestTime[c]; ok {
		return s
	}
	return l.defaultBestTime
}
