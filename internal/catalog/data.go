package catalog

const (
	imgBeach    = "https://images.unsplash.com/photo-1514214246283-d427a95c5d2f?w=400"
	imgScenic   = "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400"
	imgBali     = "https://images.unsplash.com/photo-1537953773345-d172ccf13cf1?w=400"
	imgMaldives = "https://images.unsplash.com/photo-1514282401047-d79a71a590e8?w=400"
	imgCancun   = "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=400"
	imgNYC      = "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9?w=400"
	imgTokyo    = "https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=400"
	imgParis    = "https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=400"
)

func defaultDestinations() []Destination {
	return []Destination{
		// beach
		{
			Name: "Miami Beach, Florida", Country: "USA", State: "FL", Category: Beach,
			Description:   "Famous for its Art Deco architecture, white sand beaches, and vibrant nightlife",
			Image:         imgBeach,
			Rating:        8.7,
			CostPerDayUSD: 180, AvgFlightCostUSD: 250,
			Climate:    "Tropical, 20-32°C year-round",
			Highlights: []string{"South Beach", "Art Deco District", "Cuban cuisine", "Water sports"},
			BestTime:   "March to May, October to December",
			Airport:    "MIA",
			Tags:       []string{TagFamilyFriendly, TagRomantic, "swimming", "sunbathing", "nightlife", "cultural", "food"},
		},
		{
			Name: "San Diego, California", Country: "USA", State: "CA", Category: Beach,
			Description:   "Perfect weather year-round with beautiful beaches and laid-back vibe",
			Image:         imgScenic,
			Rating:        8.9,
			CostPerDayUSD: 200, AvgFlightCostUSD: 300,
			Climate:    "Mediterranean, 15-25°C year-round",
			Highlights: []string{"La Jolla", "Gaslamp Quarter", "Zoo", "Craft beer"},
			BestTime:   "March to November",
			Airport:    "SAN",
			Tags:       []string{TagFamilyFriendly, TagRomantic, "swimming", "surfing", "family", "food", "cultural"},
		},
		{
			Name: "Myrtle Beach, South Carolina", Country: "USA", State: "SC", Category: Beach,
			Description:   "Family-friendly beach destination with golf courses and entertainment",
			Image:         imgScenic,
			Rating:        7.8,
			CostPerDayUSD: 120, AvgFlightCostUSD: 200,
			Climate:    "Subtropical, 10-30°C",
			Highlights: []string{"Broadway at the Beach", "Golf courses", "Family attractions", "Seafood"},
			BestTime:   "April to October",
			Airport:    "MYR",
			Tags:       []string{TagFamilyFriendly, TagBudgetFriendly, "swimming", "golf", "family", "entertainment"},
		},
		{
			Name: "Outer Banks, North Carolina", Country: "USA", State: "NC", Category: Beach,
			Description:   "Peaceful barrier islands with pristine beaches and rich history",
			Image:         imgScenic,
			Rating:        8.2,
			CostPerDayUSD: 140, AvgFlightCostUSD: 220,
			Climate:    "Subtropical, 5-30°C",
			Highlights: []string{"Wright Brothers Memorial", "Wild horses", "Lighthouses", "Fishing"},
			BestTime:   "May to September",
			Airport:    "ORF",
			Tags:       []string{TagFamilyFriendly, TagRomantic, TagBudgetFriendly, "swimming", "fishing", "history", "nature"},
		},
		{
			Name: "Bali, Indonesia", Country: "Indonesia", Category: Beach,
			Description:   "Tropical paradise with stunning beaches, rich culture, and affordable luxury",
			Image:         imgBali,
			Rating:        9.2,
			CostPerDayUSD: 80, AvgFlightCostUSD: 1200,
			Climate:    "Tropical, 25-32°C year-round",
			Highlights: []string{"Beach resorts", "Cultural temples", "Rice terraces", "Water sports"},
			BestTime:   "April to October",
			Airport:    "DPS",
			Tags:       []string{TagFamilyFriendly, TagRomantic, TagBudgetFriendly, "swimming", "cultural", "spa", "adventure", "food"},
		},
		{
			Name: "Maldives", Country: "Maldives", Category: Beach,
			Description:   "Ultimate luxury beach destination with overwater bungalows",
			Image:         imgMaldives,
			Rating:        9.5,
			CostPerDayUSD: 300, AvgFlightCostUSD: 1500,
			Climate:    "Tropical, 25-30°C year-round",
			Highlights: []string{"Overwater bungalows", "Crystal clear waters", "Snorkeling", "Luxury resorts"},
			BestTime:   "November to April",
			Airport:    "MLE",
			Tags:       []string{TagRomantic, "swimming", "snorkeling", "luxury", "romance"},
		},
		{
			Name: "Phuket, Thailand", Country: "Thailand", Category: Beach,
			Description:   "Tropical island with beautiful beaches, vibrant culture, and great food",
			Image:         imgScenic,
			Rating:        8.8,
			CostPerDayUSD: 90, AvgFlightCostUSD: 1000,
			Climate:    "Tropical, 25-32°C year-round",
			Highlights: []string{"Patong Beach", "Phi Phi Islands", "Thai cuisine", "Night markets"},
			BestTime:   "November to April",
			Airport:    "HKT",
			Tags:       []string{TagFamilyFriendly, TagRomantic, TagBudgetFriendly, "swimming", "island_hopping", "food", "nightlife"},
		},
		{
			Name: "Cancun, Mexico", Country: "Mexico", Category: Beach,
			Description:   "Famous beach destination with crystal clear waters and Mayan ruins",
			Image:         imgCancun,
			Rating:        8.5,
			CostPerDayUSD: 150, AvgFlightCostUSD: 400,
			Climate:    "Tropical, 20-35°C",
			Highlights: []string{"Hotel Zone", "Chichen Itza", "Isla Mujeres", "Mexican cuisine"},
			BestTime:   "December to April",
			Airport:    "CUN",
			Tags:       []string{TagFamilyFriendly, TagRomantic, TagBudgetFriendly, "swimming", "cultural", "food", "adventure"},
		},

		// mountain
		{
			Name: "Denver, Colorado", Country: "USA", State: "CO", Category: Mountain,
			Description:   "Gateway to the Rockies with outdoor adventures and craft beer scene",
			Image:         imgScenic,
			Rating:        8.5,
			CostPerDayUSD: 150, AvgFlightCostUSD: 280,
			Climate:    "Mountain, -5 to 30°C",
			Highlights: []string{"Rocky Mountains", "Craft breweries", "Skiing", "Hiking"},
			BestTime:   "June to September, December to March",
			Airport:    "DEN",
			Tags:       []string{TagFamilyFriendly, TagRomantic, TagBudgetFriendly, "hiking", "skiing", "breweries", "outdoor"},
		},
		{
			Name: "Asheville, North Carolina", Country: "USA", State: "NC", Category: Mountain,
			Description:   "Artsy mountain town with craft beer and outdoor activities",
			Image:         imgScenic,
			Rating:        8.3,
			CostPerDayUSD: 130, AvgFlightCostUSD: 220,
			Climate:    "Mountain, 5-25°C",
			Highlights: []string{"Blue Ridge Parkway", "Biltmore Estate", "Craft beer", "Art galleries"},
			BestTime:   "March to November",
			Airport:    "AVL",
			Tags:       []string{TagFamilyFriendly, TagRomantic, TagBudgetFriendly, "hiking", "cultural", "food", "art"},
		},
		{
			Name: "Park City, Utah", Country: "USA", State: "UT", Category: Mountain,
			Description:   "World-class skiing destination with charming historic downtown",
			Image:         imgScenic,
			Rating:        8.7,
			CostPerDayUSD: 200, AvgFlightCostUSD: 300,
			Climate:    "Mountain, -10 to 25°C",
			Highlights: []string{"Sundance Film Festival", "Ski resorts", "Historic Main Street", "Outdoor activities"},
			BestTime:   "December to March (skiing), June to September (summer)",
			Airport:    "SLC",
			Tags:       []string{TagFamilyFriendly, TagRomantic, "skiing", "cultural", "outdoor", "luxury"},
		},
		{
			Name: "Swiss Alps", Country: "Switzerland", Category: Mountain,
			Description:   "Majestic mountains with world-class skiing and hiking",
			Image:         imgScenic,
			Rating:        9.3,
			CostPerDayUSD: 250, AvgFlightCostUSD: 1000,
			Climate:    "Alpine, varies by season",
			Highlights: []string{"Skiing", "Hiking", "Chocolate", "Scenic trains"},
			BestTime:   "December to March (skiing), June to September (hiking)",
			Airport:    "ZRH/GVA",
			Tags:       []string{TagFamilyFriendly, TagRomantic, "skiing", "hiking", "cultural", "luxury"},
		},
		{
			Name: "Banff National Park", Country: "Canada", Category: Mountain,
			Description:   "Stunning Canadian Rockies with pristine wilderness",
			Image:         imgScenic,
			Rating:        9.1,
			CostPerDayUSD: 150, AvgFlightCostUSD: 400,
			Climate:    "Mountain, varies by season",
			Highlights: []string{"Lake Louise", "Wildlife", "Hiking", "Hot springs"},
			BestTime:   "June to September",
			Airport:    "YYC",
			Tags:       []string{TagFamilyFriendly, TagRomantic, TagBudgetFriendly, "hiking", "wildlife", "nature", "photography"},
		},
		{
			Name: "Queenstown, New Zealand", Country: "New Zealand", Category: Mountain,
			Description:   "Adventure capital with stunning mountain scenery",
			Image:         imgScenic,
			Rating:        9.0,
			CostPerDayUSD: 180, AvgFlightCostUSD: 1200,
			Climate:    "Mountain, 5-25°C",
			Highlights: []string{"Adventure sports", "Fiordland", "Wine region", "Lord of the Rings"},
			BestTime:   "December to February (summer), June to August (skiing)",
			Airport:    "ZQN",
			Tags:       []string{TagFamilyFriendly, TagRomantic, "adventure", "hiking", "wine", "cultural"},
		},

		// city
		{
			Name: "New York City", Country: "USA", State: "NY", Category: City,
			Description:   "The city that never sleeps with endless entertainment and culture",
			Image:         imgNYC,
			Rating:        8.5,
			CostPerDayUSD: 300, AvgFlightCostUSD: 350,
			Climate:    "Temperate, -5 to 30°C",
			Highlights: []string{"Times Square", "Central Park", "Broadway", "Museums"},
			BestTime:   "April to June, September to November",
			Airport:    "JFK/LGA",
			Tags:       []string{TagFamilyFriendly, TagRomantic, "cultural", "shopping", "food", "entertainment"},
		},
		{
			Name: "Chicago, Illinois", Country: "USA", State: "IL", Category: City,
			Description:   "Windy City with amazing architecture, food, and lakefront",
			Image:         imgScenic,
			Rating:        8.2,
			CostPerDayUSD: 220, AvgFlightCostUSD: 280,
			Climate:    "Continental, -10 to 30°C",
			Highlights: []string{"Millennium Park", "Deep dish pizza", "Architecture", "Lake Michigan"},
			BestTime:   "May to October",
			Airport:    "ORD/MDW",
			Tags:       []string{TagFamilyFriendly, TagRomantic, TagBudgetFriendly, "cultural", "food", "architecture", "shopping"},
		},
		{
			Name: "Nashville, Tennessee", Country: "USA", State: "TN", Category: City,
			Description:   "Music City with vibrant nightlife and southern charm",
			Image:         imgScenic,
			Rating:        8.0,
			CostPerDayUSD: 180, AvgFlightCostUSD: 250,
			Climate:    "Subtropical, 0-35°C",
			Highlights: []string{"Country music", "Broadway", "Hot chicken", "Music Row"},
			BestTime:   "March to May, September to November",
			Airport:    "BNA",
			Tags:       []string{TagFamilyFriendly, TagRomantic, TagBudgetFriendly, "music", "nightlife", "food", "cultural"},
		},
		{
			Name: "Tokyo, Japan", Country: "Japan", Category: City,
			Description:   "Futuristic metropolis blending tradition with innovation",
			Image:         imgTokyo,
			Rating:        9.0,
			CostPerDayUSD: 180, AvgFlightCostUSD: 1200,
			Climate:    "Temperate, 10-30°C",
			Highlights: []string{"Technology", "Sushi", "Cherry blossoms", "Efficient transport"},
			BestTime:   "March to May, October to November",
			Airport:    "NRT/HND",
			Tags:       []string{TagFamilyFriendly, TagRomantic, "cultural", "food", "technology", "shopping"},
		},
		{
			Name: "Paris, France", Country: "France", Category: City,
			Description:   "City of love with iconic landmarks and world-class cuisine",
			Image:         imgParis,
			Rating:        8.8,
			CostPerDayUSD: 220, AvgFlightCostUSD: 900,
			Climate:    "Temperate, 5-25°C",
			Highlights: []string{"Eiffel Tower", "Louvre", "French cuisine", "Fashion"},
			BestTime:   "April to June, September to October",
			Airport:    "CDG/ORY",
			Tags:       []string{TagFamilyFriendly, TagRomantic, "cultural", "food", "romance", "shopping"},
		},
		{
			Name: "Barcelona, Spain", Country: "Spain", Category: City,
			Description:   "Vibrant city with stunning architecture and Mediterranean charm",
			Image:         imgScenic,
			Rating:        8.7,
			CostPerDayUSD: 160, AvgFlightCostUSD: 800,
			Climate:    "Mediterranean, 10-30°C",
			Highlights: []string{"Sagrada Familia", "Beaches", "Gaudi architecture"},
			BestTime:   "March to May, September to November",
			Airport:    "BCN",
			Tags:       []string{TagFamilyFriendly, TagRomantic, TagBudgetFriendly, "cultural", "food", "architecture", "beach"},
		},

		// adventure
		{
			Name: "Queenstown, New Zealand", Country: "New Zealand", Category: Adventure,
			Description:   "Adventure capital with bungee jumping and extreme sports",
			Image:         imgScenic,
			Rating:        9.0,
			CostPerDayUSD: 180, AvgFlightCostUSD: 1200,
			Climate:    "Mountain, 5-25°C",
			Highlights: []string{"Bungee jumping", "Skydiving", "Hiking", "Wine"},
			BestTime:   "December to February",
			Airport:    "ZQN",
			Tags:       []string{"adventure", "extreme_sports", "hiking", "wine"},
		},
		{
			Name: "Interlaken, Switzerland", Country: "Switzerland", Category: Adventure,
			Description:   "Alpine adventure hub with paragliding and mountain sports",
			Image:         imgScenic,
			Rating:        8.8,
			CostPerDayUSD: 200, AvgFlightCostUSD: 1000,
			Climate:    "Alpine, varies by season",
			Highlights: []string{"Paragliding", "Hiking", "Skiing", "Lakes"},
			BestTime:   "June to September",
			Airport:    "ZRH",
			Tags:       []string{"adventure", "paragliding", "hiking", "skiing"},
		},

		// relaxing
		{
			Name: "Santorini, Greece", Country: "Greece", Category: Relaxing,
			Description:   "Stunning island with white buildings and breathtaking sunsets",
			Image:         imgScenic,
			Rating:        9.2,
			CostPerDayUSD: 200, AvgFlightCostUSD: 1000,
			Climate:    "Mediterranean, 15-30°C",
			Highlights: []string{"Sunsets", "Wine", "Beaches", "Greek cuisine"},
			BestTime:   "May to October",
			Airport:    "JTR",
			Tags:       []string{TagRomantic, "relaxation", "wine", "beach", "romance"},
		},
		{
			Name: "Maui, Hawaii", Country: "USA", State: "HI", Category: Relaxing,
			Description:   "Peaceful Hawaiian island with beautiful beaches and waterfalls",
			Image:         imgScenic,
			Rating:        9.1,
			CostPerDayUSD: 250, AvgFlightCostUSD: 500,
			Climate:    "Tropical, 20-30°C",
			Highlights: []string{"Road to Hana", "Beaches", "Luaus", "Waterfalls"},
			BestTime:   "April to October",
			Airport:    "OGG",
			Tags:       []string{TagFamilyFriendly, TagRomantic, "relaxation", "beach", "cultural", "nature"},
		},
	}
}
