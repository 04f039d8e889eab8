package repository

import "flightcal-service/internal/domain/entity"

// Reference tables are built once and never written afterwards.

var airlineTable = map[string]entity.Airline{
	"AA": {Code: "AA", Name: "American Airlines", Colors: entity.AirlineColors{Primary: "#C8102E", Secondary: "#004B87"}},
	"UA": {Code: "UA", Name: "United Airlines", Colors: entity.AirlineColors{Primary: "#003366", Secondary: "#0074D9"}},
	"DL": {Code: "DL", Name: "Delta Air Lines", Colors: entity.AirlineColors{Primary: "#003366", Secondary: "#C8102E"}},
	"WN": {Code: "WN", Name: "Southwest Airlines", Colors: entity.AirlineColors{Primary: "#F9844A", Secondary: "#304CB2"}},
	"AS": {Code: "AS", Name: "Alaska Airlines", Colors: entity.AirlineColors{Primary: "#005F69", Secondary: "#1E88E5"}},
	"B6": {Code: "B6", Name: "JetBlue Airways", Colors: entity.AirlineColors{Primary: "#0066CC", Secondary: "#FF6600"}},
	"NK": {Code: "NK", Name: "Spirit Airlines", Colors: entity.AirlineColors{Primary: "#FFD100", Secondary: "#000000"}},
	"F9": {Code: "F9", Name: "Frontier Airlines", Colors: entity.AirlineColors{Primary: "#4A90A4", Secondary: "#00A859"}},
	"G4": {Code: "G4", Name: "Allegiant Air", Colors: entity.AirlineColors{Primary: "#005DAA", Secondary: "#FF6A00"}},
	"SY": {Code: "SY", Name: "Sun Country Airlines", Colors: entity.AirlineColors{Primary: "#003399", Secondary: "#FFD100"}},
	"BA": {Code: "BA", Name: "British Airways", Colors: entity.AirlineColors{Primary: "#1E3A8A", Secondary: "#DC2626"}},
	"LH": {Code: "LH", Name: "Lufthansa", Colors: entity.AirlineColors{Primary: "#F9D71C", Secondary: "#003366"}},
	"AF": {Code: "AF", Name: "Air France", Colors: entity.AirlineColors{Primary: "#002395", Secondary: "#CE1126"}},
	"KL": {Code: "KL", Name: "KLM", Colors: entity.AirlineColors{Primary: "#0066CC", Secondary: "#0099FF"}},
	"EK": {Code: "EK", Name: "Emirates", Colors: entity.AirlineColors{Primary: "#C8102E", Secondary: "#FFD700"}},
	"QR": {Code: "QR", Name: "Qatar Airways", Colors: entity.AirlineColors{Primary: "#5D0F47", Secondary: "#8B1538"}},
	"SQ": {Code: "SQ", Name: "Singapore Airlines", Colors: entity.AirlineColors{Primary: "#003366", Secondary: "#FFD700"}},
	"CX": {Code: "CX", Name: "Cathay Pacific", Colors: entity.AirlineColors{Primary: "#00565B", Secondary: "#1BA1A8"}},
	"JL": {Code: "JL", Name: "Japan Airlines", Colors: entity.AirlineColors{Primary: "#DC143C", Secondary: "#000080"}},
	"NH": {Code: "NH", Name: "ANA", Colors: entity.AirlineColors{Primary: "#1F4E79", Secondary: "#0078D4"}},
}

var airportTable = map[string]entity.Airport{
	"LAX": {Code: "LAX", Name: "Los Angeles International", City: "Los Angeles", Country: "USA", Lat: 33.9425, Lng: -118.4081, Timezone: "America/Los_Angeles"},
	"JFK": {Code: "JFK", Name: "John F. Kennedy International", City: "New York", Country: "USA", Lat: 40.6413, Lng: -73.7781, Timezone: "America/New_York"},
	"LGA": {Code: "LGA", Name: "LaGuardia Airport", City: "New York", Country: "USA", Lat: 40.7769, Lng: -73.8740, Timezone: "America/New_York"},
	"EWR": {Code: "EWR", Name: "Newark Liberty International", City: "Newark", Country: "USA", Lat: 40.6895, Lng: -74.1745, Timezone: "America/New_York"},
	"ORD": {Code: "ORD", Name: "Chicago O'Hare International", City: "Chicago", Country: "USA", Lat: 41.9742, Lng: -87.9073, Timezone: "America/Chicago"},
	"DFW": {Code: "DFW", Name: "Dallas/Fort Worth International", City: "Dallas", Country: "USA", Lat: 32.8998, Lng: -97.0403, Timezone: "America/Chicago"},
	"DEN": {Code: "DEN", Name: "Denver International", City: "Denver", Country: "USA", Lat: 39.8561, Lng: -104.6737, Timezone: "America/Denver"},
	"ATL": {Code: "ATL", Name: "Hartsfield-Jackson Atlanta International", City: "Atlanta", Country: "USA", Lat: 33.6407, Lng: -84.4277, Timezone: "America/New_York"},
	"MIA": {Code: "MIA", Name: "Miami International", City: "Miami", Country: "USA", Lat: 25.7959, Lng: -80.2870, Timezone: "America/New_York"},
	"SEA": {Code: "SEA", Name: "Seattle-Tacoma International", City: "Seattle", Country: "USA", Lat: 47.4502, Lng: -122.3088, Timezone: "America/Los_Angeles"},
	"SFO": {Code: "SFO", Name: "San Francisco International", City: "San Francisco", Country: "USA", Lat: 37.6213, Lng: -122.3790, Timezone: "America/Los_Angeles"},
	"BOS": {Code: "BOS", Name: "Logan International", City: "Boston", Country: "USA", Lat: 42.3656, Lng: -71.0096, Timezone: "America/New_York"},
	"LAS": {Code: "LAS", Name: "McCarran International", City: "Las Vegas", Country: "USA", Lat: 36.0840, Lng: -115.1537, Timezone: "America/Los_Angeles"},
	"PHX": {Code: "PHX", Name: "Phoenix Sky Harbor International", City: "Phoenix", Country: "USA", Lat: 33.4484, Lng: -112.0740, Timezone: "America/Phoenix"},
	"IAH": {Code: "IAH", Name: "George Bush Intercontinental", City: "Houston", Country: "USA", Lat: 29.9902, Lng: -95.3368, Timezone: "America/Chicago"},
	"MCO": {Code: "MCO", Name: "Orlando International", City: "Orlando", Country: "USA", Lat: 28.4312, Lng: -81.3081, Timezone: "America/New_York"},
	"CLT": {Code: "CLT", Name: "Charlotte Douglas International", City: "Charlotte", Country: "USA", Lat: 35.2144, Lng: -80.9473, Timezone: "America/New_York"},
	"MSP": {Code: "MSP", Name: "Minneapolis-St. Paul International", City: "Minneapolis", Country: "USA", Lat: 44.8848, Lng: -93.2223, Timezone: "America/Chicago"},
	"DTW": {Code: "DTW", Name: "Detroit Metropolitan Wayne County", City: "Detroit", Country: "USA", Lat: 42.2162, Lng: -83.3554, Timezone: "America/New_York"},
	"SLC": {Code: "SLC", Name: "Salt Lake City International", City: "Salt Lake City", Country: "USA", Lat: 40.7899, Lng: -111.9791, Timezone: "America/Denver"},
	"LHR": {Code: "LHR", Name: "London Heathrow", City: "London", Country: "UK", Lat: 51.4700, Lng: -0.4543, Timezone: "Europe/London"},
	"CDG": {Code: "CDG", Name: "Charles de Gaulle", City: "Paris", Country: "France", Lat: 49.0097, Lng: 2.5479, Timezone: "Europe/Paris"},
	"FRA": {Code: "FRA", Name: "Frankfurt am Main", City: "Frankfurt", Country: "Germany", Lat: 50.0379, Lng: 8.5622, Timezone: "Europe/Berlin"},
	"AMS": {Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands", Lat: 52.3105, Lng: 4.7683, Timezone: "Europe/Amsterdam"},
	"ZUR": {Code: "ZUR", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland", Lat: 47.4647, Lng: 8.5492, Timezone: "Europe/Zurich"},
	"ICN": {Code: "ICN", Name: "Incheon International", City: "Seoul", Country: "South Korea", Lat: 37.4602, Lng: 126.4407, Timezone: "Asia/Seoul"},
	"NRT": {Code: "NRT", Name: "Narita International", City: "Tokyo", Country: "Japan", Lat: 35.7653, Lng: 140.3856, Timezone: "Asia/Tokyo"},
	"HND": {Code: "HND", Name: "Tokyo Haneda", City: "Tokyo", Country: "Japan", Lat: 35.5494, Lng: 139.7798, Timezone: "Asia/Tokyo"},
	"SIN": {Code: "SIN", Name: "Singapore Changi", City: "Singapore", Country: "Singapore", Lat: 1.3644, Lng: 103.9915, Timezone: "Asia/Singapore"},
	"DXB": {Code: "DXB", Name: "Dubai International", City: "Dubai", Country: "UAE", Lat: 25.2532, Lng: 55.3657, Timezone: "Asia/Dubai"},
	"SYD": {Code: "SYD", Name: "Sydney Kingsford Smith", City: "Sydney", Country: "Australia", Lat: -33.9399, Lng: 151.1753, Timezone: "Australia/Sydney"},
	"YYZ": {Code: "YYZ", Name: "Toronto Pearson International", City: "Toronto", Country: "Canada", Lat: 43.6777, Lng: -79.6248, Timezone: "America/Toronto"},
	"YVR": {Code: "YVR", Name: "Vancouver International", City: "Vancouver", Country: "Canada", Lat: 49.1967, Lng: -123.1815, Timezone: "America/Vancouver"},
	"GRU": {Code: "GRU", Name: "São Paulo–Guarulhos International", City: "São Paulo", Country: "Brazil", Lat: -23.4356, Lng: -46.4731, Timezone: "America/Sao_Paulo"},
	"MEX": {Code: "MEX", Name: "Mexico City International", City: "Mexico City", Country: "Mexico", Lat: 19.4363, Lng: -99.0721, Timezone: "America/Mexico_City"},
}
