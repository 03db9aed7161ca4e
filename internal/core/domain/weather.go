package domain

// WeatherCode is a WMO present-weather code as reported by the
// Open-Meteo current-conditions payload.
type WeatherCode int

// UnknownConditions is returned for codes outside the fixed table.
const UnknownConditions = "Unknown conditions"

// weatherDescriptions is the fixed WMO code table used by Open-Meteo.
// Loaded once, never mutated.
var weatherDescriptions = map[WeatherCode]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snowfall",
	73: "Moderate snowfall",
	75: "Heavy snowfall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// Description returns the human-readable description for the code,
// or UnknownConditions if the code is not in the table.
// Pure and total: there is no failure mode.
func (c WeatherCode) Description() string {
	if desc, ok := weatherDescriptions[c]; ok {
		return desc
	}
	return UnknownConditions
}

// Observation is a single current-weather reading for a location.
type Observation struct {
	// TemperatureC is the air temperature in degrees Celsius.
	TemperatureC float64

	// Code is the WMO weather code for the current conditions.
	Code WeatherCode
}

// Location is a named coordinate pair for the weather panel.
// Coordinates are passed through unchecked.
type Location struct {
	Name      string
	Latitude  float64
	Longitude float64
}
