package types

// Weather represents weather conditions with an OpenWeatherMap condition id and description
type Weather struct {
	Code        int    `json:"code"`
	Group       string `json:"group"`
	Description string `json:"description"`
	Icon        string `json:"icon,omitempty"`
}

// GetConditionGroup returns the condition group for an OpenWeatherMap condition id.
// See https://openweathermap.org/weather-conditions
func GetConditionGroup(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "Thunderstorm"
	case code >= 300 && code < 400:
		return "Drizzle"
	case code >= 500 && code < 600:
		return "Rain"
	case code >= 600 && code < 700:
		return "Snow"
	case code >= 700 && code < 800:
		return "Atmosphere"
	case code == 800:
		return "Clear"
	case code > 800 && code < 900:
		return "Clouds"
	default:
		return "Unknown"
	}
}

// NewWeather creates a Weather instance, falling back to the condition group
// when the provider sent no description
func NewWeather(code int, description, icon string) Weather {
	group := GetConditionGroup(code)
	if description == "" {
		description = group
	}
	return Weather{
		Code:        code,
		Group:       group,
		Description: description,
		Icon:        icon,
	}
}
