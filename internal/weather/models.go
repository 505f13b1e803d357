package weather

import (
	"time"

	"geo-weather/internal/types"
)

// Current is the nearest-future forecast sample for a location.
// UTCOffsetSeconds is the provider's offset for the city; LocalOffsetSeconds
// is the IANA zone's offset at ForecastTime, daylight saving included.
type Current struct {
	Coordinates        types.Coords       `json:"coordinates"`
	Location           types.LocationInfo `json:"location"`
	UTCOffsetSeconds   int                `json:"utcOffsetSeconds"`
	Timezone           string             `json:"timezone,omitempty"`
	LocalOffsetSeconds int                `json:"localOffsetSeconds"`
	ForecastTime       time.Time          `json:"forecastTime"`
	Temperature        types.Temperature  `json:"temperature"`
	FeelsLike          types.Temperature  `json:"feelsLike"`
	Humidity           float64            `json:"humidity"`
	Pressure           types.Pressure     `json:"pressure"`
	Wind               types.Wind         `json:"wind"`
	Weather            types.Weather      `json:"weather"`
}
