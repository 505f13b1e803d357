// Package render turns session state into a view model and prints it as an
// HTML page or a plain-text report.
package render

import (
	"fmt"
	"time"

	"geo-weather/internal/session"
	"geo-weather/internal/types"
)

// View is everything the page shows, already formatted
type View struct {
	Seq      uint64        `json:"seq"`
	Phase    session.Phase `json:"phase"`
	Location *LocationView `json:"location,omitempty"`
	Weather  *WeatherView  `json:"weather,omitempty"`
	Error    string        `json:"error,omitempty"`
}

type LocationView struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	MapURL    string `json:"mapUrl,omitempty"`
}

type WeatherView struct {
	Location      string `json:"location"`
	Temperature   string `json:"temperature"`
	Description   string `json:"description"`
	Humidity      string `json:"humidity"`
	TimeZone      string `json:"timeZone"`
	Pressure      string `json:"pressure"`
	WindSpeed     string `json:"windSpeed"`
	WindDirection string `json:"windDirection"`
	FeelsLike     string `json:"feelsLike"`
	LocalTime     string `json:"localTime,omitempty"`
	Icon          string `json:"icon,omitempty"`
}

// NewView builds the view for st. It is pure: the same state always gives the same view.
func NewView(st session.State) View {
	v := View{
		Seq:   st.Seq,
		Phase: st.Phase,
		Error: UserMessage(st.Err),
	}

	if st.Coordinates != nil {
		v.Location = &LocationView{
			Latitude:  types.FormatNumber(st.Coordinates.Latitude),
			Longitude: types.FormatNumber(st.Coordinates.Longitude),
			MapURL:    st.MapURL,
		}
	}

	if w := st.Weather; w != nil {
		v.Weather = &WeatherView{
			Location:      w.Location.Label(),
			Temperature:   Temperature(w.Temperature.Celsius),
			Description:   w.Weather.Description,
			Humidity:      Humidity(w.Humidity),
			TimeZone:      TimezoneLabel(w.UTCOffsetSeconds),
			Pressure:      PressureAtm(w.Pressure.Hpa),
			WindSpeed:     WindKph(w.Wind.SpeedInMps),
			WindDirection: w.Wind.Direction.String(),
			FeelsLike:     Temperature(w.FeelsLike.Celsius),
			LocalTime:     LocalTime(w.ForecastTime, w.Timezone, w.LocalOffsetSeconds),
			Icon:          w.Weather.Icon,
		}
	}

	return v
}

// UserMessage is the banner text for a user-visible error, empty for nil
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// PressureAtm formats hectopascals as atmospheres, 1013 -> "1.00 atm"
func PressureAtm(hpa float64) string {
	return fmt.Sprintf("%.2f atm", types.Round2(hpa/types.HpaPerAtm))
}

// WindKph formats metres per second as kilometres per hour, 5 -> "18.00 km/h"
func WindKph(mps float64) string {
	return fmt.Sprintf("%.2f km/h", types.Round2(mps*types.MpsToKph))
}

// TimezoneLabel formats a UTC offset in seconds. Negative offsets keep the
// leading plus, -18000 -> "GMT +-5".
func TimezoneLabel(offsetSeconds int) string {
	return "GMT +" + types.FormatNumber(float64(offsetSeconds)/3600)
}

func Temperature(celsius float64) string {
	return types.FormatNumber(celsius) + "°C"
}

func Humidity(percent float64) string {
	return types.FormatNumber(percent) + "%"
}

// LocalTime prints the forecast instant as wall time in its zone,
// "2023-11-14 22:13 Europe/London". Empty when the zone is unknown.
func LocalTime(at time.Time, zone string, offsetSeconds int) string {
	if zone == "" || at.IsZero() {
		return ""
	}
	return at.In(time.FixedZone(zone, offsetSeconds)).Format("2006-01-02 15:04") + " " + zone
}
