package render

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Text writes v as an aligned plain-text report
func Text(w io.Writer, v View) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if v.Error != "" {
		fmt.Fprintf(tw, "Error:\t%s\n", v.Error)
	}

	if l := v.Location; l != nil {
		fmt.Fprintf(tw, "Latitude:\t%s\n", l.Latitude)
		fmt.Fprintf(tw, "Longitude:\t%s\n", l.Longitude)
		if l.MapURL != "" {
			fmt.Fprintf(tw, "Map:\t%s\n", l.MapURL)
		}
	}

	if wv := v.Weather; wv != nil {
		fmt.Fprintf(tw, "Location:\t%s\n", wv.Location)
		fmt.Fprintf(tw, "Temperature:\t%s\n", wv.Temperature)
		fmt.Fprintf(tw, "Weather:\t%s\n", wv.Description)
		fmt.Fprintf(tw, "Humidity:\t%s\n", wv.Humidity)
		fmt.Fprintf(tw, "Time Zone:\t%s\n", wv.TimeZone)
		fmt.Fprintf(tw, "Pressure:\t%s\n", wv.Pressure)
		fmt.Fprintf(tw, "Wind Speed:\t%s\n", wv.WindSpeed)
		fmt.Fprintf(tw, "Wind Direction:\t%s\n", wv.WindDirection)
		fmt.Fprintf(tw, "Feels Like:\t%s\n", wv.FeelsLike)
		if wv.LocalTime != "" {
			fmt.Fprintf(tw, "Forecast For:\t%s\n", wv.LocalTime)
		}
	}

	return tw.Flush()
}
