package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"geo-weather/internal/config"
	"geo-weather/internal/location"
	"geo-weather/internal/providers/googlemaps"
	"geo-weather/internal/render"
	"geo-weather/internal/session"
	"geo-weather/internal/types"
	"geo-weather/internal/weather"
)

func newNowCmd() *cobra.Command {
	var latitude, longitude float64

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the weather at the current position",
		Long: `Print location, map link and the nearest forecast sample.

Without --lat and --lon the position comes from the configured location source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := cfg.NewLogger()

			source, err := location.NewSourceFromConfig(cfg.Location, logger)
			if err != nil {
				return err
			}
			weatherSvc, err := weather.NewWeatherService(cfg, logger)
			if err != nil {
				return err
			}
			maps := googlemaps.NewEmbedder(cfg.Map.APIKey, cfg.Map.BaseURL, cfg.Map.Zoom, cfg.Map.MapType)
			sess := session.New(location.NewLocationService(source, logger), weatherSvc, maps, logger)

			var coords *types.Coords
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
				c := types.NewCoords(latitude, longitude)
				coords = &c
			}
			return runNow(cmd.Context(), sess, coords, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Float64Var(&latitude, "lat", 0, "latitude in decimal degrees")
	cmd.Flags().Float64Var(&longitude, "lon", 0, "longitude in decimal degrees")
	cmd.MarkFlagsRequiredTogether("lat", "lon")

	return cmd
}

// runNow runs one sequence, for coords when given, and prints the report.
// Location errors are returned; a weather failure still prints the location part.
func runNow(ctx context.Context, sess *session.Session, coords *types.Coords, w io.Writer) error {
	var (
		st  session.State
		err error
	)
	if coords != nil {
		st, err = sess.Show(ctx, coords.Latitude, coords.Longitude)
	} else {
		st, err = sess.Trigger(ctx)
	}
	if err != nil {
		return err
	}

	return render.Text(w, render.NewView(st))
}
