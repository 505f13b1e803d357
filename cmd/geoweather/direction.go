package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"geo-weather/internal/types"
)

func newDirectionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "direction <degrees>",
		Short:   "Classify a wind bearing into a compass sector",
		Example: "  geoweather direction 200",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deg, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid bearing %q: %w", args[0], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), types.ClassifyDirection(deg))
			return err
		},
	}
}
