package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "geoweather",
		Short:         "Current position, map link and nearest forecast sample",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newNowCmd(), newDirectionCmd())
	return root
}
