package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gopresentation "github.com/VantageDataChat/GoPPTX"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the pptxtable version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "pptxtable", gopresentation.Version)
	},
}
