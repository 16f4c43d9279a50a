// Validate command checks the structure of a presentation.
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	gopresentation "github.com/VantageDataChat/GoPPTX"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.pptx>",
	Short: "Check shape trees and placeholders for structural problems",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pres, err := gopresentation.Open(args[0])
		if err != nil {
			return err
		}
		defer pres.Close()

		if err := pres.Validate(); err != nil {
			return err
		}
		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s: ok (%d slides)\n", args[0], pres.GetSlideCount())
		return nil
	},
}
