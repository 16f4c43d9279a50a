// Package main provides the pptxtable CLI: it lists the placeholders of a
// presentation and turns table placeholders into real tables.
package main

import (
	"errors"
	"os"

	"github.com/fatih/color"

	gopresentation "github.com/VantageDataChat/GoPPTX"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps library errors caused by the input document or the
// arguments to exitUserError and everything else to exitSysError.
func exitCode(err error) int {
	for _, target := range []error{
		gopresentation.ErrNotATablePlaceholder,
		gopresentation.ErrPlaceholderNotFound,
		gopresentation.ErrNoMatchingLayoutPlaceholder,
		gopresentation.ErrNoMatchingMasterPlaceholder,
		gopresentation.ErrNoGeometry,
		gopresentation.ErrNoSlideLayout,
		gopresentation.ErrInvalidTableSize,
		gopresentation.ErrInvalidPlaceholderIndex,
		errUsage,
	} {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	return exitSysError
}
