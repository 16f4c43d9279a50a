// Root command for the pptxtable CLI.
package main

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gopresentation "github.com/VantageDataChat/GoPPTX"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// errUsage marks argument errors the library does not report itself.
var errUsage = errors.New("usage")

// Global flag values.
var (
	flagConfig  string
	flagJSON    bool
	flagNoColor bool
)

// cfg holds the configuration loaded by PersistentPreRunE.
var cfg *viper.Viper

var rootCmd = &cobra.Command{
	Use:           "pptxtable",
	Short:         "Inspect placeholders and insert tables into .pptx files",
	Version:       gopresentation.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		v, err := loadConfig(flagConfig)
		if err != nil {
			return err
		}
		cfg = v
		if flagNoColor || cfg.GetBool(cfgKeyNoColor) {
			color.NoColor = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./.pptxtable.yaml or ~/.pptxtable.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(placeholdersCmd)
	rootCmd.AddCommand(insertCmd)
	rootCmd.AddCommand(validateCmd)
}
