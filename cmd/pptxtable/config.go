// Config loading for the pptxtable CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const (
	configFileName = ".pptxtable"
	configFileType = "yaml"
	envPrefix      = "PPTXTABLE"

	cfgKeyRows     = "rows"
	cfgKeyCols     = "cols"
	cfgKeyGeometry = "geometry"
	cfgKeyNoColor  = "no_color"
	cfgKeyUnits    = "units"

	defaultRows     = 2
	defaultCols     = 2
	defaultGeometry = geometryLayout
	defaultUnits    = "emu"
)

// Geometry source names accepted by --geometry and the geometry key.
const (
	geometryLayout    = "layout"
	geometryShape     = "shape"
	geometryInherited = "inherited"
)

// loadConfig reads the config file with Viper. An explicit path must exist;
// otherwise .pptxtable.yaml is looked up in the working directory and then
// the home directory, and a missing file is not an error. PPTXTABLE_*
// environment variables override file values.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyRows, defaultRows)
	v.SetDefault(cfgKeyCols, defaultCols)
	v.SetDefault(cfgKeyGeometry, defaultGeometry)
	v.SetDefault(cfgKeyNoColor, false)
	v.SetDefault(cfgKeyUnits, defaultUnits)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}
