package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/guestcov/guestcov/pkg/coverage"
	"github.com/guestcov/guestcov/pkg/exporters"
)

const ConfigDirEnvVar = "CONFIG_DIR"

type Config struct {
	Filename                 string                    `mapstructure:"filename"`
	Mode                     string                    `mapstructure:"mode"`
	BufferSize               int                       `mapstructure:"bufferSize"`
	OSFamily                 string                    `mapstructure:"osFamily"`
	TracePath                string                    `mapstructure:"tracePath"`
	ProcfsPath               string                    `mapstructure:"procfsPath"`
	EnablePrometheusExporter bool                      `mapstructure:"prometheusExporterEnabled"`
	Exporters                exporters.ExportersConfig `mapstructure:"exporters"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("json")

	viper.SetDefault("filename", "coverage.csv")
	viper.SetDefault("bufferSize", exporters.DefaultBufferSize)

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return Config{}, err
	}

	var config Config
	err = viper.Unmarshal(&config)
	return config, err
}

// ResolveMode applies the mode selection policy. An empty mode defaults by
// OS family. Requesting process mode without a configured OS family is not
// fatal: it downgrades to asid mode, reported through the downgraded flag.
// Any other mode string is an error.
func (c *Config) ResolveMode() (coverage.Mode, bool, error) {
	if c.Mode == "" {
		if c.OSFamily == "" {
			return coverage.ModeAsid, false, nil
		}
		return coverage.ModeProcess, false, nil
	}
	switch coverage.Mode(c.Mode) {
	case coverage.ModeAsid:
		return coverage.ModeAsid, false, nil
	case coverage.ModeProcess:
		if c.OSFamily == "" {
			return coverage.ModeAsid, true, nil
		}
		return coverage.ModeProcess, false, nil
	default:
		return "", false, fmt.Errorf("invalid mode (%s) provided", c.Mode)
	}
}
