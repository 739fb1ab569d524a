// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those from the command line.
type Config struct {
	// the file to write oriented records to; stdout if empty
	Out string `mapstructure:"out"`

	// how to treat conflicting orientation proposals: ignore, warn or strict
	Consistency string `mapstructure:"consistency"`
}

// New returns a new Config struct populated by Viper settings (either
// from the local settings.yaml) and/or command line arguments.
func New() *Config {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}
