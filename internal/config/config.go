package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "FLACTED"

	// DefaultProgram is the name under which tags are set rather than shown
	DefaultProgram = "flacted"
)

// Config holds the runtime settings of a run
type Config struct {
	Metaflac string
	Program  string
	Debug    bool
}

// Load reads settings from an optional config file and FLACTED_* environment variables.
// A debug flag in flags, when set, takes precedence over both.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("metaflac", "metaflac")
	v.SetDefault("program", DefaultProgram)
	v.SetDefault("debug", false)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if flags != nil {
		if f := flags.Lookup("debug"); f != nil {
			if err := v.BindPFlag("debug", f); err != nil {
				return nil, fmt.Errorf("failed to bind debug flag: %w", err)
			}
		}
	}

	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, DefaultProgram))
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return &Config{
		Metaflac: v.GetString("metaflac"),
		Program:  v.GetString("program"),
		Debug:    v.GetBool("debug"),
	}, nil
}
