package config

import (
	"os"

	"bigfive-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the Big Five Safari server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Rules struct {
		DrawRequiresTurn bool `yaml:"drawRequiresTurn" envconfig:"draw_requires_turn"`
	}
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration. A missing config file is not an error;
// the defaults and environment still apply.
func Load() error {
	config = Config{}
	config.Log.Level = "info"

	configFile := util.Getenv("BIGFIVE_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bigfive", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
