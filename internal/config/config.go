package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"blackjacktable-server/internal/util"
)

// Config provides configuration for the blackjack table server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"log_level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
	Persist struct {
		// Driver is either "file" or "postgres"
		Driver         string `yaml:"driver" envconfig:"persist_driver"`
		File           string `yaml:"file" envconfig:"persist_file"`
		PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
		MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	}
	Table struct {
		Bots           int `yaml:"bots" envconfig:"table_bots"`
		DefaultBalance int `yaml:"defaultBalance" envconfig:"default_balance"`
		DefaultBet     int `yaml:"defaultBet" envconfig:"default_bet"`
	}
}

var config Config

// DefaultConfig returns the configuration the server runs with when no
// config file or environment overrides are present
func DefaultConfig() Config {
	c := Config{}
	c.Addr = ":5000"
	c.Log.Level = "info"
	c.Persist.Driver = "file"
	c.Persist.File = "player_data.json"
	c.Persist.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	c.Persist.MigrationsPath = "./sql"
	c.Table.Bots = 3
	c.Table.DefaultBalance = 1000
	c.Table.DefaultBet = 100
	return c
}

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

// Load will load the configuration.
// A missing config file is not an error; the defaults and the environment
// still apply.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("BJT_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bjt", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
