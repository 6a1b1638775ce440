package config

import (
	"os"

	"texaspoker-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the poker server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	JWT            struct {
		PublicKey  string `yaml:"publicKey" envconfig:"public_key"`
		PrivateKey string `yaml:"privateKey" envconfig:"private_key"`
	}
	RecaptchaSecret string `yaml:"recaptchaSecret" envconfig:"recaptcha_secret"`
	// PlayerCreateDelay is the minimum number of seconds between two
	// registrations from a single remote address
	PlayerCreateDelay int `yaml:"playerCreateDelay" envconfig:"player_create_delay"`
	Player            struct {
		StartingBalance int `yaml:"startingBalance" envconfig:"starting_balance"`
		DailyBonus      int `yaml:"dailyBonus" envconfig:"daily_bonus"`
	}
	Table struct {
		SmallBlind int `yaml:"smallBlind" envconfig:"small_blind"`
		BigBlind   int `yaml:"bigBlind" envconfig:"big_blind"`
		MaxSeats   int `yaml:"maxSeats" envconfig:"max_seats"`
		BotBalance int `yaml:"botBalance" envconfig:"bot_balance"`
	}
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
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

// Load will load the configuration
// A missing config file is fine; defaults and environment variables apply.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("POKER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("poker", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	var c Config
	c.PGDSN = "postgres://postgres@localhost:5432/postgres?sslmode=disable"
	c.MigrationsPath = "./sql"
	c.PlayerCreateDelay = 60
	c.Player.StartingBalance = 2000
	c.Player.DailyBonus = 2000
	c.Table.SmallBlind = 10
	c.Table.BigBlind = 20
	c.Table.MaxSeats = 9
	c.Table.BotBalance = 2000
	return c
}
