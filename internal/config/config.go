package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete league simulator configuration.
// The league size and the number of rounds are fixed and deliberately absent.
type Config struct {
	Simulation SimulationConfig `mapstructure:"simulation" yaml:"simulation"`
	Display    DisplayConfig    `mapstructure:"display" yaml:"display"`
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging"`
}

// SimulationConfig controls how random results are produced
type SimulationConfig struct {
	// Seed initializes the random source once per run (0 = derive from the clock).
	// A fixed seed replays the same random results for the same inputs.
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
	// SkipRandomDraws discards level random scores instead of recording them
	// as draws. Matches the behavior of the first release of the game. (default: false)
	SkipRandomDraws bool `mapstructure:"skip_random_draws" yaml:"skip_random_draws"`
}

// DisplayConfig controls console rendering
type DisplayConfig struct {
	// Color enables styled headers and the winner banner on color terminals (default: true)
	Color bool `mapstructure:"color" yaml:"color"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether debug logging is enabled (default: false)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level" yaml:"level"`
	// File is the log file path. Empty means league.log in the config directory.
	File string `mapstructure:"file" yaml:"file"`
}

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Seed:            0,
			SkipRandomDraws: false,
		},
		Display: DisplayConfig{
			Color: true,
		},
		Logging: LoggingConfig{
			Enabled: false, // stdout carries the game transcript
			Level:   "info",
			File:    "",
		},
	}
}

// ResolveSeed returns the configured seed, or a clock-derived one when unset.
func (s *SimulationConfig) ResolveSeed(now time.Time) uint64 {
	if s.Seed != 0 {
		return s.Seed
	}
	return uint64(now.UnixNano())
}

// ResolveFile returns the log file path, defaulting to the config directory.
func (l *LoggingConfig) ResolveFile() string {
	if l.File == "" {
		return filepath.Join(ConfigDir(), "league.log")
	}
	return l.File
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("simulation.seed", defaults.Simulation.Seed)
	viper.SetDefault("simulation.skip_random_draws", defaults.Simulation.SkipRandomDraws)

	viper.SetDefault("display.color", defaults.Display.Color)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "league")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".league"
	}
	return filepath.Join(home, ".config", "league")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
