package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds runtime options that may come from a config file, the
// environment (RADAR_*) or command-line flags.
type Settings struct {
	LogLevel string         `mapstructure:"logLevel"`
	Seed     uint64         `mapstructure:"seed"`
	Window   WindowSettings `mapstructure:"window"`
	Audio    AudioSettings  `mapstructure:"audio"`
	Bloom    BloomSettings  `mapstructure:"bloom"`
	Headless HeadlessConfig `mapstructure:"headless"`
}

type WindowSettings struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type AudioSettings struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"`
	PingHz  float64 `mapstructure:"pingHz"`
}

type BloomSettings struct {
	Enabled  bool    `mapstructure:"enabled"`
	Strength float64 `mapstructure:"strength"`
}

type HeadlessConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	Seconds float64 `mapstructure:"seconds"`
}

// SetDefaults registers default values for every setting.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("seed", 0)

	viper.SetDefault("window.width", WindowWidth)
	viper.SetDefault("window.height", WindowHeight)
	viper.SetDefault("window.title", WindowTitle)

	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("audio.volume", -1.5)
	viper.SetDefault("audio.pingHz", 880.0)

	viper.SetDefault("bloom.enabled", true)
	viper.SetDefault("bloom.strength", 0.8)

	viper.SetDefault("headless.enabled", false)
	viper.SetDefault("headless.seconds", 20.0)
}

// Load reads settings from the JSON file at path (optional, may be empty),
// then applies RADAR_* environment overrides on top of the defaults.
func Load(path string) (Settings, error) {
	SetDefaults()

	viper.SetEnvPrefix("radar")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		viper.SetConfigType("json")
		if err := viper.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return Settings{}, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the renderer cannot work with.
func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Bloom.Strength < 0 {
		return fmt.Errorf("bloom strength must not be negative, got %v", s.Bloom.Strength)
	}
	if s.Headless.Seconds < 0 {
		return fmt.Errorf("headless seconds must not be negative, got %v", s.Headless.Seconds)
	}
	return nil
}
