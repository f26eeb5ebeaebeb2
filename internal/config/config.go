package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hance08/txengine/internal/constants"
	"github.com/spf13/viper"
)

type Config struct {
	Feed       FeedConfig   `mapstructure:"feed"`
	Log        LogConfig    `mapstructure:"log"`
	Output     OutputConfig `mapstructure:"output"`
	ConfigPath string       `mapstructure:"-"`
}

type FeedConfig struct {
	Capacity int `mapstructure:"capacity"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type OutputConfig struct {
	Format     string `mapstructure:"format"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

func NewDefault() *Config {
	return &Config{
		Feed:   FeedConfig{Capacity: constants.DefaultFeedCapacity},
		Log:    LogConfig{Level: "warn", Format: constants.LogFormatColorful},
		Output: OutputConfig{Format: constants.OutputFormatCSV, SQLitePath: ""},
	}
}

// Load reads config.yaml from dir on top of the defaults. A missing file is not an error.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	cfg := NewDefault()
	v.SetDefault("feed.capacity", cfg.Feed.Capacity)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("output.format", cfg.Output.Format)
	v.SetDefault("output.sqlite_path", cfg.Output.SQLitePath)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}

// DefaultDir is <UserConfigDir>/txengine, falling back to ~/.txengine.
func DefaultDir() (string, error) {
	configDir, err := userConfigDir()
	if err != nil {
		home, err := userHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+constants.AppName), nil
	}

	return filepath.Join(configDir, constants.AppName), nil
}
