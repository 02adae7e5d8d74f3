package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// DatabaseConfig holds SQLite settings.
type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

// Config is the full application configuration. Everything has a default;
// a config file is optional.
type Config struct {
	DataDir  string         `mapstructure:"data_dir"`
	Database DatabaseConfig `mapstructure:"database"`
}

// Load reads configuration from <dataDir>/config.yaml if present, applying
// KMC_* environment overrides (e.g. KMC_DATABASE_PATH). A missing config
// file is fine; defaults point at ~/.kmcward.
func Load() (*Config, error) {
	dataDir, err := defaultDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	v := viper.New()
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("database.path", filepath.Join(dataDir, "kmc.db"))
	v.SetDefault("database.log_mode", false)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dataDir)

	v.SetEnvPrefix("KMC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// StatePath returns the location of the signed-in identity file.
func (c *Config) StatePath() string {
	return filepath.Join(c.DataDir, "session.json")
}

func defaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".kmcward"), nil
}
