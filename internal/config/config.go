package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete dyno configuration
type Config struct {
	Version int `json:"version" mapstructure:"version"`

	Catalog CatalogConfig `json:"catalog" mapstructure:"catalog"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`

	// DefaultVehicle is the vehicle ID used when a command omits --vehicle
	DefaultVehicle string `json:"defaultVehicle,omitempty" mapstructure:"defaultVehicle"`
}

// CatalogConfig contains catalog source configuration
type CatalogConfig struct {
	// ModificationsPath is an optional TOML catalog merged over the built-ins
	ModificationsPath string `json:"modificationsPath,omitempty" mapstructure:"modificationsPath"`
	// VehiclesPath is an optional YAML fleet merged over the built-ins
	VehiclesPath string `json:"vehiclesPath,omitempty" mapstructure:"vehiclesPath"`
	// DatabasePath is an optional SQLite catalog database
	DatabasePath string `json:"databasePath,omitempty" mapstructure:"databasePath"`
	// SkipBuiltin drops the built-in catalog and uses file sources only
	SkipBuiltin bool `json:"skipBuiltin,omitempty" mapstructure:"skipBuiltin"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Catalog: CatalogConfig{},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// LoadConfig loads configuration from .dyno/config.json under the given
// root, with DYNO_* environment variables taking precedence over the file.
func LoadConfig(root string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("version", 1)
	v.SetDefault("logging.format", "human")
	v.SetDefault("logging.level", "info")

	// Configure viper
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(root, ".dyno"))
	v.SetEnvPrefix("DYNO")
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, return default config
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	// Unmarshal into config struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to .dyno/config.json
func (c *Config) Save(root string) error {
	dir := filepath.Join(root, ".dyno")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
