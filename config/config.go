package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application. The defaults
// reproduce the stock Sail + PostgreSQL stack byte for byte; overriding
// them changes the rendered docker-compose.yml and the values forced into
// the project's .env file.
type Config struct {
	PHPVersion   string `mapstructure:"php_version"`
	DBConnection string `mapstructure:"db_connection"`
	DBHost       string `mapstructure:"db_host"`
	DBPort       string `mapstructure:"db_port"`
	DBDatabase   string `mapstructure:"db_database"`
	DBUsername   string `mapstructure:"db_username"`
	DBPassword   string `mapstructure:"db_password"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		PHPVersion:   "8.4",
		DBConnection: "pgsql",
		DBHost:       "pgsql",
		DBPort:       "5432",
		DBDatabase:   "laravel",
		DBUsername:   "sail",
		DBPassword:   "password",
	}
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.AddConfigPath(".")
	v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".newproject"))

	// Defaults are registered with viper so AutomaticEnv has known keys
	// to resolve; env values for unregistered keys are never seen.
	v.SetDefault("php_version", config.PHPVersion)
	v.SetDefault("db_connection", config.DBConnection)
	v.SetDefault("db_host", config.DBHost)
	v.SetDefault("db_port", config.DBPort)
	v.SetDefault("db_database", config.DBDatabase)
	v.SetDefault("db_username", config.DBUsername)
	v.SetDefault("db_password", config.DBPassword)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; defaults apply
	}

	v.SetEnvPrefix("NEWPROJECT")
	v.AutomaticEnv()

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.PHPVersion == "" {
		return fmt.Errorf("php_version is required")
	}
	if config.DBConnection == "" {
		return fmt.Errorf("db_connection is required")
	}

	return nil
}
