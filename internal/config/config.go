package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server       Server              `mapstructure:"server"`
	RateLimit    RateLimit           `mapstructure:"rate_limit"`
	CORS         CORS                `mapstructure:"cors"`
	Metrics      Metrics             `mapstructure:"metrics"`
	DemoSeed     bool                `mapstructure:"demo_seed"`
	Availability map[string][]string `mapstructure:"availability"`
}

type Server struct {
	Port           int `mapstructure:"port"`
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type RateLimit struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Metrics struct {
	Prefix string `mapstructure:"prefix"`
}

// LoadConfig reads config.yaml from the working directory or ./config,
// with env-var overrides. A missing file falls back to defaults; the
// service needs no external resources to start.
func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.timeout_seconds", 30)
	viper.SetDefault("rate_limit.rps", 50.0)
	viper.SetDefault("rate_limit.burst", 100)
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("metrics.prefix", "clinicdesk")
	viper.SetDefault("demo_seed", false)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
