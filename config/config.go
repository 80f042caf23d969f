package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	Env         string
	LogLevel    string
	HTTPTimeout int32
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-atlas")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8000")
	v.SetDefault("HTTP_TIMEOUT", 175)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Warn().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:   v.GetString("SERVICE_NAME"),
		ServerAddress: v.GetString("SERVER_ADDRESS"),
		Env:           v.GetString("ENV"),
		LogLevel:      v.GetString("LOG_LEVEL"),
		HTTPTimeout:   v.GetInt32("HTTP_TIMEOUT"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}
