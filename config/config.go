package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const APIKeyEnv = "OPENWEATHER_API_KEY"

var ErrMissingAPIKey = errors.New(APIKeyEnv + " is not set")

type Config struct {
	ServiceName string

	APIKey  string
	BaseURL string

	Units   string
	Lang    string
	NoColor bool

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	LogLevel    string
	HTTPTimeout int32
}

// LoadConfig reads defaults, an optional .env file and the environment.
// Flags in flags, when given and set on the command line, win over both.
func LoadConfig(serviceName string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", serviceName)
	v.SetDefault("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5/weather")
	v.SetDefault("WEATHER_UNITS", "metric")
	v.SetDefault("LOG_LEVEL", "warn")
	v.SetDefault("HTTP_TIMEOUT", 10)
	v.SetDefault("DATABASE_PORT", "5432")

	v.AutomaticEnv()

	if flags != nil {
		for key, name := range map[string]string{
			"WEATHER_UNITS": "units",
			"WEATHER_LANG":  "lang",
			"NO_COLOR":      "no-color",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Debug().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName: v.GetString("SERVICE_NAME"),
		APIKey:      v.GetString(APIKeyEnv),
		BaseURL:     v.GetString("OPENWEATHER_BASE_URL"),
		Units:       v.GetString("WEATHER_UNITS"),
		Lang:        v.GetString("WEATHER_LANG"),
		NoColor:     v.GetBool("NO_COLOR"),
		DBName:      v.GetString("DATABASE_NAME"),
		DBPassword:  v.GetString("DATABASE_PASSWORD"),
		DBUser:      v.GetString("DATABASE_USER"),
		DBPort:      v.GetString("DATABASE_PORT"),
		DBHost:      v.GetString("DATABASE_HOST"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTPTimeout: v.GetInt32("HTTP_TIMEOUT"),
	}

	return config, nil
}

// Validate reports configuration that makes a lookup impossible. It does no I/O.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) HistoryEnabled() bool {
	return c.DBHost != ""
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}
