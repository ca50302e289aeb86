package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MatsudaSaku/Devin-handson/internal/db/lookuplog"
	"github.com/MatsudaSaku/Devin-handson/internal/providers"
	"github.com/MatsudaSaku/Devin-handson/internal/units"
	"github.com/rs/zerolog/log"
)

var ErrEmptyCity = errors.New("city cannot be empty")

type WeatherService interface {
	GetWeather(ctx context.Context, city string, system units.System) (*providers.CurrentWeather, error)
}

type weatherService struct {
	provider providers.WeatherProvider
	history  lookuplog.Repository
	lang     string
}

// NewWeatherService builds the lookup service. history may be nil, in which
// case lookups are not recorded.
func NewWeatherService(provider providers.WeatherProvider, history lookuplog.Repository, lang string) WeatherService {
	return &weatherService{
		provider: provider,
		history:  history,
		lang:     lang,
	}
}

func (s *weatherService) GetWeather(ctx context.Context, city string, system units.System) (*providers.CurrentWeather, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	weather, err := s.provider.GetCurrentWeather(ctx, city, system, s.lang)
	if err != nil {
		return nil, err
	}

	if s.history != nil {
		if err := s.history.LogLookup(city, weather.Sys.Country, system.String(), weather.Main.Temp); err != nil {
			log.Warn().Err(err).Str("city", city).Msg("Failed to log weather lookup")
		}
	}

	return weather, nil
}
