package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MatsudaSaku/Devin-handson/internal/units"
	"github.com/rs/zerolog/log"
)

const DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, city string, system units.System, lang string) (*CurrentWeather, error)
}

type openWeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewOpenWeatherClient(apiKey, baseURL string, timeout time.Duration) WeatherProvider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &openWeatherClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *openWeatherClient) GetCurrentWeather(ctx context.Context, city string, system units.System, lang string) (*CurrentWeather, error) {
	endpoint, err := c.requestURL(city, system, lang)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	log.Debug().Str("city", city).Str("units", system.APIValue()).Msg("requesting current weather")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &RequestError{Err: redact(err, c.apiKey)}
	}
	defer resp.Body.Close()

	log.Debug().Int("status", resp.StatusCode).Str("city", city).Msg("weather API responded")

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, &NotFoundError{City: city}
	case http.StatusUnauthorized:
		return nil, &UnauthorizedError{}
	default:
		return nil, &RequestError{StatusCode: resp.StatusCode, Err: errors.New(statusDetail(resp))}
	}

	var weather CurrentWeather
	if err := json.NewDecoder(resp.Body).Decode(&weather); err != nil {
		return nil, &RequestError{Err: fmt.Errorf("malformed JSON: %w", err)}
	}

	return &weather, nil
}

func (c *openWeatherClient) requestURL(city string, system units.System, lang string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}

	q := u.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", system.APIValue())
	if lang != "" {
		q.Set("lang", lang)
	}
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// statusDetail prefers the provider's own "message" field over the bare
// status text.
func statusDetail(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		var payload struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
			return payload.Message
		}
	}
	return http.StatusText(resp.StatusCode)
}

// redact keeps the credential out of error messages; url.Error embeds the
// full request URL with the key query-escaped.
func redact(err error, apiKey string) error {
	if apiKey == "" {
		return err
	}

	msg := err.Error()
	redacted := msg
	for _, form := range []string{url.QueryEscape(apiKey), apiKey} {
		redacted = strings.ReplaceAll(redacted, form, "REDACTED")
	}
	if redacted == msg {
		return err
	}
	return errors.New(redacted)
}
