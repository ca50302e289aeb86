package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MatsudaSaku/Devin-handson/internal/cli"
	"github.com/MatsudaSaku/Devin-handson/internal/locale"
	"github.com/stretchr/testify/suite"
)

type CLITestSuite struct {
	suite.Suite
	server   *httptest.Server
	requests atomic.Int32
	lastUnit atomic.Value
	lastLang atomic.Value
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
}

func (s *CLITestSuite) SetupTest() {
	s.requests.Store(0)
	s.lastUnit.Store("")
	s.lastLang.Store("")

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.requests.Add(1)
		q := r.URL.Query()
		s.lastUnit.Store(q.Get("units"))
		s.lastLang.Store(q.Get("lang"))

		if q.Get("appid") != "good-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"cod":401,"message":"Invalid API key."}`))
			return
		}

		switch q.Get("q") {
		case "Tokyo", "New York":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"name":     q.Get("q"),
				"timezone": 32400,
				"coord":    map[string]interface{}{"lat": 35.6895, "lon": 139.6917},
				"weather":  []map[string]interface{}{{"main": "Clear", "description": "clear sky"}},
				"main":     map[string]interface{}{"temp": 21.5, "feels_like": 21.0, "temp_min": 19.0, "temp_max": 23.0, "pressure": 1015, "humidity": 40},
				"wind":     map[string]interface{}{"speed": 3.6, "deg": 90},
				"clouds":   map[string]interface{}{"all": 0},
				"sys":      map[string]interface{}{"country": "JP", "sunrise": 1700000000, "sunset": 1700040000},
			})
		case "Broken":
			w.WriteHeader(http.StatusBadGateway)
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"cod":"404","message":"city not found"}`))
		}
	}))

	for _, key := range []string{"WEATHER_UNITS", "WEATHER_LANG", "NO_COLOR", "LOG_LEVEL", "HTTP_TIMEOUT", "DATABASE_HOST"} {
		s.T().Setenv(key, "")
	}
	s.T().Setenv("OPENWEATHER_API_KEY", "good-key")
	s.T().Setenv("OPENWEATHER_BASE_URL", s.server.URL)

	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}
}

func (s *CLITestSuite) TearDownTest() {
	s.server.Close()
}

func (s *CLITestSuite) run(l locale.Locale, args ...string) int {
	return cli.Main(context.Background(), cli.Options{
		Program: "weather",
		Version: "1.2.3",
		Locale:  l,
		Args:    args,
		Stdout:  s.stdout,
		Stderr:  s.stderr,
		Now:     func() time.Time { return time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) },
	})
}

func (s *CLITestSuite) TestSuccess() {
	code := s.run(locale.English, "Tokyo")

	s.Equal(0, code)
	s.Empty(s.stderr.String())
	s.True(strings.HasPrefix(s.stdout.String(), "Weather for Tokyo, JP\n"))
	s.Contains(s.stdout.String(), "    Current: 21.5°C\n")
	s.Contains(s.stdout.String(), "    Sunrise: 07:13 +09:00\n")
	s.Contains(s.stdout.String(), "  Fetched at: 2024-05-01 09:00:00 UTC\n")
	s.NotContains(s.stdout.String(), "\x1b[")
	s.Equal(int32(1), s.requests.Load())
	s.Equal("metric", s.lastUnit.Load())
	s.Equal("", s.lastLang.Load())
}

func (s *CLITestSuite) TestMultiWordCity() {
	code := s.run(locale.English, "New", "York")

	s.Equal(0, code)
	s.Contains(s.stdout.String(), "Weather for New York, JP")
}

func (s *CLITestSuite) TestUnitsFlag() {
	code := s.run(locale.English, "Tokyo", "--units", "imperial")

	s.Equal(0, code)
	s.Equal("imperial", s.lastUnit.Load())
	s.Contains(s.stdout.String(), "    Current: 21.5°F\n")
	s.Contains(s.stdout.String(), "    Speed: 3.6 mph\n")
}

func (s *CLITestSuite) TestKelvinUnits() {
	code := s.run(locale.English, "-u", "kelvin", "Tokyo")

	s.Equal(0, code)
	s.Equal("standard", s.lastUnit.Load())
	s.Contains(s.stdout.String(), "    Current: 21.5K\n")
}

func (s *CLITestSuite) TestInvalidUnits() {
	code := s.run(locale.English, "Tokyo", "--units", "rankine")

	s.Equal(1, code)
	s.Contains(s.stderr.String(), "Error: invalid units \"rankine\"")
	s.Equal(int32(0), s.requests.Load())
}

func (s *CLITestSuite) TestNotFound() {
	code := s.run(locale.English, "Atlantis")

	s.Equal(1, code)
	s.Empty(s.stdout.String())
	s.Contains(s.stderr.String(), "Error: ")
	s.Contains(s.stderr.String(), "Atlantis")
}

func (s *CLITestSuite) TestUnauthorized() {
	s.T().Setenv("OPENWEATHER_API_KEY", "bad-key")

	code := s.run(locale.English, "Tokyo")

	s.Equal(1, code)
	s.Contains(s.stderr.String(), "Error: Invalid API key")
	s.Contains(s.stderr.String(), "OPENWEATHER_API_KEY")
}

func (s *CLITestSuite) TestMissingAPIKeyMakesNoRequest() {
	s.T().Setenv("OPENWEATHER_API_KEY", "")

	code := s.run(locale.English, "Tokyo")

	s.Equal(1, code)
	s.Contains(s.stderr.String(), "Error: OPENWEATHER_API_KEY environment variable is not set")
	s.Equal(int32(0), s.requests.Load())
}

func (s *CLITestSuite) TestGenericFailureWrapsMessage() {
	code := s.run(locale.English, "Broken")

	s.Equal(1, code)
	s.Contains(s.stderr.String(), "Error: Failed to fetch weather data: 502 Bad Gateway")
}

func (s *CLITestSuite) TestTransportFailure() {
	s.server.Close()

	code := s.run(locale.English, "Tokyo")

	s.Equal(1, code)
	s.Contains(s.stderr.String(), "Error: Failed to fetch weather data:")
	s.NotContains(s.stderr.String(), "good-key")
}

func (s *CLITestSuite) TestMissingCity() {
	code := s.run(locale.English)

	s.Equal(1, code)
	s.Contains(s.stderr.String(), "a city name is required")
	s.Equal(int32(0), s.requests.Load())
}

func (s *CLITestSuite) TestUnknownFlag() {
	code := s.run(locale.English, "Tokyo", "--bogus")

	s.Equal(1, code)
	s.Contains(s.stderr.String(), "Error: unknown flag: --bogus")
	s.Equal(int32(0), s.requests.Load())
}

func (s *CLITestSuite) TestHelp() {
	code := s.run(locale.English, "--help")

	s.Equal(0, code)
	s.Contains(s.stdout.String(), "Usage: weather <city> [flags]")
	s.Contains(s.stdout.String(), "--units")
	s.Equal(int32(0), s.requests.Load())
}

func (s *CLITestSuite) TestVersion() {
	code := s.run(locale.English, "-v")

	s.Equal(0, code)
	s.Equal("weather 1.2.3\n", s.stdout.String())
}

func (s *CLITestSuite) TestJapaneseLocale() {
	code := s.run(locale.Japanese, "Tokyo")

	s.Equal(0, code)
	s.Equal("ja", s.lastLang.Load())
	s.True(strings.HasPrefix(s.stdout.String(), "Tokyo (JP) の天気\n"))
	s.Contains(s.stdout.String(), "    現在: 21.5°C\n")
}

func (s *CLITestSuite) TestJapaneseNotFound() {
	code := s.run(locale.Japanese, "Atlantis")

	s.Equal(1, code)
	s.Contains(s.stderr.String(), "エラー: 都市「Atlantis」が見つかりません")
}

func (s *CLITestSuite) TestLangFlagOverridesDefaultLocale() {
	code := s.run(locale.Japanese, "Tokyo", "--lang", "en")

	s.Equal(0, code)
	s.Equal("", s.lastLang.Load())
	s.True(strings.HasPrefix(s.stdout.String(), "Weather for Tokyo, JP\n"))
}

func (s *CLITestSuite) TestInvalidLang() {
	code := s.run(locale.English, "Tokyo", "--lang", "fr")

	s.Equal(1, code)
	s.Contains(s.stderr.String(), "unsupported language")
	s.Equal(int32(0), s.requests.Load())
}

func (s *CLITestSuite) TestJapaneseHelp() {
	code := s.run(locale.Japanese, "--help")

	s.Equal(0, code)
	s.Contains(s.stdout.String(), "使い方: weather <都市名>")
	s.Contains(s.stdout.String(), "温度の単位")
	s.Contains(s.stdout.String(), "このヘルプを表示する")
	s.NotContains(s.stdout.String(), "temperature units")
}

func (s *CLITestSuite) TestJapaneseInvalidLang() {
	code := s.run(locale.Japanese, "Tokyo", "--lang", "fr")

	s.Equal(1, code)
	s.Contains(s.stderr.String(), "エラー: 言語 \"fr\" には対応していません")
	s.Equal(int32(0), s.requests.Load())
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}
