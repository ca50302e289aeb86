package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/MatsudaSaku/Devin-handson/config"
	"github.com/MatsudaSaku/Devin-handson/internal/db/lookuplog"
	"github.com/MatsudaSaku/Devin-handson/internal/locale"
	"github.com/MatsudaSaku/Devin-handson/internal/providers"
	"github.com/MatsudaSaku/Devin-handson/internal/render"
	"github.com/MatsudaSaku/Devin-handson/internal/service"
	"github.com/MatsudaSaku/Devin-handson/internal/units"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

const (
	exitOK    = 0
	exitError = 1
)

var errUsage = errors.New("missing city argument")

type Options struct {
	Program string
	Version string
	Locale  locale.Locale
	Args    []string
	Stdout  io.Writer
	Stderr  io.Writer
	Now     func() time.Time
}

// Main runs one lookup and returns the process exit status.
func Main(ctx context.Context, opts Options) int {
	messages := opts.Locale.Messages()
	log.Logger = newLogger(opts.Stderr, "warn", opts.Program)

	fail := func(m locale.Messages, err error) int {
		fmt.Fprintf(opts.Stderr, "%s %s\n", m.ErrorPrefix, describe(m, opts.Program, err))
		return exitError
	}

	fs := pflag.NewFlagSet(opts.Program, pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.StringP("units", "u", "metric", messages.FlagUnits)
	fs.String("lang", "", messages.FlagLang)
	fs.Bool("no-color", false, messages.FlagNoColor)
	help := fs.BoolP("help", "h", false, messages.FlagHelp)
	version := fs.BoolP("version", "v", false, messages.FlagVersion)

	if err := fs.Parse(opts.Args); err != nil {
		return fail(messages, err)
	}

	if *help {
		fmt.Fprintf(opts.Stdout, messages.Usage, opts.Program, opts.Program)
		fs.SetOutput(opts.Stdout)
		fs.PrintDefaults()
		return exitOK
	}

	if *version {
		fmt.Fprintf(opts.Stdout, "%s %s\n", opts.Program, opts.Version)
		return exitOK
	}

	conf, err := config.LoadConfig(opts.Program, fs)
	if err != nil {
		return fail(messages, err)
	}

	log.Logger = newLogger(opts.Stderr, conf.LogLevel, conf.ServiceName)

	loc := opts.Locale
	if conf.Lang != "" {
		if loc, err = locale.Parse(conf.Lang); err != nil {
			return fail(messages, err)
		}
		messages = loc.Messages()
	}

	city := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if city == "" {
		return fail(messages, errUsage)
	}

	system, err := units.Parse(conf.Units)
	if err != nil {
		return fail(messages, err)
	}

	if err := conf.Validate(); err != nil {
		return fail(messages, err)
	}

	weatherService := service.NewWeatherService(
		providers.NewOpenWeatherClient(conf.APIKey, conf.BaseURL, conf.HTTPTimeoutDuration()),
		openHistory(conf),
		loc.ProviderLang(),
	)

	weather, err := weatherService.GetWeather(ctx, city, system)
	if err != nil {
		log.Debug().Err(err).Str("city", city).Msg("weather lookup failed")
		return fail(messages, err)
	}

	out, colorize := terminal(opts.Stdout, conf.NoColor)

	renderer := render.NewRenderer(messages, system, colorize)
	if opts.Now != nil {
		renderer.Now = opts.Now
	}

	if err := renderer.Render(out, weather); err != nil {
		return fail(messages, err)
	}

	return exitOK
}

func newLogger(w io.Writer, level, serviceName string) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		logLevel = zerolog.WarnLevel
	}

	return zerolog.New(w).
		Level(logLevel).
		With().
		Str("service_name", serviceName).
		Timestamp().
		Logger()
}

// openHistory returns nil when history is disabled or the database is
// unreachable; a lookup never fails because of it.
func openHistory(conf *config.Config) lookuplog.Repository {
	if !conf.HistoryEnabled() {
		return nil
	}

	db, err := lookuplog.Open(conf.DSN())
	if err != nil {
		log.Warn().Err(err).Str("host", conf.DBHost).Msg("lookup history disabled")
		return nil
	}

	return lookuplog.NewRepository(db)
}

// terminal wraps w for ANSI output when it is a color-capable terminal.
func terminal(w io.Writer, disabled bool) (io.Writer, bool) {
	if disabled || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return w, false
	}

	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return w, false
	}

	return colorable.NewColorable(f), true
}

func describe(m locale.Messages, program string, err error) string {
	var (
		notFound     *providers.NotFoundError
		unauthorized *providers.UnauthorizedError
		unsupported  *locale.UnsupportedError
		requestErr   *providers.RequestError
		invalidUnits *units.InvalidError
	)

	switch {
	case errors.Is(err, config.ErrMissingAPIKey):
		return fmt.Sprintf(m.ErrMissingKey, config.APIKeyEnv)
	case errors.Is(err, errUsage), errors.Is(err, service.ErrEmptyCity):
		return fmt.Sprintf(m.ErrUsage, program)
	case errors.As(err, &invalidUnits):
		return fmt.Sprintf(m.ErrInvalidUnits, invalidUnits.Value)
	case errors.As(err, &unsupported):
		return fmt.Sprintf(m.ErrInvalidLang, unsupported.Value)
	case errors.As(err, &notFound):
		return fmt.Sprintf(m.ErrNotFound, notFound.City)
	case errors.As(err, &unauthorized):
		return m.ErrUnauthorized
	case errors.As(err, &requestErr):
		if requestErr.StatusCode != 0 {
			return fmt.Sprintf(m.ErrRequest, fmt.Sprintf("%d %v", requestErr.StatusCode, requestErr.Err))
		}
		return fmt.Sprintf(m.ErrRequest, requestErr.Err)
	default:
		return err.Error()
	}
}
