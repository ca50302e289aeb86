package render

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/MatsudaSaku/Devin-handson/internal/locale"
	"github.com/MatsudaSaku/Devin-handson/internal/providers"
	"github.com/MatsudaSaku/Devin-handson/internal/units"
	"github.com/fatih/color"
)

const indent = "  "

type Renderer struct {
	Messages locale.Messages
	Units    units.System
	Colorize bool
	Now      func() time.Time
}

func NewRenderer(messages locale.Messages, system units.System, colorize bool) *Renderer {
	return &Renderer{
		Messages: messages,
		Units:    system,
		Colorize: colorize,
		Now:      time.Now,
	}
}

type palette struct {
	title       *color.Color
	section     *color.Color
	location    *color.Color
	condition   *color.Color
	temperature *color.Color
	atmosphere  *color.Color
	wind        *color.Color
	clouds      *color.Color
	sun         *color.Color
	meta        *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		title:       color.New(color.Bold, color.FgHiWhite),
		section:     color.New(color.Bold, color.FgCyan),
		location:    color.New(color.FgHiWhite),
		condition:   color.New(color.FgHiCyan),
		temperature: color.New(color.FgYellow),
		atmosphere:  color.New(color.FgBlue),
		wind:        color.New(color.FgGreen),
		clouds:      color.New(color.FgWhite),
		sun:         color.New(color.FgMagenta),
		meta:        color.New(color.Faint),
	}

	for _, c := range []*color.Color{
		p.title, p.section, p.location, p.condition, p.temperature,
		p.atmosphere, p.wind, p.clouds, p.sun, p.meta,
	} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

type printer struct {
	w *bufio.Writer
}

func (p printer) section(c *color.Color, title string) {
	fmt.Fprintf(p.w, "%s%s\n", indent, c.Sprint(title+":"))
}

func (p printer) field(label string, c *color.Color, value string) {
	fmt.Fprintf(p.w, "%s%s%s: %s\n", indent, indent, label, c.Sprint(value))
}

// Render writes the report sections in a fixed order: location, condition,
// temperature, atmosphere, wind, clouds, sun, fetch time.
func (r *Renderer) Render(w io.Writer, weather *providers.CurrentWeather) error {
	m := r.Messages
	c := newPalette(r.Colorize)
	p := printer{w: bufio.NewWriter(w)}

	deg := r.Units.TemperatureSymbol()
	temp := func(v float64) string { return fmt.Sprintf("%.1f%s", v, deg) }

	fmt.Fprintln(p.w, c.title.Sprintf(m.Title, weather.Name, weather.Sys.Country))

	p.section(c.section, m.Location)
	p.field(m.City, c.location, weather.Name)
	p.field(m.Country, c.location, weather.Sys.Country)
	p.field(m.Coordinates, c.location, fmt.Sprintf("%.4f, %.4f", weather.Coord.Lat, weather.Coord.Lon))

	main, description := weather.Condition()
	p.section(c.section, m.Condition)
	p.field(m.Main, c.condition, orDash(main))
	p.field(m.Description, c.condition, orDash(description))

	p.section(c.section, m.Temperature)
	p.field(m.Current, c.temperature, temp(weather.Main.Temp))
	p.field(m.FeelsLike, c.temperature, temp(weather.Main.FeelsLike))
	p.field(m.Min, c.temperature, temp(weather.Main.TempMin))
	p.field(m.Max, c.temperature, temp(weather.Main.TempMax))

	p.section(c.section, m.Atmosphere)
	p.field(m.Pressure, c.atmosphere, fmt.Sprintf("%d hPa", weather.Main.Pressure))
	p.field(m.Humidity, c.atmosphere, fmt.Sprintf("%d%%", weather.Main.Humidity))
	p.field(m.Visibility, c.atmosphere, fmt.Sprintf("%d m", weather.Visibility))

	p.section(c.section, m.Wind)
	p.field(m.Speed, c.wind, fmt.Sprintf("%.1f %s", weather.Wind.Speed, r.Units.SpeedUnit()))
	p.field(m.Direction, c.wind, fmt.Sprintf("%d° (%s)", weather.Wind.Deg, Compass(weather.Wind.Deg)))

	p.section(c.section, m.Clouds)
	p.field(m.Coverage, c.clouds, fmt.Sprintf("%d%%", weather.Clouds.All))

	zone := time.FixedZone("", weather.Timezone)
	p.section(c.section, m.Sun)
	p.field(m.Sunrise, c.sun, clock(weather.Sys.Sunrise, zone))
	p.field(m.Sunset, c.sun, clock(weather.Sys.Sunset, zone))

	fmt.Fprintf(p.w, "%s%s: %s\n", indent, m.FetchedAt, c.meta.Sprint(r.now().Format("2006-01-02 15:04:05 MST")))

	return p.w.Flush()
}

func (r *Renderer) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

var compassPoints = [...]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Compass maps a bearing in degrees to a 16-point compass direction.
func Compass(deg int) string {
	d := ((deg % 360) + 360) % 360
	return compassPoints[(d*100+1125)/2250%16]
}

func clock(epoch int64, zone *time.Location) string {
	if epoch == 0 {
		return "-"
	}
	return time.Unix(epoch, 0).In(zone).Format("15:04 -07:00")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
