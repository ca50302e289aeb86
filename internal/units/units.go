package units

import (
	"fmt"
	"strings"
)

// System selects the temperature scale requested from the provider and the
// suffixes used when printing values.
type System int

const (
	Metric System = iota
	Imperial
	Kelvin
)

type InvalidError struct {
	Value string
}

func (e *InvalidError) Error() string {
	return fmt.Sprintf("invalid units %q (expected metric, imperial or kelvin)", e.Value)
}

func Parse(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "metric":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	case "kelvin":
		return Kelvin, nil
	default:
		return Metric, &InvalidError{Value: s}
	}
}

func (u System) String() string {
	switch u {
	case Imperial:
		return "imperial"
	case Kelvin:
		return "kelvin"
	default:
		return "metric"
	}
}

// APIValue is the value of the provider's "units" query parameter.
// The provider calls Kelvin "standard".
func (u System) APIValue() string {
	switch u {
	case Imperial:
		return "imperial"
	case Kelvin:
		return "standard"
	default:
		return "metric"
	}
}

func (u System) TemperatureSymbol() string {
	switch u {
	case Imperial:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return "°C"
	}
}

func (u System) SpeedUnit() string {
	if u == Imperial {
		return "mph"
	}
	return "m/s"
}
