package providers

// CurrentWeather is the provider's current-conditions payload. Only the
// fields the report prints are decoded.
type CurrentWeather struct {
	Name     string `json:"name"`
	Timezone int    `json:"timezone"`
	Dt       int64  `json:"dt"`
	Coord    struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []WeatherCondition `json:"weather"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Visibility int `json:"visibility"`
	Wind       struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
}

type WeatherCondition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// Condition returns the first reported condition, or empty strings when the
// provider sent none.
func (w *CurrentWeather) Condition() (main, description string) {
	if len(w.Weather) == 0 {
		return "", ""
	}
	return w.Weather[0].Main, w.Weather[0].Description
}
