package locale

import (
	"fmt"
	"strings"
)

type Locale string

const (
	English  Locale = "en"
	Japanese Locale = "ja"
)

type UnsupportedError struct {
	Value string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported language %q (expected en or ja)", e.Value)
}

func Parse(s string) (Locale, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "en", "english":
		return English, nil
	case "ja", "japanese", "jp":
		return Japanese, nil
	default:
		return English, &UnsupportedError{Value: s}
	}
}

// ProviderLang is the provider's "lang" parameter. English is the provider
// default and is left unset.
func (l Locale) ProviderLang() string {
	if l == Japanese {
		return "ja"
	}
	return ""
}

func (l Locale) Messages() Messages {
	if l == Japanese {
		return japanese
	}
	return english
}

// Messages holds every user-visible string for one locale. Templates take
// the arguments documented next to them.
type Messages struct {
	Title string // city, country

	Location    string
	City        string
	Country     string
	Coordinates string

	Condition   string
	Main        string
	Description string

	Temperature string
	Current     string
	FeelsLike   string
	Min         string
	Max         string

	Atmosphere string
	Pressure   string
	Humidity   string
	Visibility string

	Wind      string
	Speed     string
	Direction string

	Clouds   string
	Coverage string

	Sun     string
	Sunrise string
	Sunset  string

	FetchedAt string

	ErrorPrefix     string
	ErrMissingKey   string // env var name
	ErrNotFound     string // city
	ErrUnauthorized string
	ErrRequest      string // underlying error
	ErrUsage        string // program
	ErrInvalidUnits string // value
	ErrInvalidLang  string // value

	Usage string // program, program

	FlagUnits   string
	FlagLang    string
	FlagNoColor string
	FlagHelp    string
	FlagVersion string
}

var english = Messages{
	Title: "Weather for %s, %s",

	Location:    "Location",
	City:        "City",
	Country:     "Country",
	Coordinates: "Coordinates",

	Condition:   "Condition",
	Main:        "Main",
	Description: "Description",

	Temperature: "Temperature",
	Current:     "Current",
	FeelsLike:   "Feels like",
	Min:         "Min",
	Max:         "Max",

	Atmosphere: "Atmosphere",
	Pressure:   "Pressure",
	Humidity:   "Humidity",
	Visibility: "Visibility",

	Wind:      "Wind",
	Speed:     "Speed",
	Direction: "Direction",

	Clouds:   "Clouds",
	Coverage: "Coverage",

	Sun:     "Sun",
	Sunrise: "Sunrise",
	Sunset:  "Sunset",

	FetchedAt: "Fetched at",

	ErrorPrefix:     "Error:",
	ErrMissingKey:   "%s environment variable is not set",
	ErrNotFound:     "City %q not found",
	ErrUnauthorized: "Invalid API key. Please check your OPENWEATHER_API_KEY",
	ErrRequest:      "Failed to fetch weather data: %v",
	ErrUsage:        "a city name is required (see %s --help)",
	ErrInvalidUnits: "invalid units %q (expected metric, imperial or kelvin)",
	ErrInvalidLang:  "unsupported language %q (expected en or ja)",

	Usage: "Usage: %s <city> [flags]\n\nShow the current weather for a city.\n\nExample:\n  %s Tokyo --units imperial\n\nFlags:\n",

	FlagUnits:   "temperature units: metric, imperial or kelvin",
	FlagLang:    "output language: en or ja",
	FlagNoColor: "disable colored output",
	FlagHelp:    "show this help",
	FlagVersion: "show version",
}

var japanese = Messages{
	Title: "%s (%s) の天気",

	Location:    "場所",
	City:        "都市",
	Country:     "国",
	Coordinates: "座標",

	Condition:   "天候",
	Main:        "概要",
	Description: "詳細",

	Temperature: "気温",
	Current:     "現在",
	FeelsLike:   "体感",
	Min:         "最低",
	Max:         "最高",

	Atmosphere: "大気",
	Pressure:   "気圧",
	Humidity:   "湿度",
	Visibility: "視程",

	Wind:      "風",
	Speed:     "風速",
	Direction: "風向",

	Clouds:   "雲",
	Coverage: "雲量",

	Sun:     "太陽",
	Sunrise: "日の出",
	Sunset:  "日の入り",

	FetchedAt: "取得日時",

	ErrorPrefix:     "エラー:",
	ErrMissingKey:   "環境変数 %s が設定されていません",
	ErrNotFound:     "都市「%s」が見つかりません",
	ErrUnauthorized: "APIキーが無効です。OPENWEATHER_API_KEY を確認してください",
	ErrRequest:      "天気データの取得に失敗しました: %v",
	ErrUsage:        "都市名を指定してください (%s --help を参照)",
	ErrInvalidUnits: "単位 %q は無効です (metric、imperial、kelvin のいずれか)",
	ErrInvalidLang:  "言語 %q には対応していません (en または ja)",

	Usage: "使い方: %s <都市名> [オプション]\n\n指定した都市の現在の天気を表示します。\n\n例:\n  %s 東京 --units imperial\n\nオプション:\n",

	FlagUnits:   "温度の単位: metric、imperial、kelvin",
	FlagLang:    "表示言語: en または ja",
	FlagNoColor: "色付き出力を無効にする",
	FlagHelp:    "このヘルプを表示する",
	FlagVersion: "バージョンを表示する",
}
