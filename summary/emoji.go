package summary

import "strings"

// symbolEmoji maps locationforecast symbol codes, without their
// _day/_night/_polartwilight variant suffix, to an emoji.
// The misspelled lightssleet/lightssnow codes are the provider's own.
var symbolEmoji = map[string]string{
	"clearsky":     "☀️",
	"fair":         "🌤️",
	"partlycloudy": "⛅",
	"cloudy":       "☁️",
	"fog":          "🌫️",

	"lightrain":        "🌦️",
	"rain":             "🌧️",
	"heavyrain":        "🌧️",
	"lightrainshowers": "🌦️",
	"rainshowers":      "🌦️",
	"heavyrainshowers": "🌧️",

	"lightsleet":        "🌨️",
	"sleet":             "🌨️",
	"heavysleet":        "🌨️",
	"lightsleetshowers": "🌨️",
	"sleetshowers":      "🌨️",
	"heavysleetshowers": "🌨️",

	"lightsnow":        "❄️",
	"snow":             "❄️",
	"heavysnow":        "❄️",
	"lightsnowshowers": "🌨️",
	"snowshowers":      "🌨️",
	"heavysnowshowers": "🌨️",

	"lightrainandthunder":          "⛈️",
	"rainandthunder":               "⛈️",
	"heavyrainandthunder":          "⛈️",
	"lightrainshowersandthunder":   "⛈️",
	"rainshowersandthunder":        "⛈️",
	"heavyrainshowersandthunder":   "⛈️",
	"lightsleetandthunder":         "⛈️",
	"sleetandthunder":              "⛈️",
	"heavysleetandthunder":         "⛈️",
	"lightssleetshowersandthunder": "⛈️",
	"sleetshowersandthunder":       "⛈️",
	"heavysleetshowersandthunder":  "⛈️",
	"lightsnowandthunder":          "⛈️",
	"snowandthunder":               "⛈️",
	"heavysnowandthunder":          "⛈️",
	"lightssnowshowersandthunder":  "⛈️",
	"snowshowersandthunder":        "⛈️",
	"heavysnowshowersandthunder":   "⛈️",
}

var variantSuffixes = []string{"_day", "_night", "_polartwilight"}

// Emoji returns the emoji for a symbol code such as "partlycloudy_night".
// ok is false for codes not in the table.
func Emoji(symbolCode string) (emoji string, ok bool) {
	base := symbolCode
	for _, suffix := range variantSuffixes {
		if strings.HasSuffix(base, suffix) {
			base = strings.TrimSuffix(base, suffix)
			break
		}
	}
	emoji, ok = symbolEmoji[base]
	return emoji, ok
}
