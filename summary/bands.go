package summary

// MphPerMetrePerSecond converts the provider's m/s wind speeds to miles per hour
const MphPerMetrePerSecond = 2.237

// MetresPerSecondToMph converts a speed in m/s to mph
func MetresPerSecondToMph(v float64) float64 {
	return v * MphPerMetrePerSecond
}

// band is a phrase that applies from Min (inclusive) upwards
type band struct {
	Min    float64
	Phrase string
}

// Bands are lower-inclusive: a value equal to a threshold takes the warmer
// or windier phrase. Freezing is the exception and includes 0°C itself.
var temperatureBands = []band{
	{5, "quite chilly"},
	{10, "cool"},
	{16, "warm"},
	{25, "hot"},
	{32, "very hot"},
}

var windBands = []band{
	{4, "slightly breezy"},
	{13, "breezy"},
	{25, "windy"},
	{39, "very windy"},
}

func lookup(bands []band, floor string, v float64) string {
	phrase := floor
	for _, b := range bands {
		if v < b.Min {
			break
		}
		phrase = b.Phrase
	}
	return phrase
}

// TemperatureBand describes a temperature in Celsius
//
//	t <= 0        freezing
//	0 < t < 5     cold
//	5 <= t < 10   quite chilly
//	10 <= t < 16  cool
//	16 <= t < 25  warm
//	25 <= t < 32  hot
//	t >= 32       very hot
func TemperatureBand(celsius float64) string {
	if celsius <= 0 {
		return "freezing"
	}
	return lookup(temperatureBands, "cold", celsius)
}

// WindBand describes a wind speed in mph
//
//	w < 4         calm
//	4 <= w < 13   slightly breezy
//	13 <= w < 25  breezy
//	25 <= w < 39  windy
//	w >= 39       very windy
func WindBand(mph float64) string {
	return lookup(windBands, "calm", mph)
}
