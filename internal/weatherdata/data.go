// Package weatherdata holds the bundled monthly temperature dataset and the
// types it deserializes into. The document is embedded at build time; a
// parse failure means the binary itself is broken, so callers treat it as
// fatal.
package weatherdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

// Temperature is the average high/low reading for one city-month, in the
// units of the source document (no conversion is performed).
type Temperature struct {
	High float64 `json:"high"`
	Low  float64 `json:"low"`
}

// WeatherData maps country -> city -> month -> Temperature. Keys are
// case-sensitive and matched exactly; month names are capitalized English
// names ("January", ...).
type WeatherData map[string]map[string]map[string]Temperature

//go:embed weather.json
var weatherJSON []byte

// Load parses the embedded dataset. It is called once at startup and the
// result is shared read-only for the lifetime of the process.
func Load() (WeatherData, error) {
	return parse(weatherJSON)
}

func parse(doc []byte) (WeatherData, error) {
	var data WeatherData
	if err := json.Unmarshal(doc, &data); err != nil {
		return nil, fmt.Errorf("malformed weather dataset: %w", err)
	}
	return data, nil
}
