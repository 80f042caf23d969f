package service

import (
	"fmt"
	"sort"

	"ulascansenturk/weather-atlas/internal/weatherdata"
)

// NotFoundError reports the first missing key of a country/city/month lookup.
// Detail is the client-facing message and names the already-resolved ancestor
// keys leading to the miss.
type NotFoundError struct {
	Detail string
}

func (e *NotFoundError) Error() string {
	return e.Detail
}

// WeatherAtlas exposes read-only queries over the bundled dataset.
type WeatherAtlas interface {
	Countries() []string
	Cities(country string) ([]string, error)
	MonthlyAverage(country, city, month string) (weatherdata.Temperature, error)
}

type weatherAtlas struct {
	data weatherdata.WeatherData
}

func NewWeatherAtlas(data weatherdata.WeatherData) WeatherAtlas {
	return &weatherAtlas{
		data: data,
	}
}

// Countries returns every country name, sorted ascending. An empty dataset
// yields an empty slice, never an error.
func (a *weatherAtlas) Countries() []string {
	return sortedKeys(a.data)
}

// Cities returns the city names of a country, sorted ascending. Country names
// are matched exactly, case-sensitive.
func (a *weatherAtlas) Cities(country string) ([]string, error) {
	cities, ok := a.data[country]
	if !ok {
		return nil, &NotFoundError{
			Detail: fmt.Sprintf("Country '%s' not found", country),
		}
	}

	return sortedKeys(cities), nil
}

// MonthlyAverage resolves country, then city, then month; the first missing
// key determines the error and no deeper lookup is attempted.
func (a *weatherAtlas) MonthlyAverage(country, city, month string) (weatherdata.Temperature, error) {
	cities, ok := a.data[country]
	if !ok {
		return weatherdata.Temperature{}, &NotFoundError{
			Detail: fmt.Sprintf("Country '%s' not found", country),
		}
	}

	months, ok := cities[city]
	if !ok {
		return weatherdata.Temperature{}, &NotFoundError{
			Detail: fmt.Sprintf("City '%s' not found in country '%s'", city, country),
		}
	}

	temperature, ok := months[month]
	if !ok {
		return weatherdata.Temperature{}, &NotFoundError{
			Detail: fmt.Sprintf("Month '%s' not found for city '%s' in country '%s'", month, city, country),
		}
	}

	return temperature, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
