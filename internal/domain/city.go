package domain

import "strings"

// City is a row in the static coordinate table.
type City struct {
	Name string // lowercase, trimmed key
	Lat  float64
	Lon  float64
}

// cities is the closed set of supported cities, in display order.
var cities = []City{
	{Name: "nairobi", Lat: -1.2864, Lon: 36.8172},
	{Name: "mombasa", Lat: -4.0435, Lon: 39.6682},
	{Name: "kisumu", Lat: -0.0917, Lon: 34.7680},
	{Name: "london", Lat: 51.5074, Lon: -0.1278},
	{Name: "new york", Lat: 40.7128, Lon: -74.0060},
	{Name: "tokyo", Lat: 35.6762, Lon: 139.6503},
	{Name: "dubai", Lat: 25.2048, Lon: 55.2708},
	{Name: "sydney", Lat: -33.8688, Lon: 151.2093},
}

var cityIndex = func() map[string]City {
	m := make(map[string]City, len(cities))
	for _, c := range cities {
		m[c.Name] = c
	}
	return m
}()

// NormalizeCity trims surrounding whitespace and lowercases a raw city input.
func NormalizeCity(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// LookupCity resolves a raw city input against the coordinate table.
// Only exact matches after normalization are found.
func LookupCity(raw string) (City, bool) {
	c, ok := cityIndex[NormalizeCity(raw)]
	return c, ok
}

// SupportedCities returns the table's city keys in display order.
func SupportedCities() []string {
	names := make([]string, len(cities))
	for i, c := range cities {
		names[i] = c.Name
	}
	return names
}
