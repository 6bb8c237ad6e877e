package domain

import "context"

// WeatherClient fetches current conditions for a coordinate pair.
type WeatherClient interface {
	// CurrentWeather returns the reading at lat/lon. Failures wrap
	// ErrServiceUnavailable or ErrNetworkFailure.
	CurrentWeather(ctx context.Context, lat, lon float64) (WeatherReading, error)
}
