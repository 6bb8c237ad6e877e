package openmeteo

import (
	"context"
	"fmt"

	"github.com/couchcryptid/weather-widget/internal/domain"
	"golang.org/x/time/rate"
)

// RateLimitedClient caps the request rate towards the forecast API.
type RateLimitedClient struct {
	inner   domain.WeatherClient
	limiter *rate.Limiter
}

// NewRateLimitedClient allows rps requests per second with the given burst.
func NewRateLimitedClient(inner domain.WeatherClient, rps float64, burst int) *RateLimitedClient {
	return &RateLimitedClient{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// CurrentWeather waits for a limiter token or context cancellation, then forwards.
func (r *RateLimitedClient) CurrentWeather(ctx context.Context, lat, lon float64) (domain.WeatherReading, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return domain.WeatherReading{}, fmt.Errorf("%w: rate limit wait: %w", domain.ErrNetworkFailure, err)
	}
	return r.inner.CurrentWeather(ctx, lat, lon)
}

var _ domain.WeatherClient = (*RateLimitedClient)(nil)
