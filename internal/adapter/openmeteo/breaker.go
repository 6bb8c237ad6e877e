package openmeteo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/weather-widget/internal/domain"
	"github.com/sony/gobreaker"
)

// BreakerClient fails lookups fast while the forecast API keeps failing.
// It never retries; an open breaker is reported as service-unavailable.
type BreakerClient struct {
	inner   domain.WeatherClient
	circuit *gobreaker.CircuitBreaker
}

// NewBreakerClient trips after threshold consecutive failures and stays open for cooldown.
func NewBreakerClient(inner domain.WeatherClient, threshold uint32, cooldown time.Duration, logger *slog.Logger) *BreakerClient {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "open-meteo",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		IsSuccessful: isUpstreamHealthy,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})
	return &BreakerClient{inner: inner, circuit: cb}
}

func (b *BreakerClient) CurrentWeather(ctx context.Context, lat, lon float64) (domain.WeatherReading, error) {
	result, err := b.circuit.Execute(func() (interface{}, error) {
		reading, err := b.inner.CurrentWeather(ctx, lat, lon)
		if err != nil && ctx.Err() != nil {
			return reading, callerGoneError{err: err}
		}
		return reading, err
	})
	if err != nil {
		var gone callerGoneError
		if errors.As(err, &gone) {
			return domain.WeatherReading{}, gone.err
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return domain.WeatherReading{}, fmt.Errorf("%w: %w", domain.ErrServiceUnavailable, err)
		}
		return domain.WeatherReading{}, err
	}
	reading, ok := result.(domain.WeatherReading)
	if !ok {
		return domain.WeatherReading{}, fmt.Errorf("%w: unexpected result type %T", domain.ErrServiceUnavailable, result)
	}
	return reading, nil
}

// callerGoneError marks a failure caused by the caller's context ending.
// The breaker does not count it against the forecast API.
type callerGoneError struct{ err error }

func (e callerGoneError) Error() string { return e.err.Error() }
func (e callerGoneError) Unwrap() error { return e.err }

func isUpstreamHealthy(err error) bool {
	var gone callerGoneError
	return err == nil || errors.As(err, &gone)
}

var _ domain.WeatherClient = (*BreakerClient)(nil)
