package openmeteo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/couchcryptid/weather-widget/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mock for decorator tests ---

type countingClient struct {
	calls   int
	reading domain.WeatherReading
	err     error
}

func (m *countingClient) CurrentWeather(_ context.Context, _, _ float64) (domain.WeatherReading, error) {
	m.calls++
	return m.reading, m.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestBreakerClient_PassesThroughSuccess(t *testing.T) {
	inner := &countingClient{reading: domain.WeatherReading{Temperature: 18, WindSpeed: 4, WeatherCode: 0}}
	b := NewBreakerClient(inner, 2, time.Minute, discardLogger())

	reading, err := b.CurrentWeather(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, inner.reading, reading)
	assert.Equal(t, 1, inner.calls)
}

func TestBreakerClient_PassesThroughErrors(t *testing.T) {
	inner := &countingClient{err: fmt.Errorf("%w: dial tcp", domain.ErrNetworkFailure)}
	b := NewBreakerClient(inner, 5, time.Minute, discardLogger())

	_, err := b.CurrentWeather(context.Background(), 1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetworkFailure)
}

func TestBreakerClient_OpensAfterThreshold(t *testing.T) {
	inner := &countingClient{err: fmt.Errorf("%w: status 503", domain.ErrServiceUnavailable)}
	b := NewBreakerClient(inner, 2, time.Minute, discardLogger())

	for range 2 {
		_, err := b.CurrentWeather(context.Background(), 1, 2)
		require.Error(t, err)
	}
	require.Equal(t, 2, inner.calls)

	_, err := b.CurrentWeather(context.Background(), 1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	assert.Equal(t, 2, inner.calls, "open breaker must not call the API")
}

func TestBreakerClient_IgnoresCallerCancellation(t *testing.T) {
	inner := &countingClient{}
	b := NewBreakerClient(inner, 2, time.Minute, discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	inner.err = fmt.Errorf("%w: %w", domain.ErrNetworkFailure, ctx.Err())

	for range 5 {
		_, err := b.CurrentWeather(ctx, 1, 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNetworkFailure)
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, domain.ErrServiceUnavailable)
	}

	inner.err = nil
	inner.reading = domain.WeatherReading{Temperature: 12, WindSpeed: 8, WeatherCode: 3}
	reading, err := b.CurrentWeather(context.Background(), 1, 2)
	require.NoError(t, err, "breaker must stay closed after caller cancellations")
	assert.Equal(t, inner.reading, reading)
	assert.Equal(t, 6, inner.calls)
}

func TestBreakerClient_UpstreamTimeoutStillTrips(t *testing.T) {
	// The caller's context is alive, so the timeout is the API's fault.
	inner := &countingClient{err: fmt.Errorf("%w: %w", domain.ErrNetworkFailure, context.DeadlineExceeded)}
	b := NewBreakerClient(inner, 2, time.Minute, discardLogger())

	for range 2 {
		_, err := b.CurrentWeather(context.Background(), 1, 2)
		require.Error(t, err)
	}

	_, err := b.CurrentWeather(context.Background(), 1, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceUnavailable)
	assert.Equal(t, 2, inner.calls)
}
