package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/weather-widget/internal/domain"
	"github.com/couchcryptid/weather-widget/internal/observability"
	"github.com/jonboulle/clockwork"
)

// Client implements domain.WeatherClient using the Open-Meteo forecast API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	delay      time.Duration
	clock      clockwork.Clock
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an Open-Meteo client. A zero timeout keeps the transport
// default; delay is waited once before every CurrentWeather request.
func NewClient(baseURL string, timeout, delay time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		delay:   delay,
		clock:   clockwork.NewRealClock(),
		metrics: metrics,
		logger:  logger,
	}
}

// CurrentWeather waits the pacing delay, then fetches current conditions at lat/lon.
func (c *Client) CurrentWeather(ctx context.Context, lat, lon float64) (domain.WeatherReading, error) {
	if err := c.pace(ctx); err != nil {
		return domain.WeatherReading{}, fmt.Errorf("%w: %w", domain.ErrNetworkFailure, err)
	}

	start := time.Now()
	reading, err := c.fetch(ctx, lat, lon)
	c.metrics.ForecastAPIDuration.Observe(time.Since(start).Seconds())
	c.metrics.ForecastRequests.WithLabelValues(domain.Outcome(err)).Inc()
	if err != nil {
		c.logger.Debug("forecast request failed", "lat", lat, "lon", lon, "error", err)
	}
	return reading, err
}

// Ping issues one forecast request without the pacing delay.
func (c *Client) Ping(ctx context.Context, lat, lon float64) error {
	_, err := c.fetch(ctx, lat, lon)
	return err
}

// pace blocks for the configured delay. The wait happens exactly once per
// lookup so a loading indicator stays visible on fast networks.
func (c *Client) pace(ctx context.Context) error {
	if c.delay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.clock.After(c.delay):
		return nil
	}
}

func (c *Client) fetch(ctx context.Context, lat, lon float64) (domain.WeatherReading, error) {
	params := url.Values{
		"latitude":        {strconv.FormatFloat(lat, 'f', -1, 64)},
		"longitude":       {strconv.FormatFloat(lon, 'f', -1, 64)},
		"current_weather": {"true"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.WeatherReading{}, fmt.Errorf("%w: create request: %w", domain.ErrNetworkFailure, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.WeatherReading{}, fmt.Errorf("%w: forecast request: %w", domain.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.WeatherReading{}, fmt.Errorf("%w: status %d: %s", domain.ErrServiceUnavailable, resp.StatusCode, body)
	}

	var forecast response
	if err := json.NewDecoder(resp.Body).Decode(&forecast); err != nil {
		return domain.WeatherReading{}, fmt.Errorf("%w: decode response: %w", domain.ErrServiceUnavailable, err)
	}
	return forecast.reading()
}

// Open-Meteo API response types.

type response struct {
	CurrentWeather *currentWeather `json:"current_weather"`
}

type currentWeather struct {
	Temperature *float64 `json:"temperature"`
	WindSpeed   *float64 `json:"windspeed"`
	WeatherCode *int     `json:"weathercode"`
}

func (r response) reading() (domain.WeatherReading, error) {
	cw := r.CurrentWeather
	if cw == nil {
		return domain.WeatherReading{}, fmt.Errorf("%w: response has no current_weather", domain.ErrServiceUnavailable)
	}
	if cw.Temperature == nil || cw.WindSpeed == nil || cw.WeatherCode == nil {
		return domain.WeatherReading{}, fmt.Errorf("%w: current_weather is missing fields", domain.ErrServiceUnavailable)
	}
	return domain.WeatherReading{
		Temperature: *cw.Temperature,
		WindSpeed:   *cw.WindSpeed,
		WeatherCode: *cw.WeatherCode,
	}, nil
}
