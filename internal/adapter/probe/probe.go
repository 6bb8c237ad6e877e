package probe

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/couchcryptid/weather-widget/internal/domain"
	"github.com/couchcryptid/weather-widget/internal/observability"
	"github.com/go-co-op/gocron"
)

// errNotProbed is reported until the first probe completes.
var errNotProbed = errors.New("forecast API has not been probed yet")

// Pinger checks that the forecast API answers for a coordinate pair.
type Pinger interface {
	Ping(ctx context.Context, lat, lon float64) error
}

// Probe periodically pings the forecast API and backs the /readyz endpoint.
type Probe struct {
	pinger    Pinger
	city      domain.City
	interval  time.Duration
	timeout   time.Duration
	scheduler *gocron.Scheduler
	metrics   *observability.Metrics
	logger    *slog.Logger

	mu      sync.Mutex
	lastErr error
}

// New creates a Probe that pings the forecast for city every interval.
func New(pinger Pinger, city domain.City, interval time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Probe {
	s := gocron.NewScheduler(time.UTC)
	s.SingletonModeAll()
	return &Probe{
		pinger:    pinger,
		city:      city,
		interval:  interval,
		timeout:   10 * time.Second,
		scheduler: s,
		metrics:   metrics,
		logger:    logger,
		lastErr:   errNotProbed,
	}
}

// Start runs a first probe immediately and then one every interval.
func (p *Probe) Start() error {
	_, err := p.scheduler.Every(p.interval).Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		defer cancel()
		_ = p.Check(ctx)
	})
	if err != nil {
		return err
	}
	p.scheduler.StartAsync()
	p.logger.Info("upstream probe started", "interval", p.interval, "city", p.city.Name)
	return nil
}

// Stop cancels future probes.
func (p *Probe) Stop() {
	p.scheduler.Stop()
}

// Check pings the forecast API once and records the result.
func (p *Probe) Check(ctx context.Context) error {
	err := p.pinger.Ping(ctx, p.city.Lat, p.city.Lon)

	p.mu.Lock()
	changed := (err == nil) != (p.lastErr == nil)
	p.lastErr = err
	p.mu.Unlock()

	if err != nil {
		p.metrics.UpstreamUp.Set(0)
		if changed {
			p.logger.Warn("forecast API probe failed", "error", err)
		}
		return err
	}
	p.metrics.UpstreamUp.Set(1)
	if changed {
		p.logger.Info("forecast API reachable")
	}
	return nil
}

// CheckReadiness returns nil once the most recent probe succeeded.
func (p *Probe) CheckReadiness(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}
