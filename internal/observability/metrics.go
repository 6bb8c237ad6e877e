package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the widget service.
type Metrics struct {
	Lookups        *prometheus.CounterVec // labels: outcome={success,empty_input,unknown_city,service_unavailable,network_failure}
	LookupsIgnored prometheus.Counter
	LookupDuration prometheus.Histogram
	LookupsActive  prometheus.Gauge

	// Forecast API metrics.
	ForecastRequests    *prometheus.CounterVec // labels: outcome={success,service_unavailable,network_failure}
	ForecastAPIDuration prometheus.Histogram
	UpstreamUp          prometheus.Gauge

	// Lookup event metrics. Publishing hands an event to the sink; delivery
	// is reported later by the Kafka producer.
	EventsPublished *prometheus.CounterVec // labels: result={enqueued,error}
	EventsDelivered *prometheus.CounterVec // labels: result={ok,error}
}

// NewMetrics creates and registers all widget metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.Lookups,
		m.LookupsIgnored,
		m.LookupDuration,
		m.LookupsActive,
		m.ForecastRequests,
		m.ForecastAPIDuration,
		m.UpstreamUp,
		m.EventsPublished,
		m.EventsDelivered,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_widget",
			Name:      "lookups_total",
			Help:      "Completed city lookups by outcome.",
		}, []string{"outcome"}),
		LookupsIgnored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_widget",
			Name:      "lookups_ignored_total",
			Help:      "Triggers dropped because a lookup was already in flight.",
		}),
		LookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_widget",
			Name:      "lookup_duration_seconds",
			Help:      "Duration of a lookup from trigger to render, including the pacing delay.",
			Buckets:   []float64{0.001, 0.01, 0.1, 0.5, 0.75, 1, 2.5, 5, 10},
		}),
		LookupsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_widget",
			Name:      "lookups_in_flight",
			Help:      "Lookups currently waiting on the forecast API.",
		}),
		ForecastRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_widget",
			Name:      "forecast_requests_total",
			Help:      "Forecast API requests by outcome.",
		}, []string{"outcome"}),
		ForecastAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_widget",
			Name:      "forecast_api_duration_seconds",
			Help:      "Open-Meteo request duration in seconds, excluding the pacing delay.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		UpstreamUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_widget",
			Name:      "upstream_up",
			Help:      "1 when the last forecast API probe succeeded, 0 otherwise.",
		}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_widget",
			Name:      "lookup_events_published_total",
			Help:      "Lookup events handed to the event sink by result.",
		}, []string{"result"}),
		EventsDelivered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_widget",
			Name:      "lookup_events_delivered_total",
			Help:      "Lookup event messages acknowledged or rejected by Kafka.",
		}, []string{"result"}),
	}
}
