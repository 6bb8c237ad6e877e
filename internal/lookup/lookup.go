package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/weather-widget/internal/domain"
	"github.com/couchcryptid/weather-widget/internal/observability"
	"github.com/google/uuid"
)

// User-facing messages. Raw errors are logged, never shown.
const (
	MessageEmptyInput     = "⚠️ Please enter a city name."
	MessageNetworkFailure = "❌ Network failure. Please check your internet connection."
)

// MessageUnknownCity lists a few supported cities as guidance.
var MessageUnknownCity = func() string {
	names := domain.SupportedCities()
	if len(names) > 4 {
		names = names[:4]
	}
	for i, n := range names {
		names[i] = DisplayCityName(n)
	}
	return "🚫 City not found in database. Try: " + strings.Join(names, ", ") + "..."
}()

// ErrLookupInFlight is returned when a trigger arrives while the same widget
// is still waiting on a lookup. The trigger is dropped and the view untouched.
var ErrLookupInFlight = errors.New("lookup already in flight")

// EventPublisher receives a record of every completed lookup. Publish may
// return before the event is delivered.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.LookupEvent) error
}

// Result describes one completed lookup.
type Result struct {
	ID       string
	Input    string
	City     string // normalized; empty when validation failed
	State    State  // StateSucceeded or StateFailed
	Reading  *domain.WeatherReading
	Err      error
	Message  string // user-facing error message
	Duration time.Duration
}

// Outcome returns the stable label for the result.
func (r Result) Outcome() string {
	return domain.Outcome(r.Err)
}

// Service holds the collaborators shared by every widget instance.
type Service struct {
	client  domain.WeatherClient
	icons   domain.IconSet
	events  EventPublisher
	metrics *observability.Metrics
	logger  *slog.Logger
}

// NewService creates a Service. Pass a nil publisher to disable lookup events.
func NewService(client domain.WeatherClient, icons domain.IconSet, events EventPublisher, metrics *observability.Metrics, logger *slog.Logger) *Service {
	return &Service{
		client:  client,
		icons:   icons,
		events:  events,
		metrics: metrics,
		logger:  logger,
	}
}

// Bind attaches a view and returns the orchestrator for that widget instance.
func (s *Service) Bind(view domain.View) *Orchestrator {
	return &Orchestrator{
		svc:       s,
		view:      view,
		presenter: NewPresenter(view, s.icons),
	}
}

// Orchestrator runs the lookup flow for one widget: validate the input,
// resolve coordinates, fetch the weather and render the outcome.
type Orchestrator struct {
	svc       *Service
	view      domain.View
	presenter *Presenter
	inFlight  atomic.Bool
	state     atomic.Int32
}

// State returns the current step of the flow.
func (o *Orchestrator) State() State {
	return State(o.state.Load())
}

// Trigger runs one lookup using the view's current input. Submit and the
// Enter key both call Trigger. A trigger while another lookup is in flight
// returns ErrLookupInFlight; every other outcome, failures included, is
// reported through the Result and the view.
func (o *Orchestrator) Trigger(ctx context.Context) (Result, error) {
	if !o.inFlight.CompareAndSwap(false, true) {
		o.svc.metrics.LookupsIgnored.Inc()
		o.svc.logger.Info("lookup ignored", "reason", ErrLookupInFlight)
		return Result{}, ErrLookupInFlight
	}
	defer o.inFlight.Store(false)
	defer o.setState(StateIdle)

	start := time.Now()
	res := o.run(ctx, uuid.NewString(), o.view.InputValue())
	res.Duration = time.Since(start)

	outcome := res.Outcome()
	o.svc.metrics.Lookups.WithLabelValues(outcome).Inc()
	o.svc.metrics.LookupDuration.Observe(res.Duration.Seconds())
	o.svc.logger.Info("lookup completed",
		"lookup_id", res.ID,
		"city", res.City,
		"outcome", outcome,
		"duration", res.Duration,
	)
	o.publish(ctx, res)

	return res, nil
}

func (o *Orchestrator) run(ctx context.Context, id, input string) Result {
	o.view.SetResultVisible(false)
	o.view.SetErrorVisible(false)

	o.setState(StateValidating)
	city := domain.NormalizeCity(input)
	if city == "" {
		return o.fail(Result{ID: id, Input: input}, domain.ErrEmptyInput, MessageEmptyInput)
	}

	o.setState(StateResolving)
	coords, ok := domain.LookupCity(city)
	if !ok {
		return o.fail(Result{ID: id, Input: input, City: city},
			fmt.Errorf("%w: %q", domain.ErrUnknownCity, city), MessageUnknownCity)
	}

	reading, err := o.fetch(ctx, coords)
	if err != nil {
		o.svc.logger.Warn("weather fetch failed", "lookup_id", id, "city", city, "error", err)
		return o.fail(Result{ID: id, Input: input, City: city}, err, MessageNetworkFailure)
	}

	o.setState(StateSucceeded)
	o.presenter.RenderResult(city, reading)
	return Result{ID: id, Input: input, City: city, State: StateSucceeded, Reading: &reading}
}

// fetch shows the loading indicator for exactly the duration of the client call.
func (o *Orchestrator) fetch(ctx context.Context, c domain.City) (domain.WeatherReading, error) {
	o.setState(StateLoading)
	o.view.SetLoadingVisible(true)
	o.svc.metrics.LookupsActive.Inc()
	defer func() {
		o.svc.metrics.LookupsActive.Dec()
		o.view.SetLoadingVisible(false)
	}()

	return o.svc.client.CurrentWeather(ctx, c.Lat, c.Lon)
}

func (o *Orchestrator) fail(res Result, err error, message string) Result {
	o.setState(StateFailed)
	o.presenter.RenderError(message)
	res.State = StateFailed
	res.Err = err
	res.Message = message
	return res
}

func (o *Orchestrator) setState(s State) {
	o.state.Store(int32(s))
}

func (o *Orchestrator) publish(ctx context.Context, res Result) {
	if o.svc.events == nil {
		return
	}
	event := domain.NewLookupEvent(res.ID, res.Input, res.City, res.Outcome(), res.Reading, res.Duration)
	if err := o.svc.events.Publish(ctx, event); err != nil {
		o.svc.metrics.EventsPublished.WithLabelValues("error").Inc()
		o.svc.logger.Warn("publish lookup event failed", "lookup_id", res.ID, "error", err)
		return
	}
	o.svc.metrics.EventsPublished.WithLabelValues("enqueued").Inc()
}
