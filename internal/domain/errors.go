package domain

import "errors"

var (
	// ErrEmptyInput means the city input was empty after trimming.
	ErrEmptyInput = errors.New("empty city input")
	// ErrUnknownCity means the normalized input is not in the coordinate table.
	ErrUnknownCity = errors.New("unknown city")
	// ErrServiceUnavailable means the forecast API answered, but not with a usable forecast.
	ErrServiceUnavailable = errors.New("weather service unavailable")
	// ErrNetworkFailure means the forecast request could not complete at all.
	ErrNetworkFailure = errors.New("network failure")
)

// Outcome labels used in metrics, events and logs.
const (
	OutcomeSuccess            = "success"
	OutcomeEmptyInput         = "empty_input"
	OutcomeUnknownCity        = "unknown_city"
	OutcomeServiceUnavailable = "service_unavailable"
	OutcomeNetworkFailure     = "network_failure"
)

// Outcome maps a lookup error to its stable label. A nil error is a success.
// Errors outside the taxonomy are reported as network failures, which is how
// the widget surfaces them.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, ErrEmptyInput):
		return OutcomeEmptyInput
	case errors.Is(err, ErrUnknownCity):
		return OutcomeUnknownCity
	case errors.Is(err, ErrServiceUnavailable):
		return OutcomeServiceUnavailable
	default:
		return OutcomeNetworkFailure
	}
}
