package domain

import "time"

// WeatherReading is the current weather parsed from one forecast response.
type WeatherReading struct {
	Temperature float64 `json:"temperature"` // °C
	WindSpeed   float64 `json:"windspeed"`   // km/h
	WeatherCode int     `json:"weathercode"`
}

// LookupEvent records one completed lookup for downstream consumers.
type LookupEvent struct {
	ID          string          `json:"id"`
	Input       string          `json:"input"`
	City        string          `json:"city,omitempty"`
	Outcome     string          `json:"outcome"`
	Reading     *WeatherReading `json:"reading,omitempty"`
	Condition   Condition       `json:"condition,omitempty"`
	DurationMS  int64           `json:"duration_ms"`
	CompletedAt time.Time       `json:"completed_at"`
}

// NewLookupEvent stamps an event with the current time.
func NewLookupEvent(id, input, city, outcome string, reading *WeatherReading, d time.Duration) LookupEvent {
	e := LookupEvent{
		ID:          id,
		Input:       input,
		City:        city,
		Outcome:     outcome,
		Reading:     reading,
		DurationMS:  d.Milliseconds(),
		CompletedAt: eventClock.Now().UTC(),
	}
	if reading != nil {
		e.Condition = ConditionFor(reading.WeatherCode)
	}
	return e
}
