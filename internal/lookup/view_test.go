package lookup_test

import (
	"fmt"
	"sync"

	"github.com/couchcryptid/weather-widget/internal/domain"
)

// snapshot is what a user would see after a lookup settles.
type snapshot struct {
	LoadingVisible bool
	ResultVisible  bool
	ErrorVisible   bool
	CityName       string
	Temperature    string
	Wind           string
	Icon           domain.Icon
	IconAlt        string
	ErrorMessage   string
}

// recordingView is a domain.View stub that keeps the current display state
// and the ordered list of calls made against it.
type recordingView struct {
	mu    sync.Mutex
	input string
	state snapshot
	calls []string
}

func newRecordingView(input string) *recordingView {
	return &recordingView{input: input}
}

func (v *recordingView) record(format string, args ...any) {
	v.calls = append(v.calls, fmt.Sprintf(format, args...))
}

func (v *recordingView) InputValue() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.input
}

func (v *recordingView) SetInput(s string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.input = s
}

func (v *recordingView) SetLoadingVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.LoadingVisible = visible
	v.record("loading=%t", visible)
}

func (v *recordingView) SetResultVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.ResultVisible = visible
	v.record("result=%t", visible)
}

func (v *recordingView) SetErrorVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.ErrorVisible = visible
	v.record("error=%t", visible)
}

func (v *recordingView) SetCityName(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.CityName = name
	v.record("city=%s", name)
}

func (v *recordingView) SetTemperature(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Temperature = text
	v.record("temp=%s", text)
}

func (v *recordingView) SetWind(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Wind = text
	v.record("wind=%s", text)
}

func (v *recordingView) SetIcon(icon domain.Icon, alt string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Icon = icon
	v.state.IconAlt = alt
	v.record("icon=%s", icon.Condition)
}

func (v *recordingView) SetErrorMessage(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.ErrorMessage = message
	v.record("message=%s", message)
}

func (v *recordingView) Snapshot() snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *recordingView) Calls() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]string(nil), v.calls...)
}

func (v *recordingView) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.calls = nil
}
