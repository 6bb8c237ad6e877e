package http

import "github.com/couchcryptid/weather-widget/internal/domain"

// PageView is the server-side widget surface for one request. It implements
// domain.View by recording display state, which is then rendered as HTML or JSON.
type PageView struct {
	Input          string `json:"input"`
	LoadingVisible bool   `json:"loading_visible"`
	ResultVisible  bool   `json:"result_visible"`
	ErrorVisible   bool   `json:"error_visible"`

	CityName    string      `json:"city_name,omitempty"`
	Temperature string      `json:"temperature,omitempty"`
	Wind        string      `json:"wind,omitempty"`
	Icon        domain.Icon `json:"icon"`
	IconAlt     string      `json:"icon_alt,omitempty"`

	ErrorMessage string `json:"error_message,omitempty"`
}

func newPageView(input string) *PageView {
	return &PageView{Input: input}
}

func (v *PageView) InputValue() string             { return v.Input }
func (v *PageView) SetLoadingVisible(visible bool) { v.LoadingVisible = visible }
func (v *PageView) SetResultVisible(visible bool)  { v.ResultVisible = visible }
func (v *PageView) SetErrorVisible(visible bool)   { v.ErrorVisible = visible }
func (v *PageView) SetCityName(name string)        { v.CityName = name }
func (v *PageView) SetTemperature(text string)     { v.Temperature = text }
func (v *PageView) SetWind(text string)            { v.Wind = text }
func (v *PageView) SetErrorMessage(message string) { v.ErrorMessage = message }
func (v *PageView) SetIcon(icon domain.Icon, alt string) {
	v.Icon = icon
	v.IconAlt = alt
}

var _ domain.View = (*PageView)(nil)
