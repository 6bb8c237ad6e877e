package domain

// View is the widget's UI surface. The lookup flow and presenter are its only
// writers; implementations decide how toggles and fields are displayed.
type View interface {
	// InputValue returns the raw text of the city input field.
	InputValue() string

	SetLoadingVisible(visible bool)
	SetResultVisible(visible bool)
	SetErrorVisible(visible bool)

	SetCityName(name string)
	SetTemperature(text string)
	SetWind(text string)
	SetIcon(icon Icon, alt string)

	SetErrorMessage(message string)
}
