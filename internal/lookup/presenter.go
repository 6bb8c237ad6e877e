package lookup

import (
	"fmt"
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/couchcryptid/weather-widget/internal/domain"
)

// Presenter renders lookup outcomes into a view. After either render call
// exactly one of the result and error regions is visible.
type Presenter struct {
	view  domain.View
	icons domain.IconSet
}

// NewPresenter creates a Presenter writing into view.
func NewPresenter(view domain.View, icons domain.IconSet) *Presenter {
	return &Presenter{view: view, icons: icons}
}

// RenderResult shows a successful reading for the normalized city name.
func (p *Presenter) RenderResult(city string, reading domain.WeatherReading) {
	p.view.SetCityName(DisplayCityName(city))
	p.view.SetTemperature(FormatTemperature(reading.Temperature))
	p.view.SetWind(FormatWind(reading.WindSpeed))
	p.view.SetIcon(p.icons.Classify(reading.WeatherCode), fmt.Sprintf("Weather condition code %d", reading.WeatherCode))

	p.view.SetErrorVisible(false)
	p.view.SetResultVisible(true)
}

// RenderError shows message in the error region.
func (p *Presenter) RenderError(message string) {
	p.view.SetErrorMessage(message)

	p.view.SetResultVisible(false)
	p.view.SetErrorVisible(true)
}

// DisplayCityName upper-cases the first letter of a normalized city name.
func DisplayCityName(city string) string {
	r, size := utf8.DecodeRuneInString(city)
	if size == 0 {
		return ""
	}
	return string(unicode.ToUpper(r)) + city[size:]
}

// FormatTemperature rounds half-up to a whole degree: 21.5 → "22", -2.5 → "-2".
func FormatTemperature(celsius float64) string {
	return strconv.Itoa(int(math.Floor(celsius + 0.5)))
}

// FormatWind renders wind speed exactly as reported, without trailing zeros.
func FormatWind(speed float64) string {
	return strconv.FormatFloat(speed, 'f', -1, 64)
}
