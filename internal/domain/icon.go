package domain

// Condition names a weather icon band.
type Condition string

const (
	ConditionClear        Condition = "clear"
	ConditionPartlyCloudy Condition = "partly cloudy"
	ConditionFog          Condition = "fog"
	ConditionRain         Condition = "rain"
	ConditionSnow         Condition = "snow"
	ConditionThunderstorm Condition = "thunderstorm"
)

// iconBands are tested in order; maxCode is inclusive. Codes above the last
// band (or below the first) fall through to ConditionThunderstorm.
var iconBands = []struct {
	minCode   int
	maxCode   int
	condition Condition
}{
	{0, 0, ConditionClear},
	{1, 3, ConditionPartlyCloudy},
	{4, 48, ConditionFog},
	{49, 67, ConditionRain},
	{68, 86, ConditionSnow},
}

// ConditionFor maps a WMO weather code to its icon band.
func ConditionFor(code int) Condition {
	for _, b := range iconBands {
		if code >= b.minCode && code <= b.maxCode {
			return b.condition
		}
	}
	return ConditionThunderstorm
}

// Icon is a classified condition plus the image to show for it.
type Icon struct {
	Condition Condition `json:"condition"`
	URL       string    `json:"url"`
}

// IconSet holds the image URL for each condition.
type IconSet struct {
	Clear        string
	PartlyCloudy string
	Fog          string
	Rain         string
	Snow         string
	Thunderstorm string
}

// DefaultIconSet returns the flaticon images the widget has always used.
func DefaultIconSet() IconSet {
	return IconSet{
		Clear:        "https://cdn-icons-png.flaticon.com/512/869/869869.png",
		PartlyCloudy: "https://cdn-icons-png.flaticon.com/512/1163/1163624.png",
		Fog:          "https://cdn-icons-png.flaticon.com/512/4151/4151022.png",
		Rain:         "https://cdn-icons-png.flaticon.com/512/1146/1146858.png",
		Snow:         "https://cdn-icons-png.flaticon.com/512/2315/2315309.png",
		Thunderstorm: "https://cdn-icons-png.flaticon.com/512/1146/1146860.png",
	}
}

// Classify maps a weather code to an icon. It never fails.
func (s IconSet) Classify(code int) Icon {
	c := ConditionFor(code)
	return Icon{Condition: c, URL: s.urlFor(c)}
}

func (s IconSet) urlFor(c Condition) string {
	switch c {
	case ConditionClear:
		return s.Clear
	case ConditionPartlyCloudy:
		return s.PartlyCloudy
	case ConditionFog:
		return s.Fog
	case ConditionRain:
		return s.Rain
	case ConditionSnow:
		return s.Snow
	default:
		return s.Thunderstorm
	}
}
