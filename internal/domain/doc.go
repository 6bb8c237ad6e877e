// Package domain models the city weather widget: the closed city table, the
// current-weather reading returned by Open-Meteo, the condition icon bands and
// the UI capability the lookup flow renders into.
//
// # Data Source
//
// Readings come from the Open-Meteo forecast endpoint
// (https://api.open-meteo.com/v1/forecast) queried with
// current_weather=true. The response nests the fields we use under
// "current_weather":
//
//	{"current_weather": {"temperature": 21.6, "windspeed": 13.0, "weathercode": 2, ...}}
//
// Temperature is degrees Celsius, wind speed is km/h, both as floats.
//
// # City Resolution
//
// There is no geocoding. Cities resolve through a fixed, hand-maintained
// table keyed by the lowercase, trimmed city name:
//
//	"  NaIrObI " → "nairobi" → (-1.2864, 36.8172)
//
// Matching is exact after normalization; "nairob" or "nairobi city" are
// unknown. Adding a city means adding a row to [cities].
//
// # Weather Codes
//
// Open-Meteo reports WMO weather interpretation codes (0–99). The widget
// collapses them into six icon bands, tested in ascending order with an
// inclusive upper bound; the first band that matches wins:
//
//	0        clear
//	1–3      partly cloudy
//	4–48     fog            (WMO uses 45 and 48)
//	49–67    rain           (drizzle 51–57, rain 61–67)
//	68–86    snow           (snow 71–77, snow showers 85–86)
//	≥ 87     thunderstorm   (95–99; also the catch-all)
//
// Negative codes never come from the API but are still classified: they fall
// through every band into the thunderstorm catch-all, so [IconSet.Classify]
// is total.
//
// # Display Conventions
//
// Temperatures are shown rounded half-up to a whole degree (21.5 → 22,
// -2.5 → -2). Wind speed is shown exactly as reported. The echoed city name
// is the normalized key with its first letter upper-cased ("new york" →
// "New york").
package domain
