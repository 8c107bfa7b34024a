package solar

import (
	"fmt"
	"time"
)

// Events holds the solar event times for one calendar day at one location,
// expressed as fractional hours since local midnight. Values may exceed the
// [0, 24) range near the polar circles; consumers must not assume the usual
// dawn < sunrise < noon < sunset < dusk ordering holds.
type Events struct {
	Sunrise          float64 `json:"sunrise"`
	Sunset           float64 `json:"sunset"`
	CivilDawn        float64 `json:"civil_dawn"`
	CivilDusk        float64 `json:"civil_dusk"`
	NauticalDawn     float64 `json:"nautical_dawn"`
	NauticalDusk     float64 `json:"nautical_dusk"`
	AstronomicalDawn float64 `json:"astronomical_dawn"`
	AstronomicalDusk float64 `json:"astronomical_dusk"`
	SolarNoon        float64 `json:"solar_noon"`

	// Synthetic marks the deterministic no-coordinates fallback
	Synthetic bool `json:"synthetic,omitempty"`
}

// FallbackEvents returns the deterministic event set used when no coordinates
// are known for a timezone: a 06:00/18:00 day with twilight stages at fixed
// half-hour steps. The full set is always substituted together so downstream
// ordering assumptions hold.
func FallbackEvents() Events {
	return Events{
		Sunrise:          6.0,
		Sunset:           18.0,
		CivilDawn:        5.5,
		CivilDusk:        18.5,
		NauticalDawn:     5.0,
		NauticalDusk:     19.0,
		AstronomicalDawn: 4.5,
		AstronomicalDusk: 19.5,
		SolarNoon:        12.0,
		Synthetic:        true,
	}
}

// Daylight returns the sunset-sunrise span in hours. May be zero or negative
// for degenerate polar days.
func (e Events) Daylight() float64 {
	return e.Sunset - e.Sunrise
}

// Ordered reports whether the normal twilight ordering invariant holds
func (e Events) Ordered() bool {
	return e.AstronomicalDawn < e.NauticalDawn &&
		e.NauticalDawn < e.CivilDawn &&
		e.CivilDawn < e.Sunrise &&
		e.Sunrise < e.SolarNoon &&
		e.SolarNoon < e.Sunset &&
		e.Sunset < e.CivilDusk &&
		e.CivilDusk < e.NauticalDusk &&
		e.NauticalDusk < e.AstronomicalDusk
}

// DayKey identifies one calendar day in one timezone. Keys are shared by all
// queries falling on the same local day, not per instant.
func DayKey(timezone string, local time.Time) string {
	return fmt.Sprintf("%s:%04d-%02d-%02d", timezone, local.Year(), local.Month(), local.Day())
}
