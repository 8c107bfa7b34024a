// Package ephemeris adapts the suncalc solar position library to the
// fractional-hour event model used by the rest of the engine. At high
// latitudes suncalc cannot produce every twilight instant (polar day/night);
// undefined instants fall back field-wise toward sunrise/sunset so the
// returned set is always complete.
package ephemeris

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"

	"github.com/saaga0h/skyclock-platform/internal/geo"
	"github.com/saaga0h/skyclock-platform/internal/solar"
)

// SolarEventsFor computes the solar events for the calendar day of instant in
// the given timezone, expressed as fractional local hours relative to that
// day's midnight. A twilight instant spilling past local midnight (late
// astronomical dusk at ~50°N in summer) lands above 24 rather than folding
// back into the small hours.
func SolarEventsFor(loc geo.Location, tz *time.Location, instant time.Time) solar.Events {
	local := instant.In(tz)
	// Anchor the query at local noon so suncalc resolves events for this
	// calendar day rather than rolling into a neighbour near midnight.
	anchor := time.Date(local.Year(), local.Month(), local.Day(), 12, 0, 0, 0, tz)

	times := suncalc.GetTimes(anchor, loc.Latitude, loc.Longitude)

	sunrise := localHour(times[suncalc.Sunrise].Value, anchor, 6.0)
	sunset := localHour(times[suncalc.Sunset].Value, anchor, 18.0)

	// Twilight stages are clamped stepwise toward sunrise/sunset: a fallback
	// constant for one undefined stage must not land past a defined later
	// stage, or the ordering the normalizer relies on inverts.
	civilDawn := math.Min(localHour(times[suncalc.Dawn].Value, anchor, sunrise-0.5), sunrise)
	nauticalDawn := math.Min(localHour(times[suncalc.NauticalDawn].Value, anchor, sunrise-1.0), civilDawn)
	astroDawn := math.Min(localHour(times[suncalc.NightEnd].Value, anchor, sunrise-1.5), nauticalDawn)

	civilDusk := math.Max(localHour(times[suncalc.Dusk].Value, anchor, sunset+0.5), sunset)
	nauticalDusk := math.Max(localHour(times[suncalc.NauticalDusk].Value, anchor, sunset+1.0), civilDusk)
	astroDusk := math.Max(localHour(times[suncalc.Night].Value, anchor, sunset+1.5), nauticalDusk)

	return solar.Events{
		Sunrise:          sunrise,
		Sunset:           sunset,
		CivilDawn:        civilDawn,
		CivilDusk:        civilDusk,
		NauticalDawn:     nauticalDawn,
		NauticalDusk:     nauticalDusk,
		AstronomicalDawn: astroDawn,
		AstronomicalDusk: astroDusk,
		SolarNoon:        localHour(times[suncalc.SolarNoon].Value, anchor, 12.0),
	}
}

// SunPosition returns the sun's compass azimuth (degrees clockwise from
// North) and altitude (degrees above the horizon) for a location and instant.
func SunPosition(loc geo.Location, instant time.Time) (azimuthDeg, altitudeDeg float64) {
	pos := suncalc.GetPosition(instant, loc.Latitude, loc.Longitude)

	// suncalc azimuth is radians from south, positive westward
	azimuthDeg = pos.Azimuth*(180.0/math.Pi) + 180.0
	azimuthDeg = math.Mod(azimuthDeg, 360.0)
	if azimuthDeg < 0 {
		azimuthDeg += 360.0
	}

	altitudeDeg = pos.Altitude * (180.0 / math.Pi)
	return azimuthDeg, altitudeDeg
}

// localHour converts an event instant to fractional hours relative to the
// anchor day's local midnight: an event on the following local day is hour+24,
// on the preceding day hour-24. A zero instant means suncalc could not produce
// the event (polar conditions); the caller-supplied fallback is substituted so
// the event set stays total.
func localHour(t time.Time, anchor time.Time, fallback float64) float64 {
	if t.IsZero() {
		return fallback
	}
	local := t.In(anchor.Location())
	h := float64(local.Hour()) +
		float64(local.Minute())/60.0 +
		float64(local.Second())/3600.0
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return fallback
	}

	switch {
	case local.Year() > anchor.Year() ||
		(local.Year() == anchor.Year() && local.YearDay() > anchor.YearDay()):
		h += 24.0
	case local.Year() < anchor.Year() ||
		(local.Year() == anchor.Year() && local.YearDay() < anchor.YearDay()):
		h -= 24.0
	}
	return h
}
