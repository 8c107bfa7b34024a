package ephemeris

import (
	"testing"
	"time"

	"github.com/saaga0h/skyclock-platform/internal/geo"
	"github.com/saaga0h/skyclock-platform/internal/solar"
)

func TestSolarEventsForEquatorEquinox(t *testing.T) {
	// At the equator on the prime meridian, an equinox day is as close to the
	// textbook 06:00/18:00 day as the real sky gets
	loc := geo.Location{Latitude: 0, Longitude: 0}
	instant := time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)

	ev := SolarEventsFor(loc, time.UTC, instant)

	if ev.Sunrise < 5.0 || ev.Sunrise > 7.0 {
		t.Errorf("equinox sunrise = %f, want near 6", ev.Sunrise)
	}
	if ev.Sunset < 17.0 || ev.Sunset > 19.0 {
		t.Errorf("equinox sunset = %f, want near 18", ev.Sunset)
	}
	if ev.SolarNoon < 11.0 || ev.SolarNoon > 13.0 {
		t.Errorf("equinox solar noon = %f, want near 12", ev.SolarNoon)
	}
	if !ev.Ordered() {
		t.Errorf("equinox events out of order: %+v", ev)
	}
	if ev.Synthetic {
		t.Error("computed events must not be flagged synthetic")
	}
}

func TestSolarEventsForPolarSummer(t *testing.T) {
	// Midsummer above the arctic circle: several twilight instants are
	// undefined and must fall back instead of going to zero
	loc := geo.Location{Latitude: 69.6496, Longitude: 18.9553} // Tromsø
	instant := time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC)

	ev := SolarEventsFor(loc, time.UTC, instant)

	for name, h := range map[string]float64{
		"sunrise":           ev.Sunrise,
		"sunset":            ev.Sunset,
		"civil_dawn":        ev.CivilDawn,
		"civil_dusk":        ev.CivilDusk,
		"nautical_dawn":     ev.NauticalDawn,
		"nautical_dusk":     ev.NauticalDusk,
		"astronomical_dawn": ev.AstronomicalDawn,
		"astronomical_dusk": ev.AstronomicalDusk,
		"solar_noon":        ev.SolarNoon,
	} {
		if h != h { // NaN
			t.Errorf("%s is NaN under polar day", name)
		}
	}
}

func TestSunPosition(t *testing.T) {
	loc := geo.Location{Latitude: 0, Longitude: 0}

	azNoon, altNoon := SunPosition(loc, time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC))
	if azNoon < 0 || azNoon >= 360 {
		t.Errorf("azimuth %f outside compass range", azNoon)
	}
	if altNoon < 60 {
		t.Errorf("equinox noon altitude at the equator = %f, want near zenith", altNoon)
	}

	_, altMidnight := SunPosition(loc, time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))
	if altMidnight > -60 {
		t.Errorf("equinox midnight altitude at the equator = %f, want far below horizon", altMidnight)
	}
}

func TestLocalHour(t *testing.T) {
	anchor := time.Date(2026, 6, 21, 12, 0, 0, 0, time.UTC)

	if got := localHour(time.Time{}, anchor, 6.5); got != 6.5 {
		t.Errorf("zero instant should use fallback, got %f", got)
	}

	sameDay := time.Date(2026, 6, 21, 14, 30, 0, 0, time.UTC)
	if got := localHour(sameDay, anchor, 0); got != 14.5 {
		t.Errorf("localHour(14:30) = %f, want 14.5", got)
	}

	// An event past the anchor day's midnight reads as hour+24, one on the
	// preceding day as hour-24
	nextDay := time.Date(2026, 6, 22, 0, 30, 0, 0, time.UTC)
	if got := localHour(nextDay, anchor, 0); got != 24.5 {
		t.Errorf("localHour(next day 00:30) = %f, want 24.5", got)
	}
	prevDay := time.Date(2026, 6, 20, 23, 30, 0, 0, time.UTC)
	if got := localHour(prevDay, anchor, 0); got != -0.5 {
		t.Errorf("localHour(previous day 23:30) = %f, want -0.5", got)
	}

	helsinki, err := time.LoadLocation("Europe/Helsinki")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	helsinkiAnchor := time.Date(2026, 6, 21, 12, 0, 0, 0, helsinki)
	// 14:30 UTC is 17:30 in Helsinki summer time
	if got := localHour(sameDay, helsinkiAnchor, 0); got != 17.5 {
		t.Errorf("localHour in Helsinki = %f, want 17.5", got)
	}
}

// eventsOrdered checks non-strict twilight ordering; clamped stages may tie
func eventsOrdered(ev solar.Events) bool {
	return ev.AstronomicalDawn <= ev.NauticalDawn &&
		ev.NauticalDawn <= ev.CivilDawn &&
		ev.CivilDawn <= ev.Sunrise &&
		ev.Sunrise <= ev.SolarNoon &&
		ev.SolarNoon <= ev.Sunset &&
		ev.Sunset <= ev.CivilDusk &&
		ev.CivilDusk <= ev.NauticalDusk &&
		ev.NauticalDusk <= ev.AstronomicalDusk
}

func TestSolarEventsOrderedMidsummerMidLatitude(t *testing.T) {
	// Paris at the solstice: astronomical twilight never ends, so suncalc
	// drops the astronomical stages while nautical dusk runs to ~23:42. The
	// substituted fallback must not land before the real nautical dusk.
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	loc := geo.Location{Latitude: 48.8566, Longitude: 2.3522}
	instant := time.Date(2026, 6, 21, 12, 0, 0, 0, paris)

	ev := SolarEventsFor(loc, paris, instant)

	if !eventsOrdered(ev) {
		t.Fatalf("midsummer events out of order: %+v", ev)
	}
	if ev.AstronomicalDusk < ev.NauticalDusk {
		t.Errorf("astronomical dusk %f precedes nautical dusk %f",
			ev.AstronomicalDusk, ev.NauticalDusk)
	}
}

func TestSolarEventsPastMidnightStayLate(t *testing.T) {
	// At ~55°N in midsummer the astronomical dusk can cross local midnight;
	// it must read as a late hour (>20), never fold to the small hours and
	// break the dusk ordering
	copenhagen, err := time.LoadLocation("Europe/Copenhagen")
	if err != nil {
		t.Fatalf("failed to load timezone: %v", err)
	}
	loc := geo.Location{Latitude: 55.6761, Longitude: 12.5683}
	instant := time.Date(2026, 6, 21, 12, 0, 0, 0, copenhagen)

	ev := SolarEventsFor(loc, copenhagen, instant)

	if !eventsOrdered(ev) {
		t.Fatalf("midsummer events out of order: %+v", ev)
	}
	if ev.AstronomicalDusk < 20.0 {
		t.Errorf("astronomical dusk = %f, must stay on the late side of the day",
			ev.AstronomicalDusk)
	}
}
