package phase

import (
	"math"
	"testing"
	"time"

	"github.com/saaga0h/skyclock-platform/internal/solar"
)

// referenceEvents is a well-ordered mid-latitude day: 06:00 sunrise, 18:00
// sunset, dawn stages at half-hour steps, dusk stages at hourly steps so each
// dusk sub-window keeps its nominal width past the one-hour sunset window
func referenceEvents() solar.Events {
	return solar.Events{
		Sunrise:          6.0,
		Sunset:           18.0,
		CivilDawn:        5.5,
		CivilDusk:        19.5,
		NauticalDawn:     5.0,
		NauticalDusk:     20.5,
		AstronomicalDawn: 4.5,
		AstronomicalDusk: 21.5,
		SolarNoon:        12.0,
	}
}

// winterEvents is a short eight-hour day: 08:00 sunrise, 16:00 sunset. The
// noon window (solar noon ± 1.5h) starts before sunrise+4h here, so the
// morning ramp must hand off to it early.
func winterEvents() solar.Events {
	return solar.Events{
		Sunrise:          8.0,
		Sunset:           16.0,
		CivilDawn:        7.5,
		CivilDusk:        16.5,
		NauticalDawn:     7.0,
		NauticalDusk:     17.0,
		AstronomicalDawn: 6.5,
		AstronomicalDusk: 17.5,
		SolarNoon:        12.0,
	}
}

func at(hour, minute, second int) time.Time {
	return time.Date(2026, time.March, 20, hour, minute, second, 0, time.UTC)
}

func TestNormalizeKnownInstants(t *testing.T) {
	ev := referenceEvents()

	tests := []struct {
		name    string
		instant time.Time
		low     float64
		high    float64
	}{
		{"deep night", at(2, 0, 0), 0.0, 4.0},
		{"astronomical dawn", at(4, 45, 0), 4.0, 5.0},
		{"nautical dawn", at(5, 15, 0), 5.0, 6.0},
		{"civil dawn before sunrise", at(5, 45, 0), 6.0, 7.0},
		{"sunrise window", at(6, 30, 0), 7.0, 8.0},
		{"morning", at(8, 0, 0), 8.0, 11.0},
		{"late morning plateau", at(10, 15, 0), 11.0, 11.0},
		{"before noon", at(11, 30, 0), 11.0, 12.0},
		{"afternoon", at(14, 0, 0), 14.0, 17.0},
		{"golden hour", at(17, 30, 0), 17.0, 18.0},
		{"sunset window", at(18, 30, 0), 18.0, 19.0},
		{"civil dusk", at(19, 15, 0), 19.0, 20.0},
		{"nautical dusk", at(20, 0, 0), 20.0, 21.0},
		{"astronomical dusk", at(21, 0, 0), 21.0, 22.0},
		{"night falling", at(22, 0, 0), 22.0, 24.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(tt.instant, time.UTC, ev)
			if p < tt.low || p > tt.high {
				t.Errorf("Normalize(%s) = %f, want in [%f, %f]",
					tt.instant.Format("15:04:05"), p, tt.low, tt.high)
			}
		})
	}
}

func TestNormalizeCivilDawnSlot(t *testing.T) {
	// 05:45 is past civil dawn (05:30 in this fixture) but before sunrise,
	// so it must land in the civil-dawn-to-sunrise slot [6, 7)
	ev := referenceEvents()
	ev.CivilDawn = 5.5

	p := Normalize(at(5, 45, 0), time.UTC, ev)
	if p < 6.0 || p >= 7.0 {
		t.Errorf("Normalize(05:45) = %f, want in [6, 7)", p)
	}
}

func TestNormalizeSolarNoonExact(t *testing.T) {
	ev := referenceEvents()

	p := Normalize(at(12, 0, 0), time.UTC, ev)
	if p != 12.0 {
		t.Errorf("Normalize(12:00) = %v, want exactly 12.0", p)
	}
}

func TestNormalizeTieBreaks(t *testing.T) {
	ev := referenceEvents()

	// An instant exactly at sunset belongs to the dusk branch
	if p := Normalize(at(18, 0, 0), time.UTC, ev); p != 18.0 {
		t.Errorf("Normalize(sunset) = %f, want 18.0", p)
	}

	// An instant exactly at sunrise belongs to the day branch
	if p := Normalize(at(6, 0, 0), time.UTC, ev); p != 7.0 {
		t.Errorf("Normalize(sunrise) = %f, want 7.0", p)
	}
}

// sweepContinuity samples an entire day at one-second steps; consecutive
// phases may only differ by the steepest sub-window slope (the 0.1h floor
// maps one canonical unit over six minutes: 10 units/hour)
func sweepContinuity(t *testing.T, ev solar.Events) {
	t.Helper()
	const maxStep = 10.0 / 3600.0 * 1.5

	start := at(0, 0, 0)
	prev := Normalize(start, time.UTC, ev)
	for s := 1; s <= 24*3600; s++ {
		instant := start.Add(time.Duration(s) * time.Second)
		p := Normalize(instant, time.UTC, ev)

		// Compare on the phase circle so the 24 -> 0 wrap does not read as
		// a jump
		m := math.Mod(p-prev+12.0, 24.0)
		if m < 0 {
			m += 24.0
		}
		delta := math.Abs(m - 12.0)
		if delta > maxStep {
			t.Fatalf("phase jump of %f at %s (from %f to %f)",
				delta, instant.Format("15:04:05"), prev, p)
		}
		prev = p
	}
}

func TestNormalizeContinuity(t *testing.T) {
	sweepContinuity(t, referenceEvents())
}

func TestNormalizeContinuityFallbackDay(t *testing.T) {
	// The no-coordinates fallback packs civil dusk half an hour after sunset,
	// inside the one-hour sunset window; the dusk slots must degenerate to
	// their minimum width there, not be skipped
	sweepContinuity(t, solar.FallbackEvents())
}

func TestNormalizeContinuityShortDay(t *testing.T) {
	sweepContinuity(t, winterEvents())
}

func TestNormalizeShortDayMorningHandoff(t *testing.T) {
	// With eight hours of daylight the noon window starts at 10:30, before
	// the nominal sunrise+4h end of the morning ramp. The ramp must reach
	// exactly 11 at the handoff instead of jumping mid-ramp.
	ev := winterEvents()

	before := Normalize(at(10, 29, 59), time.UTC, ev)
	atHandoff := Normalize(at(10, 30, 0), time.UTC, ev)

	if before < 10.99 || before >= 11.0 {
		t.Errorf("Normalize(10:29:59) = %f, want just under 11", before)
	}
	if atHandoff != 11.0 {
		t.Errorf("Normalize(10:30:00) = %f, want exactly 11.0", atHandoff)
	}

	// Noon anchoring is unaffected by the early handoff
	if p := Normalize(at(12, 0, 0), time.UTC, ev); p != 12.0 {
		t.Errorf("Normalize(12:00) = %f, want exactly 12.0", p)
	}
}

func TestNormalizeCompressedDuskTraversesAllSlots(t *testing.T) {
	// All three dusk events inside the one-hour sunset window: each canonical
	// dusk slot must still be visited, in order, with no range skipped
	ev := solar.FallbackEvents()

	sunsetEnd := ev.Sunset + 1.0
	samples := []float64{
		sunsetEnd + 0.05, // civil dusk slot
		sunsetEnd + 0.15, // nautical dusk slot
		sunsetEnd + 0.25, // astronomical dusk slot
	}
	want := []float64{19.0, 20.0, 21.0}

	for i, h := range samples {
		hour := int(h)
		minute := int((h - float64(hour)) * 60.0)
		p := Normalize(at(hour, minute, 0), time.UTC, ev)
		if p < want[i] || p >= want[i]+1.0 {
			t.Errorf("Normalize(%.2fh) = %f, want in [%.0f, %.0f)",
				h, p, want[i], want[i]+1.0)
		}
	}
}

func TestNormalizeMonotonicWithinDay(t *testing.T) {
	ev := referenceEvents()

	// From astronomical dawn to deep night the phase must never decrease
	start := at(4, 30, 0)
	prev := Normalize(start, time.UTC, ev)
	for s := 60; s <= 19*3600; s += 60 {
		instant := start.Add(time.Duration(s) * time.Second)
		p := Normalize(instant, time.UTC, ev)
		if p < prev {
			t.Fatalf("phase decreased from %f to %f at %s",
				prev, p, instant.Format("15:04:05"))
		}
		prev = p
	}
}

func TestNormalizePolarDegenerate(t *testing.T) {
	tests := []struct {
		name string
		ev   solar.Events
	}{
		{
			name: "collapsed day",
			ev: solar.Events{
				Sunrise: 12.0, Sunset: 11.9,
				CivilDawn: 12.0, CivilDusk: 11.9,
				NauticalDawn: 12.0, NauticalDusk: 11.9,
				AstronomicalDawn: 12.0, AstronomicalDusk: 11.9,
				SolarNoon: 12.0,
			},
		},
		{
			name: "all events coincident",
			ev: solar.Events{
				Sunrise: 3.0, Sunset: 3.0,
				CivilDawn: 3.0, CivilDusk: 3.0,
				NauticalDawn: 3.0, NauticalDusk: 3.0,
				AstronomicalDawn: 3.0, AstronomicalDusk: 3.0,
				SolarNoon: 3.0,
			},
		},
		{
			name: "inverted twilight ordering",
			ev: solar.Events{
				Sunrise: 6.0, Sunset: 18.0,
				CivilDawn: 6.5, CivilDusk: 17.5,
				NauticalDawn: 7.0, NauticalDusk: 17.0,
				AstronomicalDawn: 7.5, AstronomicalDusk: 16.5,
				SolarNoon: 12.0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for hour := 0; hour < 24; hour++ {
				p := Normalize(at(hour, 30, 0), time.UTC, tt.ev)
				if math.IsNaN(p) || math.IsInf(p, 0) {
					t.Fatalf("Normalize at %02d:30 is not finite: %f", hour, p)
				}
				if p < 0.0 || p >= 24.0 {
					t.Fatalf("Normalize at %02d:30 = %f, want in [0, 24)", hour, p)
				}
			}
		})
	}
}

func TestNormalizeMidnightWrap(t *testing.T) {
	ev := referenceEvents()

	before := Normalize(at(23, 59, 59), time.UTC, ev)
	after := Normalize(at(0, 0, 0), time.UTC, ev)

	if before >= 24.0 {
		t.Errorf("phase before midnight = %f, must stay below 24", before)
	}

	// One second apart on the phase circle
	delta := math.Mod(after-before+24.0, 24.0)
	if delta > 0.01 {
		t.Errorf("midnight wrap jumps by %f (%f -> %f)", delta, before, after)
	}
}

func TestLocalHours(t *testing.T) {
	instant := time.Date(2026, time.June, 1, 13, 30, 36, 0, time.UTC)
	h := LocalHours(instant, time.UTC)
	if math.Abs(h-13.51) > 1e-9 {
		t.Errorf("LocalHours = %f, want 13.51", h)
	}
}
