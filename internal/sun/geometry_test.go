package sun

import (
	"math"
	"testing"
	"time"

	"github.com/saaga0h/skyclock-platform/internal/solar"
)

func standardDay() solar.Events {
	return solar.Events{
		Sunrise: 6.0, Sunset: 18.0,
		CivilDawn: 5.5, CivilDusk: 18.5,
		NauticalDawn: 5.0, NauticalDusk: 19.0,
		AstronomicalDawn: 4.5, AstronomicalDusk: 19.5,
		SolarNoon: 12.0,
	}
}

func at(hour, minute int) time.Time {
	return time.Date(2026, time.March, 20, hour, minute, 0, 0, time.UTC)
}

func TestVerticalPositionArc(t *testing.T) {
	ev := standardDay()

	tests := []struct {
		name     string
		instant  time.Time
		expected float64
		epsilon  float64
	}{
		{"solar noon", at(12, 0), 1.0, 0.0},
		{"sunrise", at(6, 0), 0.0, 1e-9},
		{"sunset", at(18, 0), 0.0, 1e-9},
		{"mid morning", at(9, 0), math.Cos(math.Pi / 4.0), 1e-9},
		{"deep night clamps", at(0, 0), -1.0, 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Compute(tt.instant, time.UTC, ev, nil)
			if math.Abs(g.VerticalPosition-tt.expected) > tt.epsilon {
				t.Errorf("VerticalPosition(%s) = %f, want %f",
					tt.instant.Format("15:04"), g.VerticalPosition, tt.expected)
			}
		})
	}
}

func TestVerticalPositionRange(t *testing.T) {
	ev := standardDay()
	for hour := 0; hour < 24; hour++ {
		g := Compute(at(hour, 0), time.UTC, ev, nil)
		if g.VerticalPosition < -1.0 || g.VerticalPosition > 1.0 {
			t.Fatalf("VerticalPosition at %02d:00 = %f outside [-1, 1]", hour, g.VerticalPosition)
		}
	}
}

func TestVerticalPositionDegenerateDay(t *testing.T) {
	// Collapsed polar day: sunset at or before sunrise must not divide by
	// zero or oscillate
	ev := solar.Events{Sunrise: 12.0, Sunset: 12.0, SolarNoon: 12.0}

	for hour := 0; hour < 24; hour++ {
		g := Compute(at(hour, 0), time.UTC, ev, nil)
		if math.IsNaN(g.VerticalPosition) || math.IsInf(g.VerticalPosition, 0) {
			t.Fatalf("VerticalPosition at %02d:00 is not finite", hour)
		}
		if g.VerticalPosition < -1.0 || g.VerticalPosition > 1.0 {
			t.Fatalf("VerticalPosition at %02d:00 = %f outside [-1, 1]", hour, g.VerticalPosition)
		}
	}
}

func TestDaylightProgress(t *testing.T) {
	ev := standardDay()

	tests := []struct {
		name     string
		instant  time.Time
		expected float64
	}{
		{"before sunrise clamps to 0", at(3, 0), 0.0},
		{"sunrise", at(6, 0), 0.0},
		{"noon", at(12, 0), 0.5},
		{"sunset", at(18, 0), 1.0},
		{"after sunset clamps to 1", at(21, 0), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Compute(tt.instant, time.UTC, ev, nil)
			if math.Abs(g.Progress-tt.expected) > 1e-9 {
				t.Errorf("Progress(%s) = %f, want %f",
					tt.instant.Format("15:04"), g.Progress, tt.expected)
			}
		})
	}
}

func TestDaylightProgressFallback(t *testing.T) {
	// With no usable daylight window, progress degrades to fraction of the
	// day since midnight
	ev := solar.Events{Sunrise: 12.0, Sunset: 12.0, SolarNoon: 12.0}

	g := Compute(at(6, 0), time.UTC, ev, nil)
	if math.Abs(g.Progress-0.25) > 1e-9 {
		t.Errorf("fallback progress = %f, want 0.25", g.Progress)
	}
}

func TestObservedPositionPassThrough(t *testing.T) {
	ev := standardDay()
	observed := &AzimuthAltitude{AzimuthDegrees: 123.4, AltitudeDegrees: 45.6}

	g := Compute(at(12, 0), time.UTC, ev, observed)
	if g.AzimuthDegrees != 123.4 || g.AltitudeDegrees != 45.6 {
		t.Errorf("observed position not passed through: %+v", g)
	}
}

func TestSyntheticPosition(t *testing.T) {
	ev := standardDay()

	tests := []struct {
		name       string
		instant    time.Time
		azimuth    float64
		altitudeUp bool
	}{
		{"east at 06", at(6, 0), 90.0, true},
		{"south at 12", at(12, 0), 180.0, true},
		{"west at 18", at(18, 0), 270.0, false},
		{"mid morning southeast", at(9, 0), 135.0, true},
		{"night trends toward east", at(3, 0), 45.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Compute(tt.instant, time.UTC, ev, nil)
			if math.Abs(g.AzimuthDegrees-tt.azimuth) > 1e-9 {
				t.Errorf("synthetic azimuth = %f, want %f", g.AzimuthDegrees, tt.azimuth)
			}
			if tt.altitudeUp && g.AltitudeDegrees <= 0 {
				t.Errorf("synthetic altitude = %f, want positive", g.AltitudeDegrees)
			}
			if !tt.altitudeUp && g.AltitudeDegrees >= 0 {
				t.Errorf("synthetic altitude = %f, want negative", g.AltitudeDegrees)
			}
		})
	}
}
