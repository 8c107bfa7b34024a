// Package sun derives the sun's display geometry: compass direction,
// elevation, and a smooth vertical arc indicator for the rise/set dial.
package sun

import (
	"math"
	"time"

	"github.com/saaga0h/skyclock-platform/internal/phase"
	"github.com/saaga0h/skyclock-platform/internal/solar"
)

// Geometry holds the sun's display signals for one instant
type Geometry struct {
	// AzimuthDegrees is the compass direction, 0 = North, clockwise
	AzimuthDegrees float64 `json:"azimuth_degrees"`

	// AltitudeDegrees is elevation above the horizon, negative below
	AltitudeDegrees float64 `json:"altitude_degrees"`

	// VerticalPosition is a cosine arc indicator in [-1, 1]: +1 at solar
	// noon, 0 at sunrise/sunset, negative outside the daylight window. It is
	// a display signal, not a physical elevation.
	VerticalPosition float64 `json:"vertical_position"`

	// Progress is daylight progress: 0 at sunrise, 1 at sunset
	Progress float64 `json:"progress"`
}

// AzimuthAltitude carries an observed sun position from the ephemeris
type AzimuthAltitude struct {
	AzimuthDegrees  float64
	AltitudeDegrees float64
}

// minHalfDaylight floors the half-daylight divisor at one minute so a
// collapsed polar day cannot blow the arc angle up.
const minHalfDaylight = 1.0 / 60.0

// Compute derives the sun geometry for an instant from the day's solar
// events. observed carries the ephemeris azimuth/altitude; nil means no
// coordinates are known and a coarse hour-of-day synthesis is substituted so
// the indicator degrades gracefully instead of failing.
func Compute(instant time.Time, tz *time.Location, ev solar.Events, observed *AzimuthAltitude) Geometry {
	h := phase.LocalHours(instant, tz)

	g := Geometry{
		VerticalPosition: verticalPosition(h, ev),
		Progress:         daylightProgress(h, ev),
	}

	if observed != nil {
		g.AzimuthDegrees = observed.AzimuthDegrees
		g.AltitudeDegrees = observed.AltitudeDegrees
	} else {
		g.AzimuthDegrees = syntheticAzimuth(h)
		g.AltitudeDegrees = syntheticAltitude(h)
	}

	return g
}

// verticalPosition is cos(angle) where angle sweeps -pi/2..pi/2 across the
// daylight window, clamped to [-pi, pi] so the value settles at -1 far from
// the window instead of oscillating.
func verticalPosition(h float64, ev solar.Events) float64 {
	halfDaylight := ev.Daylight() / 2.0
	if halfDaylight < minHalfDaylight {
		halfDaylight = minHalfDaylight
	}

	angle := (h - ev.SolarNoon) / halfDaylight * (math.Pi / 2.0)
	if angle > math.Pi {
		angle = math.Pi
	}
	if angle < -math.Pi {
		angle = -math.Pi
	}

	return math.Cos(angle)
}

// daylightProgress maps the instant onto 0 (sunrise) .. 1 (sunset). A
// degenerate daylight window falls back to fraction-of-day since midnight.
func daylightProgress(h float64, ev solar.Events) float64 {
	span := ev.Daylight()
	if span <= 0 {
		return clamp01(h / 24.0)
	}
	return clamp01((h - ev.Sunrise) / span)
}

// syntheticAzimuth approximates the sun's compass direction from the hour of
// day with four linear segments: toward east overnight, east to south through
// the morning, south to west through the afternoon, west to north in the
// evening.
func syntheticAzimuth(h float64) float64 {
	switch {
	case h < 6.0:
		return 90.0 * (h / 6.0)
	case h < 12.0:
		return 90.0 + 90.0*((h-6.0)/6.0)
	case h < 18.0:
		return 180.0 + 90.0*((h-12.0)/6.0)
	default:
		return 270.0 + 90.0*((h-18.0)/6.0)
	}
}

// syntheticAltitude is a constant elevation: above the horizon through the
// nominal 06-18 day, below it otherwise
func syntheticAltitude(h float64) float64 {
	if h >= 6.0 && h < 18.0 {
		return 35.0
	}
	return -35.0
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
