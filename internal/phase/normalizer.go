// Package phase maps real clock time onto a canonical 24-unit day phase.
//
// Twilight durations vary wildly with latitude and season, so the engine
// reparameterizes real time: each visually meaningful stage (civil, nautical,
// astronomical twilight, sunrise, golden hour) always occupies a fixed-width
// canonical slot no matter how long it really lasts. The output drives the
// sky gradient and star field, which therefore look consistent in Reykjavik
// and in Singapore.
package phase

import (
	"math"
	"time"

	"github.com/saaga0h/skyclock-platform/internal/solar"
)

// minWindow is the minimum window width in hours used as a division floor
// when real event windows collapse or invert near the polar circles. The
// result is visually coarse there but always finite.
const minWindow = 0.1

// Canonical slot boundaries. Adjacent slots share their boundary value
// exactly, which is what makes the mapping continuous.
//
//	 0- 4  deep night
//	 4- 5  astronomical dawn
//	 5- 6  nautical dawn
//	 6- 7  civil dawn
//	 7- 8  sunrise
//	 8-11  morning
//	11-14  midday (centered on solar noon)
//	14-17  afternoon
//	17-18  golden hour
//	18-19  sunset
//	19-20  civil dusk
//	20-21  nautical dusk
//	21-22  astronomical dusk
//	22-24  night falling toward deep night

// Normalize maps an instant onto the canonical [0, 24) phase scale using the
// day's real solar events. Branching uses real sunrise/sunset; ties resolve
// toward the later-named phase (an instant exactly at sunset is dusk).
func Normalize(instant time.Time, tz *time.Location, ev solar.Events) float64 {
	h := LocalHours(instant, tz)

	var p float64
	switch {
	case h >= ev.Sunset:
		p = duskPhase(h, ev)
	case h < ev.Sunrise:
		p = dawnPhase(h, ev)
	default:
		p = dayPhase(h, ev)
	}

	p = math.Mod(p, 24.0)
	if p < 0 {
		p += 24.0
	}
	return p
}

// LocalHours returns the fractional hour of the instant in the given zone
func LocalHours(instant time.Time, tz *time.Location) float64 {
	local := instant.In(tz)
	return float64(local.Hour()) +
		float64(local.Minute())/60.0 +
		float64(local.Second())/3600.0 +
		float64(local.Nanosecond())/3.6e12
}

// dayPhase covers real sunrise (inclusive) to real sunset (exclusive).
// Sub-window boundaries are chained: each effective boundary is pushed past
// the previous one, so every canonical slot is traversed in order even when
// the real windows overlap (short winter days put solar_noon-1.5h inside the
// morning ramp). The morning ramp ends at whichever comes first of
// sunrise+4h and the noon window, reaching exactly 11 at the handoff; on
// long days it plateaus there instead. The noon window is anchored at solar
// noon itself: its first half fills 11-12 and its second half 12-14, so an
// instant exactly at solar noon is exactly 12.
func dayPhase(h float64, ev solar.Events) float64 {
	sunriseEnd := ev.Sunrise + 1.0
	noonStart := math.Max(ev.SolarNoon-1.5, sunriseEnd+minWindow)
	morningEnd := math.Min(ev.Sunrise+4.0, noonStart)
	noonMid := math.Max(ev.SolarNoon, noonStart+minWindow)
	noonEnd := math.Max(ev.SolarNoon+1.5, noonMid+minWindow)
	goldenStart := math.Max(ev.Sunset-1.0, noonEnd+minWindow)

	switch {
	case h < sunriseEnd:
		return 7.0 + progress(h, ev.Sunrise, sunriseEnd)
	case h < noonStart:
		return 8.0 + 3.0*progress(h, sunriseEnd, morningEnd)
	case h < noonMid:
		return 11.0 + progress(h, noonStart, noonMid)
	case h < noonEnd:
		return 12.0 + 2.0*progress(h, noonMid, noonEnd)
	case h < goldenStart:
		return 14.0 + 3.0*progress(h, noonEnd, goldenStart)
	default:
		return 17.0 + progress(h, goldenStart, ev.Sunset)
	}
}

// duskBounds chains the dusk sub-window end boundaries. A real event falling
// before the previous window's end (civil dusk under half an hour after
// sunset is the common mid-latitude case, against the one-hour sunset window)
// degenerates its slot to the minimum width instead of being skipped, which
// would jump the phase across the skipped canonical range.
func duskBounds(ev solar.Events) (sunsetEnd, civilEnd, nauticalEnd, astroEnd float64) {
	sunsetEnd = ev.Sunset + 1.0
	civilEnd = math.Max(ev.CivilDusk, sunsetEnd+minWindow)
	nauticalEnd = math.Max(ev.NauticalDusk, civilEnd+minWindow)
	astroEnd = math.Max(ev.AstronomicalDusk, nauticalEnd+minWindow)
	return
}

// dawnBounds mirrors duskBounds backward from sunrise
func dawnBounds(ev solar.Events) (astroStart, nauticalStart, civilStart float64) {
	civilStart = math.Min(ev.CivilDawn, ev.Sunrise-minWindow)
	nauticalStart = math.Min(ev.NauticalDawn, civilStart-minWindow)
	astroStart = math.Min(ev.AstronomicalDawn, nauticalStart-minWindow)
	return
}

// duskPhase covers real sunset onward: a fixed one-hour sunset window, then
// the three twilight stages, then the long wrapped night window.
func duskPhase(h float64, ev solar.Events) float64 {
	sunsetEnd, civilEnd, nauticalEnd, astroEnd := duskBounds(ev)

	switch {
	case h < sunsetEnd:
		return 18.0 + progress(h, ev.Sunset, sunsetEnd)
	case h < civilEnd:
		return 19.0 + progress(h, sunsetEnd, civilEnd)
	case h < nauticalEnd:
		return 20.0 + progress(h, civilEnd, nauticalEnd)
	case h < astroEnd:
		return 21.0 + progress(h, nauticalEnd, astroEnd)
	default:
		return nightPhase(h, ev)
	}
}

// dawnPhase covers local midnight to real sunrise, mirroring the dusk stages
func dawnPhase(h float64, ev solar.Events) float64 {
	astroStart, nauticalStart, civilStart := dawnBounds(ev)

	switch {
	case h < astroStart:
		// Still inside the wrapped night window; shift onto its scale.
		return nightPhase(h+24.0, ev)
	case h < nauticalStart:
		return 4.0 + progress(h, astroStart, nauticalStart)
	case h < civilStart:
		return 5.0 + progress(h, nauticalStart, civilStart)
	default:
		return 6.0 + progress(h, civilStart, ev.Sunrise)
	}
}

// nightPhase maps the window from astronomical dusk to the next morning's
// astronomical dawn, using the same chained boundaries as the twilight
// branches so the handoffs at 22 and 4 line up. The first half fills
// canonical 22-24, the second half 0-4, so the wrap at midnight stays
// continuous (24 == 0 on the phase circle). hPrime is the real hour, +24
// when past local midnight.
func nightPhase(hPrime float64, ev solar.Events) float64 {
	_, _, _, astroEnd := duskBounds(ev)
	astroStart, _, _ := dawnBounds(ev)

	u := progress(hPrime, astroEnd, astroStart+24.0)
	if u < 0.5 {
		return math.Mod(22.0+4.0*u, 24.0)
	}
	return 8.0 * (u - 0.5)
}

// progress returns the position of h within [start, end] clamped to [0, 1].
// Degenerate or inverted windows use the minimum-width floor as divisor so a
// collapsed twilight yields a defined value instead of NaN or infinity.
func progress(h, start, end float64) float64 {
	width := end - start
	if width < minWindow {
		width = minWindow
	}
	p := (h - start) / width
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
