// Package sky derives display signals from the normalized day phase: the
// vertical gradient color stops, star field opacity, and a coarse animation
// key callers use to detect meaningful change without per-frame work.
package sky

import "math"

// Colors returns the zenith-to-horizon gradient stops for a phase value.
// The weather flag selects the clear or overcast palette table wholesale.
func Colors(phase float64, isRainy bool) []RGB {
	rows := clearRows
	if isRainy {
		rows = rainyRows
	}

	p := wrap(phase)
	row := rowFor(rows, p)
	t := (p - row.Start) / (row.End - row.Start)

	stops := make([]RGB, len(row.From))
	for i := range row.From {
		stops[i] = lerp(row.From[i], row.To[i], t)
	}
	return stops
}

// StarOpacity returns the star field opacity in [0, 1] for a phase value.
// Rain clouds occlude stars unconditionally; the override applies regardless
// of phase and is not a palette difference.
func StarOpacity(phase float64, isRainy bool) float64 {
	if isRainy {
		return 0.0
	}

	p := wrap(phase)
	switch {
	case p < 4.0:
		return 1.0
	case p < 7.0:
		return 1.0 - (p-4.0)/3.0
	case p < 19.0:
		return 0.0
	case p < 22.0:
		return (p - 19.0) / 3.0
	default:
		return 1.0
	}
}

// AnimationKey quantizes phase and weather into an integer that changes once
// per canonical hour or weather flip. It is monotonic in phase within a day,
// so callers can compare keys to skip redundant redraws.
func AnimationKey(phase float64, isRainy bool) int {
	rainyBit := 0
	if isRainy {
		rainyBit = 1
	}
	return int(math.Floor(wrap(phase)))*2 + rainyBit
}

func rowFor(rows []gradientRow, p float64) gradientRow {
	for _, row := range rows {
		if p >= row.Start && p < row.End {
			return row
		}
	}
	// p is in [0, 24) after wrap, so this is unreachable; the last row is a
	// safe answer if float edge cases ever land here.
	return rows[len(rows)-1]
}

func lerp(a, b RGB, t float64) RGB {
	return RGB{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

func wrap(phase float64) float64 {
	p := math.Mod(phase, 24.0)
	if p < 0 {
		p += 24.0
	}
	return p
}
