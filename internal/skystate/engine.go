package skystate

import (
	"log/slog"
	"time"

	"github.com/saaga0h/skyclock-platform/internal/ephemeris"
	"github.com/saaga0h/skyclock-platform/internal/geo"
	"github.com/saaga0h/skyclock-platform/internal/phase"
	"github.com/saaga0h/skyclock-platform/internal/sky"
	"github.com/saaga0h/skyclock-platform/internal/solar"
	"github.com/saaga0h/skyclock-platform/internal/sun"
)

// Engine owns the process-wide solar event cache and composes the pure
// models into full sky snapshots. One instance per process; it holds no
// external resources and needs no teardown.
type Engine struct {
	cache  *solar.Cache
	logger *slog.Logger
}

// NewEngine creates the engine with a bounded solar event cache wired to the
// suncalc ephemeris and the static coordinate table.
func NewEngine(cacheSize int, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		cache:  solar.NewCache(cacheSize, geo.CoordinatesFor, ephemeris.SolarEventsFor, logger),
		logger: logger,
	}
}

// SolarEvents returns the cached or freshly computed solar events for the
// instant's calendar day in the given timezone.
func (e *Engine) SolarEvents(timezone string, tz *time.Location, instant time.Time) solar.Events {
	return e.cache.GetOrCompute(timezone, tz, instant)
}

// Snapshot computes the full sky state for one zone at one instant
func (e *Engine) Snapshot(zone, timezone string, tz *time.Location, instant time.Time, rainy bool) Snapshot {
	ev := e.cache.GetOrCompute(timezone, tz, instant)

	p := phase.Normalize(instant, tz, ev)

	var observed *sun.AzimuthAltitude
	if loc, ok := geo.CoordinatesFor(timezone); ok {
		az, alt := ephemeris.SunPosition(loc, instant)
		observed = &sun.AzimuthAltitude{AzimuthDegrees: az, AltitudeDegrees: alt}
	}

	return Snapshot{
		Zone:         zone,
		Timezone:     timezone,
		LocalTime:    instant.In(tz).Format(time.RFC3339),
		Phase:        p,
		Rainy:        rainy,
		Colors:       sky.Colors(p, rainy),
		StarOpacity:  sky.StarOpacity(p, rainy),
		AnimationKey: sky.AnimationKey(p, rainy),
		Sun:          sun.Compute(instant, tz, ev, observed),
		Events:       ev,
	}
}
