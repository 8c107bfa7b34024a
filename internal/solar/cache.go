package solar

import (
	"log/slog"
	"sync"
	"time"

	"github.com/saaga0h/skyclock-platform/internal/geo"
)

// DefaultCacheSize bounds the number of (timezone, day) entries kept for
// long-running sessions that page through many timezones and days.
const DefaultCacheSize = 60

// EphemerisFunc computes solar events for a location and instant. The instant
// anchors the calendar day; the result is in the given zone's local hours.
type EphemerisFunc func(loc geo.Location, tz *time.Location, instant time.Time) Events

// LookupFunc resolves an IANA timezone identifier to coordinates
type LookupFunc func(timezone string) (geo.Location, bool)

// Cache memoizes per-(timezone, day) solar events. Reads proceed concurrently;
// writes serialize on a single lock. A race between two misses may compute the
// same entry twice, which is harmless since the ephemeris is pure.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Events
	order   []string // insertion order, oldest first
	cap     int

	lookup  LookupFunc
	compute EphemerisFunc
	logger  *slog.Logger
}

// NewCache creates a solar event cache with the given size bound. The lookup
// and compute functions are injected so tests can count ephemeris invocations.
func NewCache(capacity int, lookup LookupFunc, compute EphemerisFunc, logger *slog.Logger) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		entries: make(map[string]Events),
		cap:     capacity,
		lookup:  lookup,
		compute: compute,
		logger:  logger,
	}
}

// GetOrCompute returns the solar events for the calendar day of instant in the
// given timezone, computing and caching them on first use. When the timezone
// has no known coordinates the deterministic fallback set is cached instead;
// this is a defined state, never an error.
func (c *Cache) GetOrCompute(timezone string, tz *time.Location, instant time.Time) Events {
	key := DayKey(timezone, instant.In(tz))

	c.mu.RLock()
	ev, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return ev
	}

	loc, known := c.lookup(timezone)
	if known {
		ev = c.compute(loc, tz, instant)
	} else {
		ev = FallbackEvents()
		c.logger.Debug("No coordinates for timezone, using fallback solar events", "timezone", timezone)
	}

	c.mu.Lock()
	// Another goroutine may have raced us here; keep the first insert so
	// repeated lookups stay bit-identical.
	if existing, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return existing
	}
	if len(c.order) >= c.cap {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = ev
	c.order = append(c.order, key)
	c.mu.Unlock()

	c.logger.Debug("Computed solar events",
		"key", key,
		"sunrise", ev.Sunrise,
		"sunset", ev.Sunset,
		"synthetic", ev.Synthetic)

	return ev
}

// Len returns the number of cached entries
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
