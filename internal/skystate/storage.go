package skystate

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/saaga0h/skyclock-platform/internal/solar"
	"github.com/saaga0h/skyclock-platform/pkg/postgres"
)

// Storage archives computed per-day solar events to Postgres. The archive is
// write-only telemetry for offline analysis; the in-memory cache remains the
// single source for the engine and is rebuilt from nothing on restart.
type Storage struct {
	pg     postgres.Client
	logger *slog.Logger
}

// NewStorage creates a new archive storage handler
func NewStorage(pgClient postgres.Client, logger *slog.Logger) *Storage {
	return &Storage{
		pg:     pgClient,
		logger: logger,
	}
}

const createArchiveTable = `
CREATE TABLE IF NOT EXISTS solar_event_archive (
	id UUID PRIMARY KEY,
	timezone TEXT NOT NULL,
	day DATE NOT NULL,
	sunrise DOUBLE PRECISION NOT NULL,
	sunset DOUBLE PRECISION NOT NULL,
	civil_dawn DOUBLE PRECISION NOT NULL,
	civil_dusk DOUBLE PRECISION NOT NULL,
	nautical_dawn DOUBLE PRECISION NOT NULL,
	nautical_dusk DOUBLE PRECISION NOT NULL,
	astronomical_dawn DOUBLE PRECISION NOT NULL,
	astronomical_dusk DOUBLE PRECISION NOT NULL,
	solar_noon DOUBLE PRECISION NOT NULL,
	synthetic BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	UNIQUE (timezone, day)
)`

// EnsureSchema creates the archive table if it does not exist
func (s *Storage) EnsureSchema(ctx context.Context) error {
	if _, err := s.pg.Exec(ctx, createArchiveTable); err != nil {
		return fmt.Errorf("failed to create solar_event_archive table: %w", err)
	}
	return nil
}

// Archive inserts the solar events for one (timezone, day). Repeated inserts
// for the same day are no-ops via the unique constraint.
func (s *Storage) Archive(ctx context.Context, timezone string, day time.Time, ev solar.Events) error {
	const query = `
		INSERT INTO solar_event_archive (
			id, timezone, day,
			sunrise, sunset,
			civil_dawn, civil_dusk,
			nautical_dawn, nautical_dusk,
			astronomical_dawn, astronomical_dusk,
			solar_noon, synthetic
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (timezone, day) DO NOTHING`

	_, err := s.pg.Exec(ctx, query,
		uuid.New(), timezone, day.Format("2006-01-02"),
		ev.Sunrise, ev.Sunset,
		ev.CivilDawn, ev.CivilDusk,
		ev.NauticalDawn, ev.NauticalDusk,
		ev.AstronomicalDawn, ev.AstronomicalDusk,
		ev.SolarNoon, ev.Synthetic)
	if err != nil {
		return fmt.Errorf("failed to archive solar events for %s %s: %w",
			timezone, day.Format("2006-01-02"), err)
	}

	s.logger.Debug("Archived solar events",
		"timezone", timezone,
		"day", day.Format("2006-01-02"),
		"synthetic", ev.Synthetic)

	return nil
}

// ArchivedDays returns how many days are archived for a timezone
func (s *Storage) ArchivedDays(ctx context.Context, timezone string) (int, error) {
	var count int
	row := s.pg.QueryRow(ctx,
		"SELECT COUNT(*) FROM solar_event_archive WHERE timezone = $1", timezone)
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count archived days for %s: %w", timezone, err)
	}
	return count, nil
}
