package skystate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/saaga0h/skyclock-platform/pkg/config"
	"github.com/saaga0h/skyclock-platform/pkg/mqtt"
	"github.com/saaga0h/skyclock-platform/pkg/redis"
)

// trackedZone is a zone entry with its resolved time.Location
type trackedZone struct {
	label    string
	timezone string
	tz       *time.Location
}

// Agent drives the sky engine: it re-evaluates every tracked zone on a
// periodic tick, consumes weather condition updates over MQTT, publishes
// changed sky states, and archives each day's solar events.
type Agent struct {
	mqtt    mqtt.Client
	redis   redis.Client
	storage *Storage // nil when the Postgres archive is disabled
	engine  *Engine
	cfg     *config.Config
	zones   []trackedZone
	logger  *slog.Logger

	// lastKey tracks the last published animation key per zone so the agent
	// publishes on meaningful change instead of every tick
	lastKey map[string]int
	lastDay map[string]string
}

// NewAgent creates a skystate agent for the given zone list. A malformed
// timezone identifier in the zones file is a hard configuration failure.
func NewAgent(mqttClient mqtt.Client, redisClient redis.Client, storage *Storage, engine *Engine, cfg *config.Config, zones []config.Zone, logger *slog.Logger) (*Agent, error) {
	tracked := make([]trackedZone, 0, len(zones))
	for _, z := range zones {
		tz, err := time.LoadLocation(z.Timezone)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q in zones file: %w", z.Timezone, err)
		}
		tracked = append(tracked, trackedZone{label: z.Label, timezone: z.Timezone, tz: tz})
	}

	return &Agent{
		mqtt:    mqttClient,
		redis:   redisClient,
		storage: storage,
		engine:  engine,
		cfg:     cfg,
		zones:   tracked,
		logger:  logger,
		lastKey: make(map[string]int),
		lastDay: make(map[string]string),
	}, nil
}

// Start connects the clients, subscribes to weather updates and runs the
// evaluation loop until the context is cancelled.
func (a *Agent) Start(ctx context.Context) error {
	a.logger.Info("Starting skystate agent",
		"service_name", a.cfg.ServiceName,
		"mqtt_broker", a.cfg.MQTTAddress(),
		"zones", len(a.zones),
		"tick_interval_sec", a.cfg.TickIntervalSec)

	if err := a.mqtt.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to MQTT: %w", err)
	}

	if err := a.redis.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping Redis: %w", err)
	}

	if a.storage != nil {
		if err := a.storage.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to prepare solar event archive: %w", err)
		}
	}

	if err := a.mqtt.Subscribe(mqtt.TopicWeatherAll, 1, a.handleWeatherMessage(ctx)); err != nil {
		return fmt.Errorf("failed to subscribe to weather topics: %w", err)
	}

	ticker := time.NewTicker(time.Duration(a.cfg.TickIntervalSec) * time.Second)
	defer ticker.Stop()

	// Evaluate once immediately so subscribers get a state without waiting
	// for the first tick
	a.tick(ctx, time.Now())

	for {
		select {
		case now := <-ticker.C:
			a.tick(ctx, now)
		case <-ctx.Done():
			a.logger.Info("Skystate agent stopping")
			return nil
		}
	}
}

// Stop gracefully stops the agent
func (a *Agent) Stop() error {
	a.logger.Info("Stopping skystate agent")

	a.mqtt.Disconnect()

	if err := a.redis.Close(); err != nil {
		a.logger.Error("Error closing Redis connection", "error", err)
		return err
	}

	return nil
}

// handleWeatherMessage caches incoming weather conditions per zone
func (a *Agent) handleWeatherMessage(ctx context.Context) mqtt.MessageHandler {
	return func(msg mqtt.Message) {
		zone := mqtt.ZoneFromTopic(msg.Topic())
		if zone == "" {
			a.logger.Warn("Weather message with no zone segment", "topic", msg.Topic())
			return
		}

		weather, err := ParseWeatherMessage(msg.Payload())
		if err != nil {
			a.logger.Warn("Failed to parse weather message", "topic", msg.Topic(), "error", err)
			return
		}

		ttl := time.Duration(a.cfg.WeatherTTLMinutes) * time.Minute
		if err := StoreWeather(ctx, a.redis, zone, weather.Condition, ttl); err != nil {
			a.logger.Warn("Failed to store weather condition", "zone", zone, "error", err)
			return
		}

		a.logger.Debug("Stored weather condition",
			"zone", zone,
			"condition", weather.Condition,
			"rainy", IsRainyCondition(weather.Condition))
	}
}

// tick evaluates every tracked zone at the given instant
func (a *Agent) tick(ctx context.Context, now time.Time) {
	for _, zone := range a.zones {
		a.evaluateZone(ctx, zone, now)
	}
}

func (a *Agent) evaluateZone(ctx context.Context, zone trackedZone, now time.Time) {
	rainy, err := RainyForZone(ctx, a.redis, zone.label)
	if err != nil {
		// A weather read failure degrades to the clear palette; the sky
		// state itself always gets computed and published
		a.logger.Warn("Failed to read weather condition", "zone", zone.label, "error", err)
		rainy = false
	}

	snap := a.engine.Snapshot(zone.label, zone.timezone, zone.tz, now, rainy)

	a.archiveDayIfNew(ctx, zone, now, snap)

	key, seen := a.lastKey[zone.label]
	if seen && key == snap.AnimationKey {
		return
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		a.logger.Error("Failed to marshal sky state", "zone", zone.label, "error", err)
		return
	}

	if err := a.mqtt.Publish(mqtt.SkyStateTopic(zone.label), 1, true, payload); err != nil {
		a.logger.Warn("Failed to publish sky state", "zone", zone.label, "error", err)
	}

	stateTTL := time.Duration(a.cfg.StateTTLMinutes) * time.Minute
	if err := a.redis.Set(ctx, redis.SkyStateKey(zone.label), payload, stateTTL); err != nil {
		a.logger.Warn("Failed to mirror sky state to Redis", "zone", zone.label, "error", err)
	}

	a.mirrorMeta(ctx, zone.label, snap, stateTTL)

	a.lastKey[zone.label] = snap.AnimationKey

	a.logger.Debug("Published sky state",
		"zone", zone.label,
		"phase", snap.Phase,
		"animation_key", snap.AnimationKey,
		"rainy", snap.Rainy)
}

// mirrorMeta keeps a small queryable hash per zone next to the full JSON
// state, so consumers can read the animation key without parsing the snapshot
func (a *Agent) mirrorMeta(ctx context.Context, label string, snap Snapshot, ttl time.Duration) {
	key := redis.SkyMetaKey(label)

	fields := map[string]interface{}{
		"animation_key": snap.AnimationKey,
		"phase":         snap.Phase,
		"rainy":         snap.Rainy,
		"local_time":    snap.LocalTime,
	}
	for field, value := range fields {
		if err := a.redis.HSet(ctx, key, field, value); err != nil {
			a.logger.Warn("Failed to mirror sky metadata", "zone", label, "field", field, "error", err)
			return
		}
	}

	if err := a.redis.Expire(ctx, key, ttl); err != nil {
		a.logger.Warn("Failed to set sky metadata TTL", "zone", label, "error", err)
	}
}

// archiveDayIfNew writes the day's solar events to Postgres the first time a
// zone's local calendar day is seen
func (a *Agent) archiveDayIfNew(ctx context.Context, zone trackedZone, now time.Time, snap Snapshot) {
	if a.storage == nil {
		return
	}

	local := now.In(zone.tz)
	day := local.Format("2006-01-02")
	if a.lastDay[zone.label] == day {
		return
	}

	if err := a.storage.Archive(ctx, zone.timezone, local, snap.Events); err != nil {
		a.logger.Warn("Failed to archive solar events", "zone", zone.label, "error", err)
		return
	}
	a.lastDay[zone.label] = day
}
