package skystate

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/saaga0h/skyclock-platform/pkg/redis"
)

// WeatherMessage is the payload published on clock/weather/{zone}
type WeatherMessage struct {
	Condition string `json:"condition"`
}

// rainyConditions are the condition classes that occlude the sky. Anything
// else (clear, clouds, mist, unknown) renders with the clear palette.
var rainyConditions = map[string]bool{
	"rain":         true,
	"drizzle":      true,
	"storm":        true,
	"thunderstorm": true,
	"sleet":        true,
	"snow":         true,
	"hail":         true,
}

// IsRainyCondition classifies a reported weather condition as rainy
func IsRainyCondition(condition string) bool {
	return rainyConditions[strings.ToLower(strings.TrimSpace(condition))]
}

// StoreWeather caches the latest reported condition for a zone with a TTL so
// a stale report decays back to clear rather than sticking forever.
func StoreWeather(ctx context.Context, r redis.Client, zone, condition string, ttl time.Duration) error {
	return r.Set(ctx, redis.WeatherKey(zone), strings.ToLower(strings.TrimSpace(condition)), ttl)
}

// RainyForZone reads the cached condition for a zone. A missing key is the
// defined "no report" state and reads as clear.
func RainyForZone(ctx context.Context, r redis.Client, zone string) (bool, error) {
	condition, err := r.Get(ctx, redis.WeatherKey(zone))
	if err != nil {
		if errors.Is(err, redis.ErrKeyMissing) {
			return false, nil
		}
		return false, err
	}
	return IsRainyCondition(condition), nil
}

// ParseWeatherMessage decodes a weather payload. A bare string payload (no
// JSON object) is accepted as the condition itself, so a condition can be
// hand-published with any MQTT client.
func ParseWeatherMessage(payload []byte) (WeatherMessage, error) {
	var msg WeatherMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		trimmed := strings.TrimSpace(string(payload))
		if trimmed != "" && !strings.HasPrefix(trimmed, "{") {
			return WeatherMessage{Condition: trimmed}, nil
		}
		return WeatherMessage{}, err
	}
	return msg, nil
}
