package redis

import "fmt"

// Key construction helpers for the skyclock Redis schema

// WeatherKey returns the key holding the latest weather condition for a zone
// Pattern: weather:{zone}
func WeatherKey(zone string) string {
	return fmt.Sprintf("weather:%s", zone)
}

// SkyStateKey returns the key mirroring the latest computed sky state for a zone
// Pattern: sky:state:{zone}
func SkyStateKey(zone string) string {
	return fmt.Sprintf("sky:state:%s", zone)
}

// SkyMetaKey returns the key for per-zone agent metadata (hash)
// Pattern: sky:meta:{zone}
func SkyMetaKey(zone string) string {
	return fmt.Sprintf("sky:meta:%s", zone)
}
