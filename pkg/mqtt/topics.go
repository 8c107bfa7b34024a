package mqtt

import (
	"fmt"
	"strings"
)

// Topic constants for the skyclock MQTT namespace
const (
	// Weather condition updates per zone (input)
	TopicWeatherAll = "clock/weather/+"

	// Computed sky state per zone (output)
	TopicSkyBase = "clock/sky"
)

// WeatherTopic constructs the weather condition topic for a zone label
// Pattern: clock/weather/{zone}
func WeatherTopic(zone string) string {
	return fmt.Sprintf("clock/weather/%s", zone)
}

// SkyStateTopic constructs the sky state topic for a zone label
// Pattern: clock/sky/{zone}
func SkyStateTopic(zone string) string {
	return fmt.Sprintf("%s/%s", TopicSkyBase, zone)
}

// ZoneFromTopic extracts the zone label (last segment) from a
// clock/weather/{zone} or clock/sky/{zone} topic
func ZoneFromTopic(topic string) string {
	parts := strings.Split(topic, "/")
	if len(parts) < 3 {
		return ""
	}
	return parts[len(parts)-1]
}
