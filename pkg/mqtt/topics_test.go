package mqtt

import "testing"

func TestTopicConstruction(t *testing.T) {
	if got := WeatherTopic("home"); got != "clock/weather/home" {
		t.Errorf("WeatherTopic = %q", got)
	}
	if got := SkyStateTopic("home"); got != "clock/sky/home" {
		t.Errorf("SkyStateTopic = %q", got)
	}
}

func TestZoneFromTopic(t *testing.T) {
	tests := []struct {
		topic string
		zone  string
	}{
		{"clock/weather/home", "home"},
		{"clock/sky/office", "office"},
		{"clock/weather/new_york", "new_york"},
		{"clock/weather/", ""},
		{"clock/weather", ""},
		{"clock", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ZoneFromTopic(tt.topic); got != tt.zone {
			t.Errorf("ZoneFromTopic(%q) = %q, want %q", tt.topic, got, tt.zone)
		}
	}
}
