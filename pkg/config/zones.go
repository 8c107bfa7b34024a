package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Zone is a tracked timezone entry from the zones file
type Zone struct {
	Timezone string `yaml:"timezone"`
	Label    string `yaml:"label,omitempty"`
}

// ZonesFileSchema is the top-level structure of the zones YAML file
type ZonesFileSchema struct {
	Zones []Zone `yaml:"zones"`
}

// LoadZones loads the tracked zone list from a YAML file
func LoadZones(filepath string) ([]Zone, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read zones file: %w", err)
	}
	return LoadZonesFromBytes(data)
}

// LoadZonesFromBytes loads the zone list from byte data (useful for testing)
func LoadZonesFromBytes(data []byte) ([]Zone, error) {
	var schema ZonesFileSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse zones YAML: %w", err)
	}

	if len(schema.Zones) == 0 {
		return nil, fmt.Errorf("zones file defines no zones")
	}

	seen := make(map[string]bool)
	for i := range schema.Zones {
		z := &schema.Zones[i]
		if z.Timezone == "" {
			return nil, fmt.Errorf("zone %d has no timezone", i)
		}
		if z.Label == "" {
			z.Label = DefaultLabel(z.Timezone)
		}
		if seen[z.Label] {
			return nil, fmt.Errorf("duplicate zone label: %s", z.Label)
		}
		seen[z.Label] = true
	}

	return schema.Zones, nil
}

// DefaultLabel derives a topic-safe label from an IANA timezone identifier:
// the last path segment, lowercased, underscores for spaces
// (e.g. "America/New_York" -> "new_york")
func DefaultLabel(timezone string) string {
	segment := timezone
	if idx := strings.LastIndex(timezone, "/"); idx >= 0 {
		segment = timezone[idx+1:]
	}
	return strings.ToLower(strings.ReplaceAll(segment, " ", "_"))
}
