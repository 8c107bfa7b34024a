package skystate

import (
	"github.com/saaga0h/skyclock-platform/internal/sky"
	"github.com/saaga0h/skyclock-platform/internal/solar"
	"github.com/saaga0h/skyclock-platform/internal/sun"
)

// Snapshot is the complete computed sky state for one zone at one instant.
// It is published to MQTT and mirrored into Redis as JSON.
type Snapshot struct {
	Zone      string `json:"zone"`
	Timezone  string `json:"timezone"`
	LocalTime string `json:"local_time"`

	// Phase is the canonical day phase in [0, 24)
	Phase float64 `json:"phase"`
	Rainy bool    `json:"rainy"`

	// Colors is the zenith-to-horizon gradient
	Colors      []sky.RGB `json:"colors"`
	StarOpacity float64   `json:"star_opacity"`

	// AnimationKey changes once per canonical hour or weather flip;
	// consumers redraw only when it moves
	AnimationKey int `json:"animation_key"`

	Sun    sun.Geometry `json:"sun"`
	Events solar.Events `json:"events"`
}
