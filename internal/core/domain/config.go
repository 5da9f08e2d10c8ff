package domain

import (
	"strings"
	"time"

	"go.trai.ch/zerr"
)

const (
	// DefaultAssetServer is the address of a locally running host.
	DefaultAssetServer = "http://127.0.0.1:8188"
	// DefaultPollInterval is the synchronizer tick interval.
	DefaultPollInterval = 100 * time.Millisecond
	// DefaultMaxDepth bounds how far the tracer walks upstream.
	DefaultMaxDepth = 20
	// DefaultResizeThreshold is the surface size delta, in pixels, that triggers a resize.
	DefaultResizeThreshold = 2
	// DefaultMaxConcurrentLoads bounds in-flight asset loads per viewer.
	DefaultMaxConcurrentLoads = 4
	// DefaultMaterialChannel is the green/blue fallback when only red is set.
	DefaultMaterialChannel = 1.0
	// DefaultMetallic is the metallic fallback of a material override.
	DefaultMetallic = 0.0
	// DefaultRoughness is the roughness fallback of a material override.
	DefaultRoughness = 0.5
	// DefaultSurfaceWidth is the preview surface width before a viewport reports its size.
	DefaultSurfaceWidth = 512
	// DefaultSurfaceHeight is the preview surface height before a viewport reports its size.
	DefaultSurfaceHeight = 512
)

// FramePolicy selects when the camera frames the scene automatically.
type FramePolicy uint8

const (
	// FrameOnce frames the first time the scene gets a model.
	FrameOnce FramePolicy = iota
	// FrameOnPopulate frames every time the scene goes from empty to non-empty.
	FrameOnPopulate
)

// ParseFramePolicy parses a frame policy name. An empty string selects FrameOnce.
func ParseFramePolicy(s string) (FramePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "once":
		return FrameOnce, nil
	case "populate":
		return FrameOnPopulate, nil
	default:
		return FrameOnce, zerr.With(ErrInvalidFramePolicy, "frame_policy", s)
	}
}

// Size is a surface size in pixels.
type Size struct {
	Width  int
	Height int
}

// MaterialDefaults are used for channels a material node leaves unset.
type MaterialDefaults struct {
	Green     float32
	Blue      float32
	Metallic  float32
	Roughness float32
}

// Config holds the resolved preview settings.
type Config struct {
	AssetServer            string
	PollInterval           time.Duration
	MaxDepth               int
	MaxSlots               int
	ResizeThreshold        int
	ComposeOrder           ComposeOrder
	CaseInsensitiveWidgets bool
	FramePolicy            FramePolicy
	MaxConcurrentLoads     int
	LoadTimeout            time.Duration
	CacheDir               string
	Surface                Size
	Material               MaterialDefaults
	Roles                  map[string]NodeRole
}

// DefaultConfig returns the configuration used when no preview.yaml exists.
func DefaultConfig() Config {
	return Config{
		AssetServer:        DefaultAssetServer,
		PollInterval:       DefaultPollInterval,
		MaxDepth:           DefaultMaxDepth,
		MaxSlots:           DefaultMaxSlots,
		ResizeThreshold:    DefaultResizeThreshold,
		ComposeOrder:       Premultiply,
		FramePolicy:        FrameOnce,
		MaxConcurrentLoads: DefaultMaxConcurrentLoads,
		CacheDir:           DefaultAssetCachePath(),
		Surface:            Size{Width: DefaultSurfaceWidth, Height: DefaultSurfaceHeight},
		Material: MaterialDefaults{
			Green:     DefaultMaterialChannel,
			Blue:      DefaultMaterialChannel,
			Metallic:  DefaultMetallic,
			Roughness: DefaultRoughness,
		},
		Roles: DefaultRoles(),
	}
}
