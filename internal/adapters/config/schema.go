package config

import "time"

// Configfile represents the structure of the preview.yaml configuration file.
// Pointer fields distinguish an explicit zero from an omitted key.
type Configfile struct {
	Version                string            `yaml:"version"`
	AssetServer            string            `yaml:"asset_server"`
	PollInterval           time.Duration     `yaml:"poll_interval"`
	MaxDepth               int               `yaml:"max_depth"`
	MaxSlots               int               `yaml:"max_slots"`
	ResizeThreshold        *int              `yaml:"resize_threshold"`
	ComposeOrder           string            `yaml:"compose_order"`
	CaseInsensitiveWidgets bool              `yaml:"case_insensitive_widgets"`
	FramePolicy            string            `yaml:"frame_policy"`
	MaxConcurrentLoads     int               `yaml:"max_concurrent_loads"`
	LoadTimeout            time.Duration     `yaml:"load_timeout"`
	CacheDir               string            `yaml:"cache_dir"`
	Viewport               *ViewportDTO      `yaml:"viewport"`
	MaterialDefaults       *MaterialDTO      `yaml:"material_defaults"`
	Roles                  map[string]string `yaml:"roles"`
}

// ViewportDTO is the preview surface size used before a viewport reports one.
type ViewportDTO struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MaterialDTO holds the material channel fallbacks.
type MaterialDTO struct {
	Green     *float32 `yaml:"green"`
	Blue      *float32 `yaml:"blue"`
	Metallic  *float32 `yaml:"metallic"`
	Roughness *float32 `yaml:"roughness"`
}
