package domain

import (
	"strconv"
	"strings"
)

const (
	// GridUnitCentimeter renders a 10cm print bed.
	GridUnitCentimeter = "cm (10cm bed)"
	// GridUnitMillimeter renders a 1cm print bed.
	GridUnitMillimeter = "mm (1cm bed)"
	// GridUnitMeter is the default unit.
	GridUnitMeter = "meters"

	gridDivisions = 10
)

// GridSpec describes the floor grid of a preview surface.
type GridSpec struct {
	Unit      string
	Scale     float32
	Size      float32
	Divisions int
	// Color is the hex color of the center lines.
	Color string
}

// NewGridSpec derives the grid for a unit and scale. A zero scale counts as 1.
func NewGridSpec(unit string, scale float32) GridSpec {
	if scale == 0 {
		scale = 1
	}
	g := GridSpec{Unit: unit, Scale: scale, Divisions: gridDivisions}
	switch unit {
	case GridUnitCentimeter:
		g.Size = 1 * scale
		g.Color = "#ff4444"
	case GridUnitMillimeter:
		g.Size = 0.1 * scale
		g.Color = "#44ff44"
	default:
		g.Size = 100 * scale
		g.Color = "#666666"
	}
	return g
}

// DefaultGrid is the grid shown before any settings are known.
func DefaultGrid() GridSpec {
	return NewGridSpec(GridUnitMeter, 1)
}

// GridFromSettings derives the grid from execution settings.
// It returns false when the settings say nothing about the grid.
// grid_unit/grid_scale take precedence over an assembler's grid_size ("10cm", "20cm", "30cm").
func GridFromSettings(settings map[string]any) (GridSpec, bool) {
	unitVal, hasUnit := settings["grid_unit"]
	scaleVal, hasScale := settings["grid_scale"]
	if hasUnit || hasScale {
		unit, _ := String(unitVal)
		scale, _ := Float(scaleVal)
		return NewGridSpec(unit, scale), true
	}
	if v, ok := settings["grid_size"]; ok {
		s, _ := String(v)
		cm, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(s), "cm"))
		if err != nil || cm <= 0 {
			return GridSpec{}, false
		}
		return NewGridSpec(GridUnitCentimeter, float32(cm)/10), true
	}
	return GridSpec{}, false
}
