package boxselect

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/boxselect/internal/selection"
)

// ToolName is the human-readable tool name.
const ToolName = "Box Select"

// EntryType tags the history entries pushed by the tool.
const EntryType = "box_select"

// Dimensions restricts which axes the drag controls.
type Dimensions uint8

const (
	// DimensionsBoth lets the drag control both axes.
	DimensionsBoth Dimensions = iota
	// DimensionsWidth lets the drag control x; y spans the frame.
	DimensionsWidth
	// DimensionsHeight lets the drag control y; x spans the frame.
	DimensionsHeight
)

// String returns the string representation of the dimensions.
func (d Dimensions) String() string {
	switch d {
	case DimensionsBoth:
		return "both"
	case DimensionsWidth:
		return "width"
	case DimensionsHeight:
		return "height"
	default:
		return "unknown"
	}
}

// ParseDimensions converts a name into Dimensions.
func ParseDimensions(s string) (Dimensions, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both", "xy":
		return DimensionsBoth, nil
	case "width", "x":
		return DimensionsWidth, nil
	case "height", "y":
		return DimensionsHeight, nil
	default:
		return DimensionsBoth, fmt.Errorf("%w: dimensions %q", ErrInvalidConfig, s)
	}
}

// Origin selects what the drag's anchor point is.
type Origin uint8

const (
	// OriginCorner fixes the anchor as a corner of the box.
	OriginCorner Origin = iota
	// OriginCenter fixes the anchor as the centre of the box.
	OriginCenter
)

// String returns the string representation of the origin.
func (o Origin) String() string {
	switch o {
	case OriginCorner:
		return "corner"
	case OriginCenter:
		return "center"
	default:
		return "unknown"
	}
}

// ParseOrigin converts a name into an Origin.
func ParseOrigin(s string) (Origin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "corner":
		return OriginCorner, nil
	case "center", "centre":
		return OriginCenter, nil
	default:
		return OriginCorner, fmt.Errorf("%w: origin %q", ErrInvalidConfig, s)
	}
}

// Config configures a box select tool instance.
type Config struct {
	// Dimensions restricts the axes the drag controls.
	Dimensions Dimensions

	// Origin selects corner or centre anchoring.
	Origin Origin

	// SelectEveryMouseMove applies a live preview selection on each move.
	SelectEveryMouseMove bool

	// DefaultMode is the combination mode used with no modifier held.
	DefaultMode selection.Mode
}

// DefaultConfig returns the configuration of the plain box_select tool.
func DefaultConfig() Config {
	return Config{
		Dimensions:  DimensionsBoth,
		Origin:      OriginCorner,
		DefaultMode: selection.ModeReplace,
	}
}

// Validate checks that every field holds a known value.
func (c Config) Validate() error {
	if c.Dimensions > DimensionsHeight {
		return fmt.Errorf("%w: dimensions %d", ErrInvalidConfig, c.Dimensions)
	}
	if c.Origin > OriginCenter {
		return fmt.Errorf("%w: origin %d", ErrInvalidConfig, c.Origin)
	}
	if c.DefaultMode > selection.ModeSubtract {
		return fmt.Errorf("%w: mode %d", ErrInvalidConfig, c.DefaultMode)
	}
	return nil
}

// Tooltip returns the tool's tooltip, naming the restricted axis.
func (c Config) Tooltip() string {
	switch c.Dimensions {
	case DimensionsWidth:
		return ToolName + " (x-axis)"
	case DimensionsHeight:
		return ToolName + " (y-axis)"
	default:
		return ToolName
	}
}

// Preset names.
const (
	PresetBoxSelect  = "box_select"
	PresetXBoxSelect = "xbox_select"
	PresetYBoxSelect = "ybox_select"
)

// BoxSelect returns the box_select preset.
func BoxSelect() Config {
	return DefaultConfig()
}

// XBoxSelect returns the xbox_select preset.
func XBoxSelect() Config {
	c := DefaultConfig()
	c.Dimensions = DimensionsWidth
	return c
}

// YBoxSelect returns the ybox_select preset.
func YBoxSelect() Config {
	c := DefaultConfig()
	c.Dimensions = DimensionsHeight
	return c
}

var presets = map[string]func() Config{
	PresetBoxSelect:  BoxSelect,
	PresetXBoxSelect: XBoxSelect,
	PresetYBoxSelect: YBoxSelect,
}

// Preset returns the configuration registered under name.
func Preset(name string) (Config, error) {
	fn, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return fn(), nil
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
