package boxselect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/boxselect/internal/selection"
)

func TestDimensionsParse(t *testing.T) {
	tests := []struct {
		in   string
		want Dimensions
	}{
		{"both", DimensionsBoth},
		{"", DimensionsBoth},
		{"width", DimensionsWidth},
		{"X", DimensionsWidth},
		{"height", DimensionsHeight},
		{"y", DimensionsHeight},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDimensions(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDimensions("depth")
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestOriginParse(t *testing.T) {
	o, err := ParseOrigin("center")
	require.NoError(t, err)
	assert.Equal(t, OriginCenter, o)
	assert.Equal(t, "center", o.String())

	o, err = ParseOrigin("corner")
	require.NoError(t, err)
	assert.Equal(t, OriginCorner, o)

	_, err = ParseOrigin("edge")
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	bad := []Config{
		{Dimensions: Dimensions(7)},
		{Origin: Origin(3)},
		{DefaultMode: selection.Mode(9)},
	}
	for _, c := range bad {
		assert.True(t, errors.Is(c.Validate(), ErrInvalidConfig), "%+v", c)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name    string
		dims    Dimensions
		tooltip string
	}{
		{PresetBoxSelect, DimensionsBoth, "Box Select"},
		{PresetXBoxSelect, DimensionsWidth, "Box Select (x-axis)"},
		{PresetYBoxSelect, DimensionsHeight, "Box Select (y-axis)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Preset(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.dims, cfg.Dimensions)
			assert.Equal(t, OriginCorner, cfg.Origin)
			assert.False(t, cfg.SelectEveryMouseMove)
			assert.Equal(t, selection.ModeReplace, cfg.DefaultMode)
			assert.Equal(t, tt.tooltip, cfg.Tooltip())
		})
	}

	_, err := Preset("lasso_select")
	assert.True(t, errors.Is(err, ErrUnknownPreset))

	assert.Equal(t, []string{PresetBoxSelect, PresetXBoxSelect, PresetYBoxSelect}, PresetNames())
}
