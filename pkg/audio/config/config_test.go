package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultFeatureConfig(t *testing.T) {
	cfg := DefaultFeatureConfig()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 2048, cfg.WindowSize)
	assert.Equal(t, 512, cfg.HopSize)
	assert.Equal(t, 13, cfg.MFCCCoefficients)
	assert.Equal(t, 40, cfg.MelBands)
	assert.Equal(t, 12, cfg.ChromaBins)
	assert.Equal(t, 6, cfg.ContrastBands)
	assert.InDelta(t, 0.85, cfg.RolloffPercent, 1e-12)
	assert.Equal(t, 9, cfg.DeltaWidth)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FeatureConfig)
	}{
		{"zero window", func(c *FeatureConfig) { c.WindowSize = 0 }},
		{"hop exceeds window", func(c *FeatureConfig) { c.HopSize = 4096 }},
		{"too many coefficients", func(c *FeatureConfig) { c.MFCCCoefficients = 50 }},
		{"wrong chroma bins", func(c *FeatureConfig) { c.ChromaBins = 24 }},
		{"rolloff out of range", func(c *FeatureConfig) { c.RolloffPercent = 1.0 }},
		{"even delta width", func(c *FeatureConfig) { c.DeltaWidth = 8 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFeatureConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
