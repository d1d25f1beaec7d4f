package config

import "fmt"

// FeatureConfig holds the short-time analysis parameters shared by all
// frame-based features. Changing WindowSize or HopSize changes every
// derived statistic and invalidates the classifier thresholds.
type FeatureConfig struct {
	// Spectral analysis
	WindowSize int `json:"window_size"`
	HopSize    int `json:"hop_size"`

	// Perceptual features
	MFCCCoefficients int `json:"mfcc_coefficients"`
	MelBands         int `json:"mel_bands"`
	ChromaBins       int `json:"chroma_bins"`
	ContrastBands    int `json:"contrast_bands"`

	// Spectral rolloff energy fraction
	RolloffPercent float64 `json:"rolloff_percent"`

	// MFCC delta regression window (frames)
	DeltaWidth int `json:"delta_width"`
}

// DefaultFeatureConfig returns the canonical analysis parameters.
func DefaultFeatureConfig() *FeatureConfig {
	return &FeatureConfig{
		WindowSize:       2048,
		HopSize:          512,
		MFCCCoefficients: 13,
		MelBands:         40,
		ChromaBins:       12,
		ContrastBands:    6,
		RolloffPercent:   0.85,
		DeltaWidth:       9,
	}
}

// Validate checks parameter sanity.
func (c *FeatureConfig) Validate() error {
	if c.WindowSize <= 0 {
		return fmt.Errorf("window size must be positive, got %d", c.WindowSize)
	}
	if c.HopSize <= 0 || c.HopSize > c.WindowSize {
		return fmt.Errorf("hop size must be in (0, %d], got %d", c.WindowSize, c.HopSize)
	}
	if c.MFCCCoefficients <= 0 || c.MFCCCoefficients > c.MelBands {
		return fmt.Errorf("mfcc coefficients must be in (0, %d], got %d", c.MelBands, c.MFCCCoefficients)
	}
	if c.ChromaBins != 12 {
		return fmt.Errorf("chroma bins must be 12, got %d", c.ChromaBins)
	}
	if c.ContrastBands <= 0 {
		return fmt.Errorf("contrast bands must be positive, got %d", c.ContrastBands)
	}
	if c.RolloffPercent <= 0 || c.RolloffPercent >= 1 {
		return fmt.Errorf("rolloff percent must be in (0, 1), got %f", c.RolloffPercent)
	}
	if c.DeltaWidth < 3 || c.DeltaWidth%2 == 0 {
		return fmt.Errorf("delta width must be an odd number >= 3, got %d", c.DeltaWidth)
	}
	return nil
}
