package configs

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	// Application settings
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`

	// HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// Audio processing configuration
	Audio AudioConfig `mapstructure:"audio"`

	// Supported request languages
	Languages []string `mapstructure:"languages"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	APIKey          string        `mapstructure:"api_key"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxConcurrent   int           `mapstructure:"max_concurrent"`
}

// AudioConfig contains audio decoding and analysis settings
type AudioConfig struct {
	TargetSampleRate int           `mapstructure:"target_sample_rate"`
	AnalysisDuration time.Duration `mapstructure:"analysis_duration"`
	MaxDuration      time.Duration `mapstructure:"max_duration"`
	MaxSizeMB        int           `mapstructure:"max_size_mb"`
	WindowSize       int           `mapstructure:"window_size"`
	HopSize          int           `mapstructure:"hop_size"`
	MelBands         int           `mapstructure:"mel_bands"`
	MFCCCoefficients int           `mapstructure:"mfcc_coefficients"`
	ContrastBands    int           `mapstructure:"contrast_bands"`
	RolloffPercent   float64       `mapstructure:"rolloff_percent"`
}

// LoadConfig loads configuration from viper
func LoadConfig() (*Config, error) {
	config := &Config{}

	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be in (0, 65535], got %d", c.Server.Port)
	}

	if c.Server.MaxConcurrent <= 0 {
		return fmt.Errorf("max concurrent detections must be positive")
	}

	if c.Audio.TargetSampleRate <= 0 {
		return fmt.Errorf("target sample rate must be positive")
	}

	if c.Audio.AnalysisDuration <= 0 {
		return fmt.Errorf("analysis duration must be positive")
	}

	if c.Audio.MaxDuration < c.Audio.AnalysisDuration {
		return fmt.Errorf("max duration must be at least the analysis duration")
	}

	if c.Audio.MaxSizeMB <= 0 {
		return fmt.Errorf("max payload size must be positive")
	}

	if len(c.Languages) == 0 {
		return fmt.Errorf("at least one supported language is required")
	}

	return nil
}
