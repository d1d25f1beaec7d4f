package configs

import (
	"time"

	"github.com/spf13/viper"
)

// SupportedLanguages is the default set of request languages.
var SupportedLanguages = []string{"Tamil", "English", "Hindi", "Malayalam", "Telugu"}

// SetDefaults sets default configuration values for all components
func SetDefaults(v *viper.Viper) {
	// Application defaults
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("output_format", "json")

	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.api_key", "")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.max_concurrent", 4)

	// Audio decoding defaults
	v.SetDefault("audio.target_sample_rate", 16000)
	v.SetDefault("audio.analysis_duration", 10*time.Second)
	v.SetDefault("audio.max_duration", 60*time.Second)
	v.SetDefault("audio.max_size_mb", 10)

	// Short-time analysis defaults. These are fixed parameters: every
	// derived statistic and every classifier threshold depends on them.
	v.SetDefault("audio.window_size", 2048)
	v.SetDefault("audio.hop_size", 512)
	v.SetDefault("audio.mel_bands", 40)
	v.SetDefault("audio.mfcc_coefficients", 13)
	v.SetDefault("audio.contrast_bands", 6)
	v.SetDefault("audio.rolloff_percent", 0.85)

	// Request validation defaults
	v.SetDefault("languages", SupportedLanguages)
}
