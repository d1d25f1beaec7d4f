package configs

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDefaults(t *testing.T) *Config {
	t.Helper()

	v := viper.New()
	SetDefaults(v)

	config := &Config{}
	require.NoError(t, v.Unmarshal(config))
	return config
}

func TestDefaultConfig(t *testing.T) {
	config := loadDefaults(t)

	assert.Equal(t, 8000, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
	assert.Equal(t, 4, config.Server.MaxConcurrent)
	assert.Equal(t, 16000, config.Audio.TargetSampleRate)
	assert.Equal(t, 2048, config.Audio.WindowSize)
	assert.Equal(t, 512, config.Audio.HopSize)
	assert.Equal(t, 13, config.Audio.MFCCCoefficients)
	assert.Equal(t, SupportedLanguages, config.Languages)
}

func TestDefaultConfigValidates(t *testing.T) {
	config := loadDefaults(t)
	assert.NoError(t, config.Validate())
}

func TestValidateRejectsBadPort(t *testing.T) {
	config := loadDefaults(t)
	config.Server.Port = -1

	assert.Error(t, config.Validate())
}

func TestValidateRejectsBadSampleRate(t *testing.T) {
	config := loadDefaults(t)
	config.Audio.TargetSampleRate = 0

	assert.Error(t, config.Validate())
}
