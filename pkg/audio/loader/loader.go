package loader

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/sonavox/voiceguard/internal/logging"
	"github.com/sonavox/voiceguard/pkg/audio/common"
)

// Config controls decoding and preprocessing.
type Config struct {
	// TargetSampleRate is the rate audio is resampled to before
	// analysis. Lower rates trade frequency range for speed.
	TargetSampleRate int

	// AnalysisDuration caps how much audio is analyzed; MaxDuration is
	// the hard ceiling regardless of AnalysisDuration.
	AnalysisDuration time.Duration
	MaxDuration      time.Duration

	// MaxSizeBytes limits the encoded payload size.
	MaxSizeBytes int64
}

// DefaultConfig returns the standard loader settings.
func DefaultConfig() Config {
	return Config{
		TargetSampleRate: 16000,
		AnalysisDuration: 10 * time.Second,
		MaxDuration:      60 * time.Second,
		MaxSizeBytes:     10 << 20,
	}
}

// AudioBuffer is a decoded mono sample buffer ready for analysis.
type AudioBuffer struct {
	Samples    []float64
	SampleRate int
	Channels   int // channel count of the decoded stream before downmix; go-mp3 upmixes mono sources, so MP3 always reports 2
	Duration   time.Duration
}

// Loader decodes encoded audio payloads into mono float64 buffers at
// the target sample rate.
type Loader struct {
	config Config
	logger logging.Logger
}

// NewLoader creates a loader with the given config.
func NewLoader(config Config) *Loader {
	if config.TargetSampleRate <= 0 {
		config = DefaultConfig()
	}
	return &Loader{
		config: config,
		logger: logging.WithFields(logging.Fields{
			"component":          "audio_loader",
			"target_sample_rate": config.TargetSampleRate,
		}),
	}
}

// DecodeBase64 decodes a base64 payload and enforces the size cap.
func (l *Loader) DecodeBase64(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, common.NewAudioError("", common.ErrCodeEncoding, "invalid base64 encoding", err)
	}
	if int64(len(data)) > l.config.MaxSizeBytes {
		return nil, common.NewAudioError("", common.ErrCodeOversized,
			fmt.Sprintf("audio payload exceeds %d bytes", l.config.MaxSizeBytes), nil)
	}
	return data, nil
}

// Load decodes an encoded audio payload of the given format ("mp3" or
// "wav") into a mono buffer at the target rate, truncated to the
// analysis duration.
func (l *Loader) Load(data []byte, format string) (*AudioBuffer, error) {
	if int64(len(data)) > l.config.MaxSizeBytes {
		return nil, common.NewAudioError(format, common.ErrCodeOversized,
			fmt.Sprintf("audio payload exceeds %d bytes", l.config.MaxSizeBytes), nil)
	}

	var samples []float64
	var sourceRate, channels int
	var err error

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "mp3":
		samples, sourceRate, channels, err = decodeMP3(data)
	case "wav":
		samples, sourceRate, channels, err = decodeWAV(data)
	default:
		return nil, common.NewAudioError(format, common.ErrCodeUnsupported,
			fmt.Sprintf("unsupported audio format %q", format), nil)
	}
	if err != nil {
		return nil, err
	}
	if len(samples) == 0 {
		return nil, common.NewAudioError(format, common.ErrCodeDecoding, "decoded audio is empty", nil)
	}

	samples = resampleLinear(samples, sourceRate, l.config.TargetSampleRate)

	maxSeconds := min(l.config.AnalysisDuration, l.config.MaxDuration).Seconds()
	maxSamples := int(maxSeconds * float64(l.config.TargetSampleRate))
	if maxSamples > 0 && len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}

	buffer := &AudioBuffer{
		Samples:    samples,
		SampleRate: l.config.TargetSampleRate,
		Channels:   channels,
		Duration:   time.Duration(float64(len(samples)) / float64(l.config.TargetSampleRate) * float64(time.Second)),
	}

	l.logger.Debug("Audio decoded", logging.Fields{
		"format":      format,
		"source_rate": sourceRate,
		"channels":    channels,
		"samples":     len(samples),
		"duration":    buffer.Duration.Seconds(),
	})

	return buffer, nil
}

// downmixMono averages interleaved channels into a mono signal.
func downmixMono(interleaved []float64, channels int) []float64 {
	if channels <= 1 {
		return interleaved
	}
	mono := make([]float64, len(interleaved)/channels)
	for i := range mono {
		sum := 0.0
		for c := range channels {
			sum += interleaved[i*channels+c]
		}
		mono[i] = sum / float64(channels)
	}
	return mono
}
