package detector

import (
	"github.com/sonavox/voiceguard/internal/logging"
	"github.com/sonavox/voiceguard/pkg/audio/classifier"
	"github.com/sonavox/voiceguard/pkg/audio/config"
	"github.com/sonavox/voiceguard/pkg/audio/features"
	"github.com/sonavox/voiceguard/pkg/audio/loader"
)

// Detector runs the full detection pipeline: decode, extract features,
// classify. It holds no per-call state and is safe for concurrent use.
type Detector struct {
	loader    *loader.Loader
	extractor *features.Extractor
	logger    logging.Logger
}

// New creates a detector. Nil configs select the defaults.
func New(loaderConfig loader.Config, featureConfig *config.FeatureConfig) *Detector {
	return &Detector{
		loader:    loader.NewLoader(loaderConfig),
		extractor: features.NewExtractor(featureConfig),
		logger: logging.WithFields(logging.Fields{
			"component": "voice_detector",
		}),
	}
}

// NewDefault creates a detector with default settings.
func NewDefault() *Detector {
	return New(loader.DefaultConfig(), nil)
}

// Detect classifies an encoded audio payload of the given format.
func (d *Detector) Detect(data []byte, format string) (*classifier.Result, error) {
	buffer, err := d.loader.Load(data, format)
	if err != nil {
		return nil, err
	}
	return d.DetectSamples(buffer.Samples, buffer.SampleRate)
}

// DetectBase64 classifies a base64-encoded audio payload.
func (d *Detector) DetectBase64(encoded, format string) (*classifier.Result, error) {
	data, err := d.loader.DecodeBase64(encoded)
	if err != nil {
		return nil, err
	}
	return d.Detect(data, format)
}

// DetectSamples classifies an already decoded mono sample buffer.
func (d *Detector) DetectSamples(samples []float64, sampleRate int) (*classifier.Result, error) {
	fv, err := d.extractor.Extract(samples, sampleRate)
	if err != nil {
		return nil, err
	}

	result := classifier.Classify(fv)
	d.logger.Debug("Classification completed", logging.Fields{
		"label":      result.Label,
		"confidence": result.Confidence,
	})
	return &result, nil
}

// ExtractFeatures exposes the feature vector for an encoded payload
// without classifying it.
func (d *Detector) ExtractFeatures(data []byte, format string) (*features.FeatureVector, error) {
	buffer, err := d.loader.Load(data, format)
	if err != nil {
		return nil, err
	}
	return d.extractor.Extract(buffer.Samples, buffer.SampleRate)
}
