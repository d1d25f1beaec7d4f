package features

import (
	"math"

	"github.com/sonavox/voiceguard/internal/logging"
	"github.com/sonavox/voiceguard/pkg/audio/analyzers"
	"github.com/sonavox/voiceguard/pkg/audio/common"
	"github.com/sonavox/voiceguard/pkg/audio/config"
)

// Extractor turns a mono sample buffer into a FeatureVector. It holds
// no state between calls; extraction is deterministic for identical
// input.
type Extractor struct {
	config *config.FeatureConfig
	logger logging.Logger
}

// NewExtractor creates a feature extractor. A nil config selects the
// canonical defaults.
func NewExtractor(cfg *config.FeatureConfig) *Extractor {
	if cfg == nil {
		cfg = config.DefaultFeatureConfig()
	}
	return &Extractor{
		config: cfg,
		logger: logging.WithFields(logging.Fields{
			"component": "feature_extractor",
		}),
	}
}

// Extract computes the full feature vector for a sample buffer.
// Samples must be normalized to [-1, 1]. Returns InvalidAudioError for
// empty, silent, or fully non-finite buffers.
func (e *Extractor) Extract(samples []float64, sampleRate int) (*FeatureVector, error) {
	if len(samples) == 0 {
		return nil, &common.InvalidAudioError{Reason: "empty sample buffer"}
	}
	if sampleRate <= 0 {
		return nil, &common.InvalidAudioError{Reason: "non-positive sample rate"}
	}

	clean, finite, maxAbs := sanitizeSamples(samples)
	if finite == 0 {
		return nil, &common.InvalidAudioError{Reason: "no finite sample values"}
	}
	if maxAbs == 0 {
		return nil, &common.InvalidAudioError{Reason: "silent audio"}
	}

	logger := e.logger.WithFields(logging.Fields{
		"function":    "Extract",
		"samples":     len(samples),
		"sample_rate": sampleRate,
	})
	logger.Debug("Extracting audio features")

	spectral := analyzers.NewSpectralAnalyzer(sampleRate, e.config.WindowSize, e.config.HopSize)
	mel := analyzers.NewMelAnalyzer(sampleRate, e.config.WindowSize, e.config.MelBands, e.config.MFCCCoefficients)
	chroma := analyzers.NewChromaAnalyzer(sampleRate, e.config.WindowSize)
	pitch := analyzers.NewPitchAnalyzer(sampleRate, e.config.WindowSize)

	numFrames := spectral.NumFrames(len(clean))

	zcrs := make([]float64, 0, numFrames)
	energies := make([]float64, 0, numFrames)
	centroids := make([]float64, 0, numFrames)
	bandwidths := make([]float64, 0, numFrames)
	rolloffs := make([]float64, 0, numFrames)
	var contrasts []float64
	mfccFrames := make([][]float64, 0, numFrames)
	chromaFrames := make([][]float64, 0, numFrames)
	var pitches []float64

	for t := range numFrames {
		frame := spectral.Frame(clean, t)
		zcrs = append(zcrs, zeroCrossingRate(frame))
		energies = append(energies, rmsEnergy(frame))

		spectrum := spectral.MagnitudeSpectrum(frame)
		centroid := spectral.Centroid(spectrum)
		centroids = append(centroids, centroid)
		bandwidths = append(bandwidths, spectral.Bandwidth(spectrum, centroid))
		rolloffs = append(rolloffs, spectral.Rolloff(spectrum, e.config.RolloffPercent))
		contrasts = append(contrasts, spectral.ContrastBands(spectrum, e.config.ContrastBands)...)

		mfccFrames = append(mfccFrames, mel.MFCC(spectrum))
		chromaFrames = append(chromaFrames, chroma.Chroma(spectrum))

		if est := pitch.Estimate(spectrum); est > 0 {
			pitches = append(pitches, est)
		}
	}

	fv := &FeatureVector{
		Duration:   float64(len(samples)) / float64(sampleRate),
		SampleRate: float64(sampleRate),
	}

	zcr := summarize(zcrs)
	fv.ZCRMean, fv.ZCRStd, fv.ZCRMax, fv.ZCRMin = zcr.Mean, zcr.Std, zcr.Max, zcr.Min

	centroid := summarize(centroids)
	fv.SpectralCentroidMean, fv.SpectralCentroidStd = centroid.Mean, centroid.Std
	fv.SpectralCentroidMax, fv.SpectralCentroidMin = centroid.Max, centroid.Min

	fv.SpectralBandwidthMean = mean(bandwidths)
	fv.SpectralBandwidthStd = stdPop(bandwidths)

	fv.SpectralContrastMean = mean(contrasts)
	fv.SpectralContrastStd = stdPop(contrasts)

	fv.MFCCMean, fv.MFCCStd, fv.MFCCMax, fv.MFCCMin = summarizeColumns(mfccFrames, e.config.MFCCCoefficients)

	deltas := flatten(mel.Delta(mfccFrames, e.config.DeltaWidth))
	fv.MFCCDeltaMean = mean(deltas)
	fv.MFCCDeltaStd = stdPop(deltas)

	fv.ChromaMean, fv.ChromaStd, _, _ = summarizeColumns(chromaFrames, e.config.ChromaBins)

	if len(pitches) > 0 {
		p := summarize(pitches)
		fv.PitchMean, fv.PitchStd = p.Mean, p.Std
		fv.PitchRange = p.Max - p.Min
		fv.PitchMax, fv.PitchMin = p.Max, p.Min
		if p.Mean > 0 {
			fv.PitchCV = p.Std / p.Mean
		}
	}

	energy := summarize(energies)
	fv.EnergyMean, fv.EnergyStd, fv.EnergyMax, fv.EnergyMin = energy.Mean, energy.Std, energy.Max, energy.Min
	if energy.Mean > 0 {
		fv.EnergyCV = energy.Std / energy.Mean
	}

	fv.SpectralRolloffMean = mean(rolloffs)
	fv.SpectralRolloffStd = stdPop(rolloffs)

	logger.Debug("Feature extraction completed", logging.Fields{
		"frames":        numFrames,
		"voiced_frames": len(pitches),
		"duration":      fv.Duration,
	})

	return fv, nil
}

// sanitizeSamples copies the buffer with non-finite values zeroed and
// reports the finite count and the peak absolute amplitude.
func sanitizeSamples(samples []float64) (clean []float64, finite int, maxAbs float64) {
	clean = make([]float64, len(samples))
	for i, s := range samples {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			continue
		}
		clean[i] = s
		finite++
		if abs := math.Abs(s); abs > maxAbs {
			maxAbs = abs
		}
	}
	return clean, finite, maxAbs
}

// zeroCrossingRate computes the fraction of adjacent-sample sign changes
// in a frame.
func zeroCrossingRate(frame []float64) float64 {
	if len(frame) <= 1 {
		return 0
	}
	crossings := 0
	for i := 1; i < len(frame); i++ {
		if (frame[i-1] >= 0 && frame[i] < 0) || (frame[i-1] < 0 && frame[i] >= 0) {
			crossings++
		}
	}
	return float64(crossings) / float64(len(frame)-1)
}

// rmsEnergy computes root-mean-square amplitude of a frame.
func rmsEnergy(frame []float64) float64 {
	if len(frame) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range frame {
		sum += s * s
	}
	return math.Sqrt(sum / float64(len(frame)))
}
