package analyzers

import (
	"math"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"

	"github.com/sonavox/voiceguard/internal/logging"
)

// contrastQuantile is the fraction of band bins averaged into the peak
// and valley estimates of the spectral contrast.
const contrastQuantile = 0.02

// SpectralAnalyzer provides framing, FFT, and per-frame spectral statistics.
type SpectralAnalyzer struct {
	windowGenerator *WindowGenerator
	sampleRate      int
	windowSize      int
	hopSize         int
	freqs           []float64
	logger          logging.Logger
}

// NewSpectralAnalyzer creates a new spectral analyzer.
func NewSpectralAnalyzer(sampleRate, windowSize, hopSize int) *SpectralAnalyzer {
	sa := &SpectralAnalyzer{
		windowGenerator: NewWindowGenerator(),
		sampleRate:      sampleRate,
		windowSize:      windowSize,
		hopSize:         hopSize,
		logger: logging.WithFields(logging.Fields{
			"component":   "spectral_analyzer",
			"sample_rate": sampleRate,
		}),
	}
	sa.freqs = sa.frequencyBins()
	return sa
}

// NumFrames returns the frame count for a signal of the given length.
// Frames start every hop; the trailing partial frame is zero-padded.
func (sa *SpectralAnalyzer) NumFrames(signalLen int) int {
	if signalLen <= 0 {
		return 0
	}
	return (signalLen + sa.hopSize - 1) / sa.hopSize
}

// Frame returns the zero-padded analysis frame starting at index*hopSize.
func (sa *SpectralAnalyzer) Frame(signal []float64, index int) []float64 {
	frame := make([]float64, sa.windowSize)
	start := index * sa.hopSize
	if start < len(signal) {
		copy(frame, signal[start:min(start+sa.windowSize, len(signal))])
	}
	return frame
}

// MagnitudeSpectrum computes the Hann-windowed magnitude spectrum of a
// frame, keeping the positive frequencies (DC through Nyquist).
func (sa *SpectralAnalyzer) MagnitudeSpectrum(frame []float64) []float64 {
	windowed := sa.windowGenerator.ApplyHann(frame)
	fftResult := fft.FFTReal(windowed)

	freqBins := len(fftResult)/2 + 1
	magnitude := make([]float64, freqBins)
	for i := range freqBins {
		magnitude[i] = cmplx.Abs(fftResult[i])
	}
	return magnitude
}

// FrequencyBins returns the frequency in Hz of each positive FFT bin.
func (sa *SpectralAnalyzer) FrequencyBins() []float64 {
	return sa.freqs
}

func (sa *SpectralAnalyzer) frequencyBins() []float64 {
	numBins := sa.windowSize/2 + 1
	freqs := make([]float64, numBins)
	for i := range numBins {
		freqs[i] = float64(i) * float64(sa.sampleRate) / float64(sa.windowSize)
	}
	return freqs
}

// Centroid computes the magnitude-weighted mean frequency of a spectrum.
func (sa *SpectralAnalyzer) Centroid(spectrum []float64) float64 {
	numerator := 0.0
	denominator := 0.0

	for i := range spectrum {
		numerator += sa.freqs[i] * spectrum[i]
		denominator += spectrum[i]
	}

	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Bandwidth computes the magnitude-weighted standard deviation of
// frequency around the centroid.
func (sa *SpectralAnalyzer) Bandwidth(spectrum []float64, centroid float64) float64 {
	numerator := 0.0
	denominator := 0.0

	for i := range spectrum {
		diff := sa.freqs[i] - centroid
		numerator += diff * diff * spectrum[i]
		denominator += spectrum[i]
	}

	if denominator == 0 {
		return 0
	}
	return math.Sqrt(numerator / denominator)
}

// Rolloff computes the frequency below which the given fraction of total
// spectral energy is contained.
func (sa *SpectralAnalyzer) Rolloff(spectrum []float64, threshold float64) float64 {
	totalEnergy := 0.0
	for _, mag := range spectrum {
		totalEnergy += mag * mag
	}

	if totalEnergy == 0 {
		return 0
	}

	targetEnergy := threshold * totalEnergy
	cumulativeEnergy := 0.0

	for i := range spectrum {
		cumulativeEnergy += spectrum[i] * spectrum[i]
		if cumulativeEnergy >= targetEnergy {
			return sa.freqs[i]
		}
	}

	return sa.freqs[len(sa.freqs)-1]
}

// ContrastBands computes the peak-to-valley log-energy contrast for each
// sub-band. Band edges follow octave spacing starting at 200 Hz, with the
// last band extending to Nyquist.
func (sa *SpectralAnalyzer) ContrastBands(spectrum []float64, numBands int) []float64 {
	nyquist := float64(sa.sampleRate) / 2.0
	edges := make([]float64, 0, numBands+1)
	edges = append(edges, 0)
	for k := range numBands - 1 {
		edges = append(edges, 200.0*math.Pow(2, float64(k)))
	}
	edges = append(edges, nyquist)

	contrasts := make([]float64, 0, numBands)
	for b := range numBands {
		lo, hi := edges[b], edges[b+1]
		var band []float64
		for i, f := range sa.freqs {
			if f >= lo && (f < hi || (b == numBands-1 && f <= hi)) {
				band = append(band, spectrum[i]*spectrum[i])
			}
		}
		if len(band) == 0 {
			continue
		}

		sort.Float64s(band)
		m := max(1, int(contrastQuantile*float64(len(band))))

		valley := 0.0
		peak := 0.0
		for i := range m {
			valley += band[i]
			peak += band[len(band)-1-i]
		}
		valley /= float64(m)
		peak /= float64(m)

		contrasts = append(contrasts, math.Log(peak+1e-10)-math.Log(valley+1e-10))
	}

	return contrasts
}
