package analyzers

import "math"

// MelAnalyzer computes MFCCs from magnitude spectra using a triangular
// mel filterbank spanning 0 Hz to Nyquist and an orthonormal DCT-II.
type MelAnalyzer struct {
	sampleRate int
	windowSize int
	melBands   int
	numCoeffs  int
	filterbank [][]float64
}

// NewMelAnalyzer creates a mel analyzer with the given filterbank size
// and number of retained cepstral coefficients.
func NewMelAnalyzer(sampleRate, windowSize, melBands, numCoeffs int) *MelAnalyzer {
	ma := &MelAnalyzer{
		sampleRate: sampleRate,
		windowSize: windowSize,
		melBands:   melBands,
		numCoeffs:  numCoeffs,
	}
	ma.filterbank = ma.buildFilterbank()
	return ma
}

func hzToMel(f float64) float64 {
	return 2595.0 * math.Log10(1.0+f/700.0)
}

func melToHz(m float64) float64 {
	return 700.0 * (math.Pow(10, m/2595.0) - 1.0)
}

// buildFilterbank constructs melBands triangular filters over the
// positive FFT bins.
func (ma *MelAnalyzer) buildFilterbank() [][]float64 {
	numBins := ma.windowSize/2 + 1
	nyquist := float64(ma.sampleRate) / 2.0

	melMax := hzToMel(nyquist)
	points := make([]float64, ma.melBands+2)
	for i := range points {
		points[i] = melToHz(melMax * float64(i) / float64(ma.melBands+1))
	}

	// Fractional bin positions of the filter edges
	bins := make([]float64, len(points))
	for i, f := range points {
		bins[i] = f * float64(ma.windowSize) / float64(ma.sampleRate)
	}

	filters := make([][]float64, ma.melBands)
	for m := range ma.melBands {
		filter := make([]float64, numBins)
		left, center, right := bins[m], bins[m+1], bins[m+2]
		for k := range numBins {
			fk := float64(k)
			switch {
			case fk > left && fk < center && center > left:
				filter[k] = (fk - left) / (center - left)
			case fk == center:
				filter[k] = 1
			case fk > center && fk < right && right > center:
				filter[k] = (right - fk) / (right - center)
			}
		}
		filters[m] = filter
	}
	return filters
}

// MFCC computes the first numCoeffs mel-frequency cepstral coefficients
// of a magnitude spectrum.
func (ma *MelAnalyzer) MFCC(spectrum []float64) []float64 {
	logEnergies := make([]float64, ma.melBands)
	for m, filter := range ma.filterbank {
		energy := 0.0
		for k, w := range filter {
			if w > 0 && k < len(spectrum) {
				energy += w * spectrum[k] * spectrum[k]
			}
		}
		logEnergies[m] = math.Log(energy + 1e-10)
	}
	return ma.dct(logEnergies)
}

// dct applies an orthonormal DCT-II and keeps the first numCoeffs terms.
func (ma *MelAnalyzer) dct(input []float64) []float64 {
	n := float64(len(input))
	coeffs := make([]float64, ma.numCoeffs)
	for i := range ma.numCoeffs {
		sum := 0.0
		for m, v := range input {
			sum += v * math.Cos(math.Pi*float64(i)*(float64(m)+0.5)/n)
		}
		scale := math.Sqrt(2.0 / n)
		if i == 0 {
			scale = math.Sqrt(1.0 / n)
		}
		coeffs[i] = scale * sum
	}
	return coeffs
}

// Delta computes a regression-based first derivative of a coefficient
// sequence over a window of width frames. Edge frames are replicated.
func (ma *MelAnalyzer) Delta(sequence [][]float64, width int) [][]float64 {
	if len(sequence) == 0 {
		return nil
	}

	halfWidth := width / 2
	denominator := 0.0
	for n := 1; n <= halfWidth; n++ {
		denominator += float64(n * n)
	}
	denominator *= 2

	numCoeffs := len(sequence[0])
	deltas := make([][]float64, len(sequence))
	clamp := func(t int) int {
		if t < 0 {
			return 0
		}
		if t >= len(sequence) {
			return len(sequence) - 1
		}
		return t
	}

	for t := range sequence {
		delta := make([]float64, numCoeffs)
		for i := range numCoeffs {
			sum := 0.0
			for n := 1; n <= halfWidth; n++ {
				sum += float64(n) * (sequence[clamp(t+n)][i] - sequence[clamp(t-n)][i])
			}
			delta[i] = sum / denominator
		}
		deltas[t] = delta
	}
	return deltas
}
