package analyzers

import "math"

// numPitchClasses is the number of semitone classes in an octave.
const numPitchClasses = 12

// ChromaAnalyzer folds magnitude spectra into the 12 pitch classes of
// the chromatic scale, octave-folded, relative to A4 = 440 Hz.
type ChromaAnalyzer struct {
	sampleRate int
	windowSize int
	binClass   []int
}

// NewChromaAnalyzer creates a chroma analyzer for the given frame size.
func NewChromaAnalyzer(sampleRate, windowSize int) *ChromaAnalyzer {
	ca := &ChromaAnalyzer{
		sampleRate: sampleRate,
		windowSize: windowSize,
	}
	ca.binClass = ca.mapBins()
	return ca
}

// mapBins assigns each positive FFT bin to a pitch class, or -1 for the
// DC bin which carries no pitch.
func (ca *ChromaAnalyzer) mapBins() []int {
	numBins := ca.windowSize/2 + 1
	classes := make([]int, numBins)
	classes[0] = -1
	for k := 1; k < numBins; k++ {
		freq := float64(k) * float64(ca.sampleRate) / float64(ca.windowSize)
		midi := 69.0 + numPitchClasses*math.Log2(freq/440.0)
		pc := int(math.Round(midi)) % numPitchClasses
		if pc < 0 {
			pc += numPitchClasses
		}
		classes[k] = pc
	}
	return classes
}

// Chroma computes the energy distribution over the 12 pitch classes for
// one magnitude spectrum, normalized so the strongest class is 1.
func (ca *ChromaAnalyzer) Chroma(spectrum []float64) []float64 {
	chroma := make([]float64, numPitchClasses)
	for k, pc := range ca.binClass {
		if pc < 0 || k >= len(spectrum) {
			continue
		}
		chroma[pc] += spectrum[k] * spectrum[k]
	}

	maxVal := 0.0
	for _, v := range chroma {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal > 0 {
		for i := range chroma {
			chroma[i] /= maxVal
		}
	}
	return chroma
}
