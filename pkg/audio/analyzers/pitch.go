package analyzers

// PitchAnalyzer estimates the most prominent frequency per frame from
// the magnitude spectrum via peak picking with parabolic interpolation.
type PitchAnalyzer struct {
	sampleRate int
	windowSize int
}

// NewPitchAnalyzer creates a pitch analyzer for the given frame size.
func NewPitchAnalyzer(sampleRate, windowSize int) *PitchAnalyzer {
	return &PitchAnalyzer{
		sampleRate: sampleRate,
		windowSize: windowSize,
	}
}

// Estimate returns the strongest frequency estimate of a magnitude
// spectrum in Hz, or 0 when the frame is unvoiced or silent.
func (pa *PitchAnalyzer) Estimate(spectrum []float64) float64 {
	if len(spectrum) < 3 {
		return 0
	}

	// Find the peak bin, skipping DC
	peakBin := 0
	peakMag := 0.0
	for k := 1; k < len(spectrum); k++ {
		if spectrum[k] > peakMag {
			peakMag = spectrum[k]
			peakBin = k
		}
	}
	if peakBin == 0 || peakMag == 0 {
		return 0
	}

	// Parabolic interpolation around the peak refines the bin estimate
	offset := 0.0
	if peakBin > 0 && peakBin < len(spectrum)-1 {
		alpha := spectrum[peakBin-1]
		beta := spectrum[peakBin]
		gamma := spectrum[peakBin+1]
		denom := alpha - 2*beta + gamma
		if denom != 0 {
			offset = 0.5 * (alpha - gamma) / denom
		}
	}

	freq := (float64(peakBin) + offset) * float64(pa.sampleRate) / float64(pa.windowSize)
	if freq <= 0 {
		return 0
	}
	return freq
}
