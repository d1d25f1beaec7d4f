package loader

// resampleLinear converts a mono signal between sample rates using
// linear interpolation. Sufficient for the analysis band of speech;
// spectral statistics are aggregate, not bin-exact, above the passband.
func resampleLinear(samples []float64, sourceRate, targetRate int) []float64 {
	if sourceRate == targetRate || sourceRate <= 0 || targetRate <= 0 || len(samples) == 0 {
		return samples
	}

	outLen := int(float64(len(samples)) * float64(targetRate) / float64(sourceRate))
	if outLen == 0 {
		outLen = 1
	}

	out := make([]float64, outLen)
	step := float64(sourceRate) / float64(targetRate)
	for i := range outLen {
		pos := float64(i) * step
		i0 := int(pos)
		if i0 >= len(samples)-1 {
			out[i] = samples[len(samples)-1]
			continue
		}
		frac := pos - float64(i0)
		out[i] = samples[i0]*(1-frac) + samples[i0+1]*frac
	}
	return out
}
