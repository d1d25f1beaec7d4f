package analyzers

import (
	"sync"

	"github.com/mjibson/go-dsp/window"
)

// WindowGenerator caches window function coefficients by size.
type WindowGenerator struct {
	mu    sync.Mutex
	cache map[int][]float64
}

// NewWindowGenerator creates a new window generator.
func NewWindowGenerator() *WindowGenerator {
	return &WindowGenerator{
		cache: make(map[int][]float64),
	}
}

// Hann returns Hann window coefficients of the given length.
func (w *WindowGenerator) Hann(size int) []float64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	if coeffs, ok := w.cache[size]; ok {
		return coeffs
	}
	coeffs := window.Hann(size)
	w.cache[size] = coeffs
	return coeffs
}

// ApplyHann multiplies the signal by a Hann window into a new slice.
func (w *WindowGenerator) ApplyHann(signal []float64) []float64 {
	coeffs := w.Hann(len(signal))
	windowed := make([]float64, len(signal))
	for i, s := range signal {
		windowed[i] = s * coeffs[i]
	}
	return windowed
}
