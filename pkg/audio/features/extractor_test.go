package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/sonavox/voiceguard/pkg/audio/common"
)

// ExtractorTestSuite contains all feature extraction tests
type ExtractorTestSuite struct {
	suite.Suite
	extractor  *Extractor
	sampleRate int
}

func (s *ExtractorTestSuite) SetupSuite() {
	s.extractor = NewExtractor(nil)
	s.sampleRate = 16000
}

// sineWave generates a pure tone at the given frequency.
func sineWave(freq float64, sampleRate int, duration float64) []float64 {
	n := int(duration * float64(sampleRate))
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
	}
	return samples
}

func (s *ExtractorTestSuite) TestEmptyBuffer() {
	_, err := s.extractor.Extract(nil, s.sampleRate)

	require.Error(s.T(), err)
	s.True(common.IsInvalidAudio(err))
}

func (s *ExtractorTestSuite) TestSilentBuffer() {
	_, err := s.extractor.Extract(make([]float64, s.sampleRate), s.sampleRate)

	require.Error(s.T(), err)
	s.True(common.IsInvalidAudio(err))
}

func (s *ExtractorTestSuite) TestNonFiniteBuffer() {
	samples := make([]float64, s.sampleRate)
	for i := range samples {
		samples[i] = math.NaN()
	}

	_, err := s.extractor.Extract(samples, s.sampleRate)

	require.Error(s.T(), err)
	s.True(common.IsInvalidAudio(err))
}

func (s *ExtractorTestSuite) TestInvalidSampleRate() {
	_, err := s.extractor.Extract(sineWave(440, s.sampleRate, 1.0), 0)

	require.Error(s.T(), err)
	s.True(common.IsInvalidAudio(err))
}

func (s *ExtractorTestSuite) TestNonFiniteValuesAreZeroed() {
	samples := sineWave(440, s.sampleRate, 1.0)
	samples[100] = math.NaN()
	samples[200] = math.Inf(1)

	fv, err := s.extractor.Extract(samples, s.sampleRate)

	require.NoError(s.T(), err)
	s.InDelta(1.0, fv.Duration, 1e-9)
}

func (s *ExtractorTestSuite) TestPureTonePitch() {
	fv, err := s.extractor.Extract(sineWave(440, s.sampleRate, 2.0), s.sampleRate)

	require.NoError(s.T(), err)

	// The dominant spectral peak of a pure tone tracks its frequency.
	s.InDelta(440, fv.PitchMean, 10)
	s.Less(fv.PitchStd, 10.0)
	s.InDelta(440, fv.SpectralCentroidMean, 200)
}

func (s *ExtractorTestSuite) TestFeatureVectorShape() {
	fv, err := s.extractor.Extract(sineWave(440, s.sampleRate, 1.0), s.sampleRate)

	require.NoError(s.T(), err)
	s.Len(fv.MFCCMean, 13)
	s.Len(fv.MFCCStd, 13)
	s.Len(fv.MFCCMax, 13)
	s.Len(fv.MFCCMin, 13)
	s.Len(fv.ChromaMean, 12)
	s.Len(fv.ChromaStd, 12)
	s.Equal(float64(s.sampleRate), fv.SampleRate)
	s.InDelta(1.0, fv.Duration, 1e-9)
}

func (s *ExtractorTestSuite) TestDeterministic() {
	samples := sineWave(220, s.sampleRate, 1.0)

	first, err := s.extractor.Extract(samples, s.sampleRate)
	require.NoError(s.T(), err)

	second, err := s.extractor.Extract(samples, s.sampleRate)
	require.NoError(s.T(), err)

	s.Equal(first, second)
}

func (s *ExtractorTestSuite) TestConstantToneEnergyStats() {
	fv, err := s.extractor.Extract(sineWave(440, s.sampleRate, 2.0), s.sampleRate)

	require.NoError(s.T(), err)

	// A steady tone has near-constant frame energy. The trailing
	// zero-padded frames widen the spread slightly.
	s.Greater(fv.EnergyMean, 0.0)
	s.GreaterOrEqual(fv.EnergyMax, fv.EnergyMin)
	s.GreaterOrEqual(fv.ZCRMean, 0.0)
	s.LessOrEqual(fv.ZCRMax, 1.0)
}

func TestExtractorTestSuite(t *testing.T) {
	suite.Run(t, new(ExtractorTestSuite))
}

func TestZeroCrossingRate(t *testing.T) {
	// Alternating signs cross on every step.
	frame := []float64{1, -1, 1, -1, 1}
	assert.InDelta(t, 1.0, zeroCrossingRate(frame), 1e-12)

	// A constant-sign frame never crosses.
	assert.Zero(t, zeroCrossingRate([]float64{1, 2, 3}))
	assert.Zero(t, zeroCrossingRate([]float64{0.5}))
}

func TestRMSEnergy(t *testing.T) {
	assert.InDelta(t, 2.0, rmsEnergy([]float64{2, -2, 2, -2}), 1e-12)
	assert.Zero(t, rmsEnergy(nil))
}

func TestSanitizeSamples(t *testing.T) {
	clean, finite, maxAbs := sanitizeSamples([]float64{0.5, math.NaN(), -0.75, math.Inf(-1)})

	assert.Equal(t, []float64{0.5, 0, -0.75, 0}, clean)
	assert.Equal(t, 2, finite)
	assert.InDelta(t, 0.75, maxAbs, 1e-12)
}
