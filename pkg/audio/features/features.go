package features

// FeatureVector is the fixed set of statistics derived from one audio
// sample. Every field is always populated; statistics that cannot be
// computed (e.g. no voiced frames for pitch) default to zero.
type FeatureVector struct {
	Duration   float64 `json:"duration"`
	SampleRate float64 `json:"sample_rate"`

	ZCRMean float64 `json:"zcr_mean"`
	ZCRStd  float64 `json:"zcr_std"`
	ZCRMax  float64 `json:"zcr_max"`
	ZCRMin  float64 `json:"zcr_min"`

	SpectralCentroidMean float64 `json:"spectral_centroid_mean"`
	SpectralCentroidStd  float64 `json:"spectral_centroid_std"`
	SpectralCentroidMax  float64 `json:"spectral_centroid_max"`
	SpectralCentroidMin  float64 `json:"spectral_centroid_min"`

	SpectralBandwidthMean float64 `json:"spectral_bandwidth_mean"`
	SpectralBandwidthStd  float64 `json:"spectral_bandwidth_std"`

	SpectralContrastMean float64 `json:"spectral_contrast_mean"`
	SpectralContrastStd  float64 `json:"spectral_contrast_std"`

	// Per-coefficient statistics, 13 entries each
	MFCCMean []float64 `json:"mfcc_mean"`
	MFCCStd  []float64 `json:"mfcc_std"`
	MFCCMax  []float64 `json:"mfcc_max"`
	MFCCMin  []float64 `json:"mfcc_min"`

	MFCCDeltaMean float64 `json:"mfcc_delta_mean"`
	MFCCDeltaStd  float64 `json:"mfcc_delta_std"`

	// Per-pitch-class statistics, 12 entries each
	ChromaMean []float64 `json:"chroma_mean"`
	ChromaStd  []float64 `json:"chroma_std"`

	PitchMean  float64 `json:"pitch_mean"`
	PitchStd   float64 `json:"pitch_std"`
	PitchRange float64 `json:"pitch_range"`
	PitchMax   float64 `json:"pitch_max"`
	PitchMin   float64 `json:"pitch_min"`
	PitchCV    float64 `json:"pitch_cv"`

	EnergyMean float64 `json:"energy_mean"`
	EnergyStd  float64 `json:"energy_std"`
	EnergyMax  float64 `json:"energy_max"`
	EnergyMin  float64 `json:"energy_min"`
	EnergyCV   float64 `json:"energy_cv"`

	SpectralRolloffMean float64 `json:"spectral_rolloff_mean"`
	SpectralRolloffStd  float64 `json:"spectral_rolloff_std"`
}
