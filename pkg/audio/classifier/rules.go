package classifier

import (
	"gonum.org/v1/gonum/stat"

	"github.com/sonavox/voiceguard/pkg/audio/features"
)

// Side marks which hypothesis an indicator supports.
type Side string

const (
	SideAI    Side = "ai"
	SideHuman Side = "human"
)

// Indicator is one piece of weighted evidence produced by a rule.
type Indicator struct {
	Name   string
	Side   Side
	Weight float64
	Reason string
}

type predicate func(*features.FeatureVector) bool

type branch struct {
	fires  predicate
	weight float64
	reason string
}

// Rule is one row of the scoring table. The HUMAN branch is evaluated
// only when the AI branch does not fire; a rule yields at most one
// indicator.
type Rule struct {
	Name  string
	AI    branch
	Human *branch
}

// Evaluate applies the rule to a feature vector.
func (r Rule) Evaluate(fv *features.FeatureVector) (Indicator, bool) {
	if r.AI.fires(fv) {
		return Indicator{Name: r.Name, Side: SideAI, Weight: r.AI.weight, Reason: r.AI.reason}, true
	}
	if r.Human != nil && r.Human.fires(fv) {
		return Indicator{Name: r.Name, Side: SideHuman, Weight: r.Human.weight}, true
	}
	return Indicator{}, false
}

// The thresholds below are hand-tuned constants. They are preserved
// verbatim; there is no calibration dataset that would justify changing
// them.
var ruleTable = []Rule{
	{
		Name: "pitch_consistency",
		AI: branch{
			fires: func(fv *features.FeatureVector) bool {
				return fv.PitchStd < 25 || (fv.PitchCV > 0 && fv.PitchCV < 0.08)
			},
			weight: 0.20,
			reason: "unusually consistent pitch",
		},
		Human: &branch{
			fires: func(fv *features.FeatureVector) bool {
				return fv.PitchStd > 30 && fv.PitchRange > 150
			},
			weight: 0.15,
		},
	},
	{
		Name: "mfcc_variability",
		AI: branch{
			fires: func(fv *features.FeatureVector) bool {
				return meanOf(fv.MFCCStd) < 6.5
			},
			weight: 0.18,
			reason: "atypical MFCC patterns",
		},
		Human: &branch{
			fires: func(fv *features.FeatureVector) bool {
				return meanOf(fv.MFCCStd) > 7
			},
			weight: 0.12,
		},
	},
	{
		Name: "mfcc_delta",
		AI: branch{
			fires: func(fv *features.FeatureVector) bool {
				return fv.MFCCDeltaStd < 4.0
			},
			weight: 0.12,
			reason: "unnatural spectral transitions",
		},
	},
	{
		Name: "spectral_centroid",
		AI: branch{
			fires: func(fv *features.FeatureVector) bool {
				return fv.SpectralCentroidStd < 600
			},
			weight: 0.10,
			reason: "limited spectral variation",
		},
		Human: &branch{
			fires: func(fv *features.FeatureVector) bool {
				return fv.SpectralCentroidStd > 800
			},
			weight: 0.10,
		},
	},
	{
		Name: "spectral_bandwidth",
		AI: branch{
			fires: func(fv *features.FeatureVector) bool {
				return fv.SpectralBandwidthStd < 450
			},
			weight: 0.08,
		},
	},
	{
		Name: "energy_consistency",
		AI: branch{
			fires: func(fv *features.FeatureVector) bool {
				return fv.EnergyStd < 0.012 || (fv.EnergyCV > 0 && fv.EnergyCV < 0.18)
			},
			weight: 0.12,
			reason: "unnatural energy consistency",
		},
		Human: &branch{
			fires: func(fv *features.FeatureVector) bool {
				return fv.EnergyStd > 0.015
			},
			weight: 0.10,
		},
	},
	{
		Name: "zcr_variability",
		AI: branch{
			fires: func(fv *features.FeatureVector) bool {
				return fv.ZCRStd < 0.012
			},
			weight: 0.08,
			reason: "unnatural zero crossing patterns",
		},
		Human: &branch{
			fires: func(fv *features.FeatureVector) bool {
				return fv.ZCRStd > 0.015
			},
			weight: 0.08,
		},
	},
	{
		Name: "spectral_rolloff",
		AI: branch{
			fires: func(fv *features.FeatureVector) bool {
				return fv.SpectralRolloffStd < 600
			},
			weight: 0.08,
		},
	},
}

// RuleNames returns the ordered names of the scoring table rows.
func RuleNames() []string {
	names := make([]string, len(ruleTable))
	for i, r := range ruleTable {
		names[i] = r.Name
	}
	return names
}

func meanOf(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, nil)
}
