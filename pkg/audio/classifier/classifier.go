package classifier

import (
	"math"
	"strings"

	"github.com/sonavox/voiceguard/pkg/audio/features"
)

// Label is the classification outcome.
type Label string

const (
	LabelAIGenerated Label = "AI_GENERATED"
	LabelHuman       Label = "HUMAN"
)

// Confidence bounds. The classifier deliberately never claims full
// certainty.
const (
	minConfidence = 0.55
	maxConfidence = 0.95
)

const (
	defaultAIProb    = 0.4
	defaultHumanProb = 0.6
	aiBias           = 0.08
	boostPerRule     = 0.03
	maxBoost         = 0.2
	maxReasons       = 3
)

const (
	fallbackAIExplanation = "AI-generated voice patterns detected through spectral and pitch analysis"
	humanExplanation      = "Natural human speech patterns detected with expected variations in pitch, energy, and spectral characteristics"
)

// Result is the output of one classification.
type Result struct {
	Label       Label   `json:"label"`
	Confidence  float64 `json:"confidence"`
	Explanation string  `json:"explanation"`
}

// Classify evaluates the scoring table against a feature vector and
// returns a classification. It is a pure function: total over all
// well-formed feature vectors, no state across calls.
func Classify(fv *features.FeatureVector) Result {
	var aiWeight, humanWeight float64
	var aiCount, humanCount int
	var reasons []string

	for _, rule := range ruleTable {
		indicator, fired := rule.Evaluate(fv)
		if !fired {
			continue
		}
		switch indicator.Side {
		case SideAI:
			aiWeight += indicator.Weight
			aiCount++
			if indicator.Reason != "" {
				reasons = append(reasons, indicator.Reason)
			}
		case SideHuman:
			humanWeight += indicator.Weight
			humanCount++
		}
	}

	total := aiWeight + humanWeight
	aiProb, humanProb := defaultAIProb, defaultHumanProb
	if total > 0 {
		aiProb = aiWeight / total
		humanProb = humanWeight / total
	}

	boost := math.Min(maxBoost, float64(aiCount+humanCount)*boostPerRule)

	// Bias toward the AI hypothesis whenever any AI evidence fired,
	// then renormalize.
	if aiWeight > 0 && total > 0 {
		aiProb = math.Min(1.0, aiProb+aiBias)
		norm := aiProb + humanProb
		aiProb /= norm
		humanProb /= norm
	}

	var result Result
	if aiProb > humanProb {
		result.Label = LabelAIGenerated
		result.Confidence = confidence(aiProb, boost, aiCount)
		result.Explanation = aiExplanation(reasons)
	} else {
		result.Label = LabelHuman
		result.Confidence = confidence(humanProb, boost, humanCount)
		result.Explanation = humanExplanation
	}

	result.Confidence = round2(clamp(result.Confidence, minConfidence, maxConfidence))
	return result
}

// confidence combines the winning probability with the indicator boost.
// Three or more same-side indicators allow the full boost and ceiling.
func confidence(base, boost float64, sideCount int) float64 {
	if sideCount >= 3 {
		return math.Min(0.95, base+boost)
	}
	return math.Min(0.90, base+boost/2)
}

func aiExplanation(reasons []string) string {
	if len(reasons) == 0 {
		return fallbackAIExplanation
	}
	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return "AI-generated voice detected: " + strings.Join(reasons, ", ")
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
