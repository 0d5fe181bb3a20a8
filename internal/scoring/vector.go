// Package scoring converts an answer set into WISCAR dimension scores.
package scoring

// Dimension names one WISCAR score.
type Dimension string

const (
	Will               Dimension = "will"
	Interest           Dimension = "interest"
	Skill              Dimension = "skill"
	CognitiveReadiness Dimension = "cognitiveReadiness"
	AbilityToLearn     Dimension = "abilityToLearn"
	RealWorldAlignment Dimension = "realWorldAlignment"
)

// Dimensions lists the six WISCAR dimensions in report order.
var Dimensions = []Dimension{
	Will, Interest, Skill, CognitiveReadiness, AbilityToLearn, RealWorldAlignment,
}

// Vector holds the six dimension scores and the overall score. Every value
// lies in [0, 100].
type Vector struct {
	Will               int `json:"will" yaml:"will"`
	Interest           int `json:"interest" yaml:"interest"`
	Skill              int `json:"skill" yaml:"skill"`
	CognitiveReadiness int `json:"cognitiveReadiness" yaml:"cognitiveReadiness"`
	AbilityToLearn     int `json:"abilityToLearn" yaml:"abilityToLearn"`
	RealWorldAlignment int `json:"realWorldAlignment" yaml:"realWorldAlignment"`
	Overall            int `json:"overall" yaml:"overall"`
}

// Get returns the score for d, or 0 for an unknown dimension.
func (v Vector) Get(d Dimension) int {
	switch d {
	case Will:
		return v.Will
	case Interest:
		return v.Interest
	case Skill:
		return v.Skill
	case CognitiveReadiness:
		return v.CognitiveReadiness
	case AbilityToLearn:
		return v.AbilityToLearn
	case RealWorldAlignment:
		return v.RealWorldAlignment
	default:
		return 0
	}
}
