package recommend

import "github.com/abhisek/iamfit/internal/scoring"

// Band groups a 0..100 score for display.
type Band string

const (
	BandStrong   Band = "strong"
	BandModerate Band = "moderate"
	BandWeak     Band = "weak"
)

// BandFor returns the display band of a score. It shares the recommendation
// thresholds.
func BandFor(score int) Band {
	switch {
	case score >= ProceedThreshold:
		return BandStrong
	case score >= ConditionalThreshold:
		return BandModerate
	default:
		return BandWeak
	}
}

// DimensionInfo describes a WISCAR dimension for the report.
type DimensionInfo struct {
	Dimension   scoring.Dimension
	Label       string
	Description string
}

var dimensionInfo = []DimensionInfo{
	{scoring.Will, "Will (Motivation)", "Your drive and commitment to pursue IAM"},
	{scoring.Interest, "Interest", "Your curiosity and passion for IAM topics"},
	{scoring.Skill, "Current Skills", "Your existing technical knowledge and abilities"},
	{scoring.CognitiveReadiness, "Cognitive Readiness", "Your analytical and problem-solving aptitude"},
	{scoring.AbilityToLearn, "Learning Ability", "Your capacity to acquire new skills"},
	{scoring.RealWorldAlignment, "Role Alignment", "How well you match real IAM job requirements"},
}

// Dimensions returns the dimension metadata in report order.
func Dimensions() []DimensionInfo {
	out := make([]DimensionInfo, len(dimensionInfo))
	copy(out, dimensionInfo)
	return out
}

// CareerMatch is a role with its match score.
type CareerMatch struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Score       int    `json:"score" yaml:"score"`
}

// CareerMatches scores each related role from the vector.
func CareerMatches(v scoring.Vector) []CareerMatch {
	return []CareerMatch{
		{"IAM Specialist", "Manages user identities and access policies", v.Overall},
		{"Cybersecurity Analyst", "Monitors threats and enforces security", v.CognitiveReadiness},
		{"Cloud Security Engineer", "Secures cloud infrastructure and IAM", v.Skill},
		{"Compliance Officer", "Ensures regulatory compliance", v.Will},
	}
}

// Resource is a suggested learning resource.
type Resource struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// Resources returns the suggested learning resources.
func Resources() []Resource {
	return []Resource{
		{"CompTIA Security+", "Foundation cybersecurity certification"},
		{"Azure AD Training", "Hands-on identity management"},
	}
}
