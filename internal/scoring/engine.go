package scoring

import (
	"math"
	"strings"

	"github.com/abhisek/iamfit/internal/answers"
	"github.com/abhisek/iamfit/internal/catalog"
)

// Question ID prefixes that select each scoring group.
const (
	PrefixInterest    = "interest-"
	PrefixPersonality = "personality-"
	PrefixKnowledge   = "technical-"
	PrefixLearning    = "learning-"
)

// Engine scores answer sets against a catalog.
type Engine struct {
	Catalog *catalog.Catalog
}

// NewEngine returns an Engine over c. A nil catalog means the built-in one.
func NewEngine(c *catalog.Catalog) *Engine {
	if c == nil {
		c = catalog.Default()
	}
	return &Engine{Catalog: c}
}

// Score computes the score vector for set using the built-in catalog.
func Score(set *answers.Set) Vector {
	return NewEngine(nil).Score(set)
}

// Score computes the score vector for set. It never fails: an empty group
// scores 0, and answers of the wrong shape are ignored.
func (e *Engine) Score(set *answers.Set) Vector {
	cat := e.Catalog
	if cat == nil {
		cat = catalog.Default()
	}
	key := cat.AnswerKey()

	var interest, personality, learning mean
	correct := 0

	for a := range set.All() {
		id := a.QuestionID
		switch {
		case strings.HasPrefix(id, PrefixInterest):
			if n, ok := a.Value.AsInt(); ok {
				interest.add(float64(n))
			}
		case strings.HasPrefix(id, PrefixPersonality):
			if n, ok := a.Value.AsInt(); ok {
				personality.add(float64(n))
			}
		case strings.HasPrefix(id, PrefixKnowledge):
			want, scored := key[id]
			if got, ok := a.Value.AsText(); scored && ok && got == want {
				correct++
			}
		case strings.HasPrefix(id, PrefixLearning):
			n, ok := a.Value.AsInt()
			if !ok {
				continue
			}
			limit := float64(catalog.RatingScale)
			if q, found := cat.Get(id); found && q.Kind == catalog.KindRange {
				limit = float64(q.Max)
			}
			if limit > 0 {
				learning.add(float64(n) / limit)
			}
		}
	}

	var v Vector
	v.Interest = normalize(interest.value() / catalog.RatingScale * 100)
	v.Will = v.Interest
	v.CognitiveReadiness = normalize(personality.value() / catalog.RatingScale * 100)
	if len(key) > 0 {
		v.Skill = normalize(float64(correct) / float64(len(key)) * 100)
	}
	v.AbilityToLearn = normalize(learning.value() * 100)
	v.RealWorldAlignment = normalize(float64(v.Interest+v.Skill+v.CognitiveReadiness) / 3)
	v.Overall = normalize(float64(
		v.Will+v.Interest+v.Skill+v.CognitiveReadiness+v.AbilityToLearn+v.RealWorldAlignment,
	) / 6)
	return v
}

// mean accumulates a running average; an empty mean is 0.
type mean struct {
	sum float64
	n   int
}

func (m *mean) add(x float64) {
	m.sum += x
	m.n++
}

func (m mean) value() float64 {
	if m.n == 0 {
		return 0
	}
	return m.sum / float64(m.n)
}

// normalize rounds half-up and clamps to [0, 100].
func normalize(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	r := math.Floor(x + 0.5)
	switch {
	case r < 0:
		return 0
	case r > 100:
		return 100
	default:
		return int(r)
	}
}
