// Package catalog defines the fixed set of assessment questions.
package catalog

import (
	"fmt"
	"slices"

	"github.com/abhisek/iamfit/internal/answers"
)

// Kind is the answer type a question expects.
type Kind string

const (
	KindRating Kind = "rating" // five ordered labels, answered 1..5
	KindChoice Kind = "choice" // one option text
	KindRange  Kind = "range"  // integer within Min..Max on Step
)

// RatingScale is the number of labels on a rating question.
const RatingScale = 5

// Question is an immutable question definition.
type Question struct {
	ID      string
	Section string
	Kind    Kind
	Prompt  string
	Hint    string

	// Options holds the ordered labels of a rating question or the options of
	// a choice question.
	Options []string

	// Range parameters.
	Min  int
	Max  int
	Step int
	Unit string
}

// Accepts reports whether v is a well-formed answer for q.
func (q Question) Accepts(v answers.Value) error {
	switch q.Kind {
	case KindRating:
		n, ok := v.AsInt()
		if !ok {
			return fmt.Errorf("question %q expects a rating", q.ID)
		}
		if n < 1 || n > len(q.Options) {
			return fmt.Errorf("question %q: rating %d out of range 1..%d", q.ID, n, len(q.Options))
		}
	case KindRange:
		n, ok := v.AsInt()
		if !ok {
			return fmt.Errorf("question %q expects a number", q.ID)
		}
		if n < q.Min || n > q.Max {
			return fmt.Errorf("question %q: %d out of range %d..%d", q.ID, n, q.Min, q.Max)
		}
		if (n-q.Min)%q.Step != 0 {
			return fmt.Errorf("question %q: %d is not a multiple of step %d", q.ID, n, q.Step)
		}
	case KindChoice:
		s, ok := v.AsText()
		if !ok {
			return fmt.Errorf("question %q expects an option", q.ID)
		}
		if !slices.Contains(q.Options, s) {
			return fmt.Errorf("question %q: %q is not an option", q.ID, s)
		}
	default:
		return fmt.Errorf("question %q has unknown kind %q", q.ID, q.Kind)
	}
	return nil
}

// Label returns the display text for an answer to q.
func (q Question) Label(v answers.Value) string {
	if q.Kind == KindRating {
		if n, ok := v.AsInt(); ok && n >= 1 && n <= len(q.Options) {
			return q.Options[n-1]
		}
	}
	if q.Kind == KindRange && q.Unit != "" {
		return v.String() + " " + q.Unit
	}
	return v.String()
}

// MaxValue is the largest integer answer q accepts, or 0 for choice questions.
func (q Question) MaxValue() int {
	switch q.Kind {
	case KindRating:
		return RatingScale
	case KindRange:
		return q.Max
	default:
		return 0
	}
}

// Section is a named group of consecutive questions.
type Section struct {
	Name  string
	Title string // short stepper title
}
