// Package assessment drives one pass through the question catalog.
package assessment

import (
	"errors"
	"fmt"

	"github.com/abhisek/iamfit/internal/answers"
	"github.com/abhisek/iamfit/internal/catalog"
)

// ErrUnanswered is returned when advancing past a question with no answer.
var ErrUnanswered = errors.New("please answer the current question before proceeding")

// Flow is the stepper state for one assessment. It owns the answer set until
// the flow completes.
type Flow struct {
	cat   *catalog.Catalog
	set   *answers.Set
	index int
	done  bool
}

// NewFlow starts a flow over c. A nil catalog means the built-in one.
func NewFlow(c *catalog.Catalog) *Flow {
	if c == nil {
		c = catalog.Default()
	}
	return &Flow{cat: c, set: answers.NewSet()}
}

// Catalog returns the catalog the flow walks.
func (f *Flow) Catalog() *catalog.Catalog { return f.cat }

// Current returns the question at the current index.
func (f *Flow) Current() catalog.Question { return f.cat.At(f.index) }

// Index returns the zero-based position of the current question.
func (f *Flow) Index() int { return f.index }

// Total returns the number of questions.
func (f *Flow) Total() int { return f.cat.Len() }

// IsFirst reports whether the current question is the first.
func (f *Flow) IsFirst() bool { return f.index == 0 }

// IsLast reports whether the current question is the last.
func (f *Flow) IsLast() bool { return f.index == f.cat.Len()-1 }

// Done reports whether the flow has been completed.
func (f *Flow) Done() bool { return f.done }

// Answer validates v against the current question and records it.
func (f *Flow) Answer(v answers.Value) error {
	q := f.Current()
	if err := q.Accepts(v); err != nil {
		return fmt.Errorf("answer %s: %w", q.ID, err)
	}
	f.set.Record(q.ID, v)
	return nil
}

// CurrentAnswer returns the recorded answer for the current question.
func (f *Flow) CurrentAnswer() (answers.Value, bool) {
	a, ok := f.set.Get(f.Current().ID)
	return a.Value, ok
}

// Next advances to the following question. On the last question it marks
// the flow complete and returns done=true. It returns ErrUnanswered when the
// current question has no answer.
func (f *Flow) Next() (done bool, err error) {
	if _, ok := f.set.Get(f.Current().ID); !ok {
		return false, ErrUnanswered
	}
	if f.IsLast() {
		f.done = true
		return true, nil
	}
	f.index++
	return false, nil
}

// Prev moves back one question. It returns false on the first question.
func (f *Flow) Prev() bool {
	if f.index == 0 {
		return false
	}
	f.index--
	return true
}

// Answers returns a snapshot of the answers recorded so far.
func (f *Flow) Answers() *answers.Set { return f.set.Clone() }
