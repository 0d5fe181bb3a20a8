// Package answers holds the answers gathered during one assessment pass.
package answers

import (
	"encoding/json"
	"iter"
	"slices"
)

// Answer pairs a question identifier with its submitted value.
type Answer struct {
	QuestionID string `json:"questionId"`
	Value      Value  `json:"value"`
}

// Set is an ordered collection of answers with at most one answer per
// question. The zero Set is empty and ready to use.
type Set struct {
	items []Answer
	index map[string]int
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{}
}

// Record inserts the answer for id, or replaces the existing one in place.
// A replaced answer keeps its original position.
func (s *Set) Record(id string, v Value) {
	if s.index == nil {
		s.index = make(map[string]int)
	}
	if i, ok := s.index[id]; ok {
		s.items[i].Value = v
		return
	}
	s.index[id] = len(s.items)
	s.items = append(s.items, Answer{QuestionID: id, Value: v})
}

// Get returns the answer recorded for id. The boolean is false when the
// question is unanswered.
func (s *Set) Get(id string) (Answer, bool) {
	if s == nil {
		return Answer{}, false
	}
	i, ok := s.index[id]
	if !ok {
		return Answer{}, false
	}
	return s.items[i], true
}

// All yields every recorded answer in recording order. The sequence can be
// ranged over any number of times.
func (s *Set) All() iter.Seq[Answer] {
	return func(yield func(Answer) bool) {
		if s == nil {
			return
		}
		for _, a := range s.items {
			if !yield(a) {
				return
			}
		}
	}
}

// Len returns the number of answered questions.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Slice returns a copy of the answers in recording order.
func (s *Set) Slice() []Answer {
	if s == nil {
		return nil
	}
	return slices.Clone(s.items)
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	c := NewSet()
	for a := range s.All() {
		c.Record(a.QuestionID, a.Value)
	}
	return c
}

// FromSlice builds a Set from answers in order. Later duplicates replace
// earlier ones.
func FromSlice(list []Answer) *Set {
	s := NewSet()
	for _, a := range list {
		s.Record(a.QuestionID, a.Value)
	}
	return s
}

// MarshalJSON encodes the set as a list of {questionId, value} pairs.
func (s *Set) MarshalJSON() ([]byte, error) {
	items := s.Slice()
	if items == nil {
		items = []Answer{}
	}
	return json.Marshal(items)
}

// UnmarshalJSON decodes a list of {questionId, value} pairs.
func (s *Set) UnmarshalJSON(data []byte) error {
	var list []Answer
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = *FromSlice(list)
	return nil
}
