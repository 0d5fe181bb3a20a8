package catalog

import (
	"fmt"
	"maps"
	"slices"
)

// Catalog is an ordered, validated set of questions with an answer key for
// the knowledge questions.
type Catalog struct {
	questions []Question
	sections  []Section
	byID      map[string]int
	key       map[string]string
}

// New validates the questions and builds a Catalog. Sections lists the step
// titles; a section used by a question but missing from sections gets its
// name as title.
func New(qs []Question, secs []Section, key map[string]string) (*Catalog, error) {
	if err := Validate(qs, key); err != nil {
		return nil, err
	}

	titles := make(map[string]string, len(secs))
	for _, s := range secs {
		titles[s.Name] = s.Title
	}

	c := &Catalog{
		questions: make([]Question, len(qs)),
		byID:      make(map[string]int, len(qs)),
		key:       maps.Clone(key),
	}
	for i, q := range qs {
		q.Options = slices.Clone(q.Options)
		c.questions[i] = q
		c.byID[q.ID] = i
		if len(c.sections) == 0 || c.sections[len(c.sections)-1].Name != q.Section {
			title := titles[q.Section]
			if title == "" {
				title = q.Section
			}
			c.sections = append(c.sections, Section{Name: q.Section, Title: title})
		}
	}
	if c.key == nil {
		c.key = map[string]string{}
	}
	return c, nil
}

// All returns the questions in order. The slice is a copy.
func (c *Catalog) All() []Question {
	return slices.Clone(c.questions)
}

// Len returns the number of questions.
func (c *Catalog) Len() int { return len(c.questions) }

// At returns the question at position i.
func (c *Catalog) At(i int) Question { return c.questions[i] }

// Get returns the question with the given ID.
func (c *Catalog) Get(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// Sections returns the distinct sections in question order.
func (c *Catalog) Sections() []Section {
	return slices.Clone(c.sections)
}

// InSection returns the questions of the named section in order.
func (c *Catalog) InSection(name string) []Question {
	var out []Question
	for _, q := range c.questions {
		if q.Section == name {
			out = append(out, q)
		}
	}
	return out
}

// AnswerKey returns the correct option for each knowledge question.
func (c *Catalog) AnswerKey() map[string]string {
	return maps.Clone(c.key)
}

// defaultCatalog is built once at package init.
var defaultCatalog *Catalog

func init() {
	c, err := New(questions, sections, answerKey)
	if err != nil {
		panic(fmt.Sprintf("catalog: invalid question set: %v", err))
	}
	defaultCatalog = c
}

// Default returns the built-in catalog.
func Default() *Catalog { return defaultCatalog }

// All returns the built-in questions in order.
func All() []Question { return defaultCatalog.All() }

// Get looks up a built-in question by ID.
func Get(id string) (Question, bool) { return defaultCatalog.Get(id) }

// Sections returns the built-in sections.
func Sections() []Section { return defaultCatalog.Sections() }

// AnswerKey returns the built-in answer key.
func AnswerKey() map[string]string { return defaultCatalog.AnswerKey() }
