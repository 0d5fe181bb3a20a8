// Package handoff carries a completed answer set from the assessment to the
// results view when the two run in separate processes.
package handoff

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhisek/iamfit/internal/answers"
	"github.com/abhisek/iamfit/internal/catalog"
	"github.com/abhisek/iamfit/internal/store"
)

// SlotName is the store slot holding the serialized answer list.
const SlotName = "assessmentAnswers"

// ErrNoData means there is no usable assessment to show. Missing and
// malformed payloads both map to it.
var ErrNoData = errors.New("no assessment data found")

// payloadSchema describes the serialized answer list.
var payloadSchema = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questionId": map[string]any{"type": "string", "minLength": 1},
			"value": map[string]any{
				"oneOf": []any{
					map[string]any{"type": "integer"},
					map[string]any{"type": "string"},
				},
			},
		},
		"required":             []any{"questionId", "value"},
		"additionalProperties": false,
	},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		raw, err := json.Marshal(payloadSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://assessment-answers.json"
		if err := c.AddResource(url, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(url)
	})
	return compiled, compileErr
}

// Encode serializes set as a list of {questionId, value} pairs.
func Encode(set *answers.Set) ([]byte, error) {
	data, err := json.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}
	return data, nil
}

// Decode validates and parses a serialized answer list against the built-in
// catalog. Any defect in data yields ErrNoData.
func Decode(data []byte) (*answers.Set, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrNoData
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	sch, err := schema()
	if err != nil {
		return nil, fmt.Errorf("compile answer schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}

	set := answers.NewSet()
	if err := json.Unmarshal(data, set); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	for a := range set.All() {
		q, ok := catalog.Get(a.QuestionID)
		if !ok {
			return nil, fmt.Errorf("%w: unknown question %q", ErrNoData, a.QuestionID)
		}
		if err := q.Accepts(a.Value); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrNoData, a.QuestionID, err)
		}
	}
	return set, nil
}

// Slot persists the answer list in a named store slot.
type Slot struct {
	repo store.SlotRepo
	name string
}

// NewSlot returns a Slot over repo using SlotName.
func NewSlot(repo store.SlotRepo) *Slot {
	return &Slot{repo: repo, name: SlotName}
}

// Save stores a snapshot of set, replacing any previous one.
func (s *Slot) Save(ctx context.Context, set *answers.Set) error {
	data, err := Encode(set)
	if err != nil {
		return err
	}
	if err := s.repo.Put(ctx, s.name, data); err != nil {
		return fmt.Errorf("save handoff: %w", err)
	}
	return nil
}

// Load returns the stored answer set. A missing or unreadable slot yields
// ErrNoData; other store failures are returned as is.
func (s *Slot) Load(ctx context.Context) (*answers.Set, error) {
	data, err := s.repo.Get(ctx, s.name)
	if err != nil {
		if errors.Is(err, store.ErrSlotNotFound) {
			return nil, ErrNoData
		}
		return nil, fmt.Errorf("load handoff: %w", err)
	}
	return Decode(data)
}

// Clear removes the stored answer set.
func (s *Slot) Clear(ctx context.Context) error {
	if err := s.repo.Delete(ctx, s.name); err != nil {
		return fmt.Errorf("clear handoff: %w", err)
	}
	return nil
}
