package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs all structural checks on a question set and its answer
// key. Returns a combined error describing every problem found, or nil.
func Validate(qs []Question, key map[string]string) error {
	var errs []string

	if len(qs) == 0 {
		errs = append(errs, "no questions")
	}

	ids := make(map[string]Question, len(qs))
	seen := make(map[string]bool)
	prevSection := ""
	for i, q := range qs {
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question %d has empty ID", i))
			continue
		}
		if _, dup := ids[q.ID]; dup {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		ids[q.ID] = q

		if q.Prompt == "" {
			errs = append(errs, fmt.Sprintf("question %q has empty prompt", q.ID))
		}
		if q.Section == "" {
			errs = append(errs, fmt.Sprintf("question %q has empty section", q.ID))
		} else if q.Section != prevSection {
			if seen[q.Section] {
				errs = append(errs, fmt.Sprintf("section %q is not contiguous at question %q", q.Section, q.ID))
			}
			seen[q.Section] = true
			prevSection = q.Section
		}

		switch q.Kind {
		case KindRating:
			if len(q.Options) != RatingScale {
				errs = append(errs, fmt.Sprintf("rating question %q has %d labels, want %d", q.ID, len(q.Options), RatingScale))
			}
		case KindChoice:
			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("choice question %q has no options", q.ID))
			}
		case KindRange:
			if q.Max <= q.Min {
				errs = append(errs, fmt.Sprintf("range question %q has max %d <= min %d", q.ID, q.Max, q.Min))
			}
			if q.Step <= 0 {
				errs = append(errs, fmt.Sprintf("range question %q has non-positive step %d", q.ID, q.Step))
			}
		default:
			errs = append(errs, fmt.Sprintf("question %q has unknown kind %q", q.ID, q.Kind))
		}
	}

	for id, correct := range key {
		q, ok := ids[id]
		if !ok {
			errs = append(errs, fmt.Sprintf("answer key references nonexistent question %q", id))
			continue
		}
		if q.Kind != KindChoice {
			errs = append(errs, fmt.Sprintf("answer key entry %q is not a choice question", id))
			continue
		}
		if !slices.Contains(q.Options, correct) {
			errs = append(errs, fmt.Sprintf("answer key for %q (%q) is not among its options", id, correct))
		}
	}

	if len(errs) > 0 {
		slices.Sort(errs)
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
