package assessment

import "github.com/abhisek/iamfit/internal/catalog"

// Step is one stepper entry, backed by a catalog section.
type Step struct {
	Title     string
	Section   string
	Completed bool
	Current   bool
}

// Progress returns the fraction of the flow reached, counting the current
// question as reached.
func (f *Flow) Progress() float64 {
	if f.Total() == 0 {
		return 0
	}
	return float64(f.index+1) / float64(f.Total())
}

// CurrentStep returns the section index of the current question.
func (f *Flow) CurrentStep() int {
	cur := f.Current().Section
	for i, s := range f.cat.Sections() {
		if s.Name == cur {
			return i
		}
	}
	return 0
}

// Steps returns the stepper state. A step is completed when every question
// of its section lies before the current index; the final step completes on
// the last question.
func (f *Flow) Steps() []Step {
	secs := f.cat.Sections()
	last := lastIndexBySection(f.cat)
	cur := f.CurrentStep()

	steps := make([]Step, len(secs))
	for i, s := range secs {
		completed := f.index > last[s.Name]
		if i == len(secs)-1 {
			completed = f.index >= last[s.Name]
		}
		steps[i] = Step{
			Title:     s.Title,
			Section:   s.Name,
			Completed: completed,
			Current:   i == cur,
		}
	}
	return steps
}

func lastIndexBySection(c *catalog.Catalog) map[string]int {
	last := make(map[string]int)
	for i, q := range c.All() {
		last[q.Section] = i
	}
	return last
}
