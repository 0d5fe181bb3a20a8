package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/iamfit/internal/catalog"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the assessment questions (optionally filtered by section)",
	RunE: func(cmd *cobra.Command, args []string) error {
		section, _ := cmd.Flags().GetString("section")
		out := cmd.OutOrStdout()

		qs, err := questionsIn(catalog.Default(), section)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%-14s  %-22s  %-7s  %s\n", "ID", "Section", "Kind", "Prompt")
		fmt.Fprintln(out, strings.Repeat("─", 110))
		for _, q := range qs {
			prompt := q.Prompt
			if len(prompt) > 60 {
				prompt = prompt[:57] + "..."
			}
			fmt.Fprintf(out, "%-14s  %-22s  %-7s  %s\n", q.ID, q.Section, q.Kind, prompt)
		}

		fmt.Fprintf(out, "\n%d questions\n", len(qs))
		return nil
	},
}

func init() {
	questionsCmd.Flags().String("section", "", "Filter by section name or step title (e.g. Technical)")
}

// questionsIn returns the questions of the section whose name or short title
// matches name, ignoring case. An empty name returns every question.
func questionsIn(c *catalog.Catalog, name string) ([]catalog.Question, error) {
	if name == "" {
		return c.All(), nil
	}
	for _, s := range c.Sections() {
		if strings.EqualFold(s.Name, name) || strings.EqualFold(s.Title, name) {
			return c.InSection(s.Name), nil
		}
	}
	var titles []string
	for _, s := range c.Sections() {
		titles = append(titles, s.Title)
	}
	return nil, fmt.Errorf("no section %q: use one of %s", name, strings.Join(titles, ", "))
}
