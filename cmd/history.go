package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/iamfit/internal/answers"
	"github.com/abhisek/iamfit/internal/catalog"
	"github.com/abhisek/iamfit/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		session, _ := cmd.Flags().GetString("session")
		out := cmd.OutOrStdout()

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		if session != "" {
			rows, err := e.store.EventRepo().AnswersForSession(ctx, session)
			if err != nil {
				return fmt.Errorf("query answers: %w", err)
			}
			if len(rows) == 0 {
				return fmt.Errorf("no answers recorded for session %q", session)
			}
			printAnswers(cmd, rows)
			return nil
		}

		events, err := e.store.EventRepo().QueryAssessments(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query assessments: %w", err)
		}
		if len(events) == 0 {
			fmt.Fprintln(out, "No assessments recorded yet.")
			return nil
		}

		fmt.Fprintf(out, "%-16s  %7s  %-12s  %9s  %8s  %s\n",
			"Date", "Overall", "Category", "Questions", "Duration", "Session")
		fmt.Fprintln(out, strings.Repeat("─", 96))
		for _, ev := range events {
			fmt.Fprintf(out, "%-16s  %s     %-12s  %9d  %8s  %s\n",
				ev.Timestamp.Local().Format("2006-01-02 15:04"),
				scoreText(ev.Overall),
				ev.Category,
				ev.QuestionCount,
				(time.Duration(ev.DurationSecs) * time.Second).String(),
				ev.SessionID,
			)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "Number of assessments to show")
	historyCmd.Flags().String("session", "", "Show the answers of one assessment")
}

func printAnswers(cmd *cobra.Command, rows []store.AnswerEvent) {
	out := cmd.OutOrStdout()
	for _, a := range rows {
		mark := " "
		if a.Correct != nil {
			mark = bandColor(0).Sprint("✗")
			if *a.Correct {
				mark = bandColor(100).Sprint("✓")
			}
		}
		fmt.Fprintf(out, "%s %-14s  %s\n", mark, a.QuestionID, answerLabel(a))
	}
}

// answerLabel shows rating answers with their scale label.
func answerLabel(a store.AnswerEvent) string {
	q, ok := catalog.Get(a.QuestionID)
	if !ok || q.Kind == catalog.KindChoice {
		return a.Value
	}
	n, err := strconv.Atoi(a.Value)
	if err != nil {
		return a.Value
	}
	if q.Kind == catalog.KindRating {
		return fmt.Sprintf("%d (%s)", n, q.Label(answers.Int(n)))
	}
	return q.Label(answers.Int(n))
}
