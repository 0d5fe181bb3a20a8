package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/iamfit/internal/app"
	"github.com/abhisek/iamfit/internal/assessment"
	"github.com/abhisek/iamfit/internal/handoff"
	"github.com/abhisek/iamfit/internal/report"
)

const noDataText = "No assessment data found. Please complete the assessment first."

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show the results of the last assessment",
	Long: `Show the results of the last completed assessment.

In a terminal the results screen is shown. With --plain, or when stdout is
not a terminal, the report is printed as text. --file prints a previously
exported JSON report instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		file, _ := cmd.Flags().GetString("file")
		out := cmd.OutOrStdout()

		if file != "" {
			r, err := report.Load(file)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Report from %s (rubric %s)\n\n",
				r.Timestamp.Local().Format("2006-01-02 15:04"), r.RubricVersion)
			printResult(out, r.Scores, r.Recommendation)
			return nil
		}

		if !plain && isTerminal(os.Stdout) {
			return runApp(cmd, app.RouteResults)
		}

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		result, err := lastResult(cmd.Context(), e)
		if errors.Is(err, handoff.ErrNoData) {
			fmt.Fprintln(out, noDataText)
			return nil
		}
		if err != nil {
			return err
		}
		printResult(out, result.Scores, result.Recommendation)
		return nil
	},
}

func init() {
	resultsCmd.Flags().Bool("plain", false, "Print the results as text instead of the results screen")
	resultsCmd.Flags().String("file", "", "Print an exported JSON report")
}

// lastResult scores the answers saved by the last completed assessment.
func lastResult(ctx context.Context, e *env) (assessment.Result, error) {
	set, err := e.slot().Load(ctx)
	if err != nil {
		return assessment.Result{}, err
	}
	return assessment.Evaluate(nil, set), nil
}
