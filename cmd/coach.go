package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/iamfit/internal/coach"
	"github.com/abhisek/iamfit/internal/handoff"
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Ask the career coach for a study plan based on the last assessment",
	Long: `Generate a personalized study plan from the last assessment's scores.

Needs an LLM provider: set llm.provider and its api_key in the config file,
or export ANTHROPIC_API_KEY, OPENAI_API_KEY, GEMINI_API_KEY or
OPENROUTER_API_KEY.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		svc, err := e.coach(ctx)
		if err != nil {
			return fmt.Errorf("LLM provider: %w", err)
		}
		if svc == nil {
			return errors.New("no LLM provider configured; see `iamfit coach --help`")
		}

		result, err := lastResult(ctx, e)
		if errors.Is(err, handoff.ErrNoData) {
			return errors.New(noDataText)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.ErrOrStderr(), "Asking the coach...")
		plan, err := svc.Plan(ctx, coach.InputFor(result))
		if err != nil {
			return err
		}
		printPlan(cmd.OutOrStdout(), plan)
		return nil
	},
}
