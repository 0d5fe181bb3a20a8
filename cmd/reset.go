package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all assessment history, saved answers and LLM logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		out := cmd.OutOrStdout()

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		ctx := cmd.Context()
		if !yes {
			latest, err := e.store.EventRepo().LatestAssessment(ctx)
			if err != nil {
				return fmt.Errorf("query latest assessment: %w", err)
			}
			if latest != nil {
				fmt.Fprintf(out, "Last assessment: %s (overall %d%%)\n",
					latest.Timestamp.Local().Format("2006-01-02 15:04"), latest.Overall)
			}
			fmt.Fprint(out, "Delete all stored data? [y/N] ")
			sc := bufio.NewScanner(cmd.InOrStdin())
			if !sc.Scan() || !strings.EqualFold(strings.TrimSpace(sc.Text()), "y") {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		if err := e.store.Reset(ctx); err != nil {
			return err
		}
		e.logger.Info("store reset")
		fmt.Fprintln(out, "All data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}
