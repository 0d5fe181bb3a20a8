package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/iamfit/internal/handoff"
	"github.com/abhisek/iamfit/internal/report"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the last assessment as a report file",
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")
		path, _ := cmd.Flags().GetString("out")

		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer e.Close()

		if formatName == "" {
			formatName = e.cfg.Export.Format
		}
		format, err := report.ParseFormat(formatName)
		if err != nil {
			return err
		}
		if path == "" {
			path = filepath.Join(e.cfg.Export.Dir, format.Filename())
		}

		result, err := lastResult(cmd.Context(), e)
		if errors.Is(err, handoff.ErrNoData) {
			return errors.New(noDataText)
		}
		if err != nil {
			return err
		}

		if err := report.Export(report.New(result.Scores, time.Now()), format, path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Results downloaded successfully!", path)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "", "Report format: json, yaml, markdown or html (default from config, else json)")
	exportCmd.Flags().StringP("out", "o", "", "Output file (default <export.dir>/iam-assessment-results.<ext>)")
}
