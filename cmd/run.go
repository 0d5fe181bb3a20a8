package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/iamfit/internal/app"
)

// runApp opens the environment, builds dependencies, and launches the TUI at
// route.
func runApp(cmd *cobra.Command, route app.Route) error {
	ctx := cmd.Context()
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	format, err := e.exportFormat()
	if err != nil {
		return err
	}

	opts := app.Options{
		Route:        route,
		EventRepo:    e.store.EventRepo(),
		SlotRepo:     e.store.SlotRepo(),
		ExportDir:    e.cfg.Export.Dir,
		ExportFormat: format,
		Logger:       e.logger,
	}

	svc, err := e.coach(ctx)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "LLM provider not configured:", err)
		fmt.Fprintln(cmd.ErrOrStderr(), "The career coach will be unavailable.")
	}
	opts.Coach = svc

	return app.Run(ctx, opts)
}
