package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/iamfit/internal/coach"
	"github.com/abhisek/iamfit/internal/config"
	"github.com/abhisek/iamfit/internal/handoff"
	"github.com/abhisek/iamfit/internal/llm"
	"github.com/abhisek/iamfit/internal/logging"
	"github.com/abhisek/iamfit/internal/report"
	"github.com/abhisek/iamfit/internal/store"
)

// env bundles what every command needs: settings, the log file and the store.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *store.Store
}

// openEnv loads settings, opens the log file and the store. The caller must
// Close it.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}

	logPath := cfg.Log.File
	if logPath == "" {
		if logPath, err = logging.DefaultPath(); err != nil {
			return nil, fmt.Errorf("resolve log path: %w", err)
		}
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, logPath)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	logger.Debug("environment ready",
		zap.String("command", cmd.CommandPath()),
		zap.String("db", dbPath))
	return &env{cfg: cfg, logger: logger, store: st}, nil
}

func (e *env) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("close store", zap.Error(err))
	}
	_ = e.logger.Sync()
}

func (e *env) slot() *handoff.Slot {
	return handoff.NewSlot(e.store.SlotRepo())
}

func (e *env) exportFormat() (report.Format, error) {
	return report.ParseFormat(e.cfg.Export.Format)
}

// coach builds the career coach. It returns (nil, nil) when no LLM provider
// is configured.
func (e *env) coach(ctx context.Context) (*coach.Service, error) {
	llmCfg, ok := e.cfg.LLMSettings()
	if !ok {
		return nil, nil
	}
	provider, err := llm.NewProvider(ctx, llmCfg, e.store.EventRepo(), e.logger.Named("llm"))
	if err != nil {
		return nil, err
	}
	e.logger.Info("llm provider ready",
		zap.String("provider", llmCfg.Provider),
		zap.String("model", provider.ModelID()))
	return coach.NewService(provider, coach.DefaultConfig(), e.logger.Named("coach")), nil
}
