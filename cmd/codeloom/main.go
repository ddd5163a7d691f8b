package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/codeloom-ai/codeloom/src"
	"github.com/codeloom-ai/codeloom/src/config"
)

var (
	logger  *zap.Logger
	store   *config.Store
	verbose bool
	outDir  string
)

var rootCmd = &cobra.Command{
	Use:   "codeloom",
	Short: "Weave AI chat responses into project trees on disk",
	Long: `codeloom talks to an AI provider, pulls every fenced code block out of
the response, names the files, and writes them as a ready-to-run project
directory, optionally zipped.

Run with no arguments for the interactive TUI. Use "generate" for one-shot
project creation from a script or pipeline.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		store, err = config.NewDefaultStore()
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func runTUI(ctx context.Context) error {
	if len(store.Configured()) == 0 {
		fmt.Println("🧶 No API keys configured yet, starting setup.")
		if err := runSetup(); err != nil {
			return err
		}
	}

	startDir := outDir
	if startDir == "" {
		startDir, _ = os.Getwd()
	}

	m := src.NewModel(ctx, store, startDir, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	m.Program = p

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outDir, "out", "o", "", "directory to create projects under (default: cwd)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "❌", err)
		os.Exit(1)
	}
}
