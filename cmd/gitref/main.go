package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strelow/gitref/internal/catalog"
	"github.com/strelow/gitref/internal/cmd"
	"github.com/strelow/gitref/internal/config"
	"github.com/strelow/gitref/internal/logging"
	"github.com/strelow/gitref/internal/ui"
	"github.com/strelow/gitref/internal/watch"
)

var (
	flagCatalog string
	flagWatch   bool
	flagLogFile string
	flagVerbose bool

	logger = zap.NewNop()
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gitref",
		Short: "gitref - git command reference for the terminal",
		Long:  "gitref browses a catalog of git commands as searchable, filterable cards. Run without arguments for the interactive browser; use list/show/categories when scripting.",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return initLogging()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return runTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().StringVar(&flagCatalog, "catalog", "", "load commands from a YAML file instead of the built-in set")
	root.Flags().BoolVar(&flagWatch, "watch", false, "reload the catalog file when it changes on disk")
	root.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "write logs to this file (default: no logging)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log at debug level")

	root.AddCommand(cmd.ListCmd())
	root.AddCommand(cmd.ShowCmd())
	root.AddCommand(cmd.CategoriesCmd())
	return root
}

func initLogging() error {
	path := flagLogFile
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path = cfg.LogFile
	}
	l, err := logging.Init(path, flagVerbose)
	if err != nil {
		return err
	}
	logger = l
	return nil
}

func runTUI() error {
	if !isInteractiveTerminal(os.Stdin) || !isInteractiveTerminal(os.Stdout) {
		return errors.New("gitref needs an interactive terminal; use 'gitref list' when scripting")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	path := flagCatalog
	if path == "" {
		path = cfg.Catalog
	}
	if flagWatch && path == "" {
		return errors.New("--watch needs --catalog (or a catalog path in the config file)")
	}

	var cat catalog.Catalog
	if path != "" {
		cat, err = catalog.LoadFile(path)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return err
	}
	if cat.HasCategory(catalog.AllCategories) {
		logger.Warn("catalog declares the literal category \"All\"; it cannot be selected separately")
	}

	logger.Info("starting browser",
		zap.Int("commands", len(cat.Commands)),
		zap.String("catalog", catalogSource(path)),
		zap.Bool("watch", flagWatch))

	app := ui.NewApp(cat, logger)
	p := tea.NewProgram(app, tea.WithAltScreen())

	if flagWatch {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() {
			if err := watch.Catalog(ctx, path, logger, func(c catalog.Catalog, reloadErr error) {
				if reloadErr != nil {
					p.Send(ui.CatalogReloadFailedMsg{Err: reloadErr})
					return
				}
				p.Send(ui.CatalogReloadedMsg{Catalog: c})
			}); err != nil {
				logger.Error("watcher failed", zap.Error(err))
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func catalogSource(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	info, err := file.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
