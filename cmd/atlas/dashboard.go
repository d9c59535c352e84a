package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/atlas/internal/config"
	"github.com/alexisbeaulieu97/atlas/internal/logger"
	"github.com/alexisbeaulieu97/atlas/internal/navigation"
	"github.com/alexisbeaulieu97/atlas/internal/telemetry"
	"github.com/alexisbeaulieu97/atlas/internal/tui/dashboard"
	"github.com/alexisbeaulieu97/atlas/internal/widgets"
)

var errNotTerminal = errors.New("stdout is not a terminal")

type dashboardOptions struct {
	resume    bool
	noWidgets bool
}

func (o *dashboardOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.resume, "resume", false, "Start the vision sections on the last viewed section")
	cmd.Flags().BoolVar(&o.noWidgets, "no-widgets", false, "Skip live widget sources such as the git repository")
}

func newDashboardCmd(app *AppContext) *cobra.Command {
	opts := &dashboardOptions{}

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Launch the interactive dashboard",
		Long:  `Launch the interactive TUI dashboard. Logs go to logging.file while it runs.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, app, opts)
		},
	}
	opts.bind(cmd)

	return cmd
}

func runDashboard(cmd *cobra.Command, app *AppContext, opts *dashboardOptions) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return newCommandError("start the dashboard", "interactive terminal required", errNotTerminal,
			"Run atlas from a terminal, or use 'atlas panels list' for scripted output.")
	}

	cfg, err := app.Config()
	if err != nil {
		return err
	}

	logFile, err := logger.OpenFile(cfg.Logging.File)
	if err != nil {
		return newCommandError("open log file", cfg.Logging.File, err, "Set logging.file to a writable location.")
	}
	defer logFile.Close()

	log, err := app.Logger(logFile, cfg.Logging.HumanReadable)
	if err != nil {
		return err
	}
	log = log.With("command", "dashboard")

	ctx := cmd.Context()
	store, err := app.OpenStore(ctx)
	if err != nil {
		log.Error(err, "failed to open store")
		return err
	}
	defer store.Close()

	deps := dashboard.Deps{
		Config:       cfg,
		Logger:       log,
		Store:        store,
		Conversation: loadConversation(ctx, store, cfg, log),
	}
	if opts.resume {
		deps.InitialSection = resumeSection(ctx, store, cfg, log)
	}
	if !opts.noWidgets {
		deps.Widgets = func(ctx context.Context) []widgets.Tile {
			return widgets.Load(ctx, cfg.Widgets, log)
		}
	}

	provider, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		log.Error(err, "telemetry disabled")
		provider = telemetry.Disabled()
	}
	defer shutdownTelemetry(provider, log)
	if provider.Enabled() {
		deps.Tracer = provider.Tracer()
	}

	m, err := dashboard.New(deps)
	if err != nil {
		log.Error(err, "failed to build dashboard")
		return fmt.Errorf("failed to build dashboard: %w", err)
	}
	defer m.Close()

	log.Info("launching dashboard")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error(err, "dashboard execution failed")
		return fmt.Errorf("failed to run dashboard: %w", err)
	}

	saveConversation(ctx, store, m.Conversation(), log)
	log.Info("dashboard closed")
	return nil
}

// sectionIndexLoader is the read side of the section store.
type sectionIndexLoader interface {
	LoadSectionIndex(ctx context.Context) (int, bool, error)
}

// resumeSection reads the stored section index once. Missing, unreadable or
// out-of-range values fall back to the first section.
func resumeSection(ctx context.Context, store sectionIndexLoader, cfg *config.Config, log *logger.Logger) navigation.Panel {
	if len(cfg.Sections) == 0 {
		return ""
	}
	first := navigation.Panel(cfg.Sections[0].ID)

	idx, ok, err := store.LoadSectionIndex(ctx)
	if err != nil {
		log.Error(err, "failed to read stored section")
		return first
	}
	if !ok || idx >= len(cfg.Sections) {
		return first
	}
	return navigation.Panel(cfg.Sections[idx].ID)
}

func shutdownTelemetry(provider *telemetry.Provider, log *logger.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := provider.Shutdown(ctx); err != nil {
		log.Error(err, "telemetry shutdown failed")
	}
}

func isTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
