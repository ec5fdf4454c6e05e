package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/napolitain/idle-empire/internal/tui"
)

func newWatchCmd() *cobra.Command {
	var (
		f        runFlags
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Run the simulation live in a terminal dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Log lines would tear the dashboard.
			slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))

			s, err := newSession(f)
			if err != nil {
				return err
			}
			defer s.Close()

			final, err := tea.NewProgram(tui.New(s.svc, s.emp, interval), tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("dashboard: %w", err)
			}
			if m, ok := final.(tui.Model); ok && m.Err() != nil {
				return m.Err()
			}

			if f.dryRun {
				return nil
			}
			if err := s.save(); err != nil {
				return err
			}
			successColor.Printf("✓ Saved %s\n", statePath)
			return nil
		},
	}

	f.register(cmd)
	cmd.Flags().DurationVar(&interval, "interval", cfg.TickInterval, "Real time between ticks")
	return cmd
}
