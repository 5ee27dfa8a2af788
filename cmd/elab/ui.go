package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/esportlab/elab/pkg/config"
	"github.com/esportlab/elab/pkg/jobs"
	"github.com/esportlab/elab/pkg/ui"
	"github.com/esportlab/elab/pkg/ui/common"
	"github.com/spf13/cobra"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the calendar UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()
		cfg := config.FromContext(ctx)

		// Bubble Tea renders through the Termenv default output, so styles
		// must come from the same renderer.
		re := lipgloss.DefaultRenderer()
		c := common.NewCommon(ctx, re, 0, 0)
		m := ui.New(c)

		sched := jobs.NewScheduler(ctx)
		if _, err := sched.Add(ctx, cfg.Jobs.OverviewRefresh, jobs.OverviewRefresh); err != nil {
			return err
		}
		sched.Start()
		defer sched.Shutdown()

		p := tea.NewProgram(m,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		)

		_, err := p.Run()
		return err
	},
}
