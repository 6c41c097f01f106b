package cmd

import (
	"fmt"

	"github.com/theirongolddev/kitnet/internal/tui"
	"github.com/theirongolddev/kitnet/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive budget page",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Progress lines would tear the alt screen.
	flagQuiet = true

	p, err := loadPage(cmd)
	if err != nil {
		return err
	}
	theme.SetActive(p.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(p.cat, p.sel, tui.Options{
		ModelPath: p.cat.Project.ModelPath,
		Camera:    camera(p.cfg),
		NoCache:   flagNoCache,
		Warnings:  p.res.Warnings,
	})
	prog := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
