package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/kitnet/internal/config"
	"github.com/theirongolddev/kitnet/internal/tui"
	"github.com/theirongolddev/kitnet/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	p, err := loadPage(cmd)
	if err != nil {
		return err
	}
	cfg := p.cfg
	theme.SetActive(cfg.Appearance.Theme)

	vals := tui.SetupValuesFromConfig(cfg)
	if err := tui.NewSetupForm(p.cat, &vals).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup cancelled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	vals.Apply(&cfg)
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.ConfigPath())
	fmt.Println("  Run `kitnet setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
