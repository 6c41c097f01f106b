package cmd

import (
	"fmt"
	"sort"

	"github.com/theirongolddev/kitnet/internal/cli"
	"github.com/theirongolddev/kitnet/internal/config"
	"github.com/theirongolddev/kitnet/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [Selection]")
	fmt.Printf("    Construction: %s\n", cfg.Selection.Construction)
	fmt.Printf("    Roof:         %s\n", cfg.Selection.Roof)
	fmt.Printf("    Deck:         %v\n", cfg.Selection.Deck)
	fmt.Printf("    PVC:          %v\n", cfg.Selection.PVC)
	fmt.Printf("    Roofing:      %v\n", cfg.Selection.Roofing)
	fmt.Println()

	fmt.Println("  [Project]")
	catalog := config.CatalogPath(cfg)
	if flagCatalog != "" {
		catalog = flagCatalog
	}
	if catalog == "" {
		catalog = "embedded"
	}
	fmt.Printf("    Catalog: %s\n", catalog)
	if cfg.Project.Model != "" {
		fmt.Printf("    Model:   %s\n", cfg.Project.Model)
	} else {
		fmt.Println("    Model:   from catalog")
	}
	if cfg.Project.LaborCost != nil {
		fmt.Printf("    Labor:   %s\n", cli.FormatBRL(*cfg.Project.LaborCost))
	}
	fmt.Println()

	fmt.Println("  [Viewer]")
	fmt.Printf("    Field of view: %s°\n", cli.FormatDecimal(cfg.Viewer.FOV, 1))
	cache, err := store.Open(store.CachePath())
	if err == nil {
		entries, listErr := cache.Entries()
		_ = cache.Close()
		fmt.Printf("    Bounds cache:  %s\n", store.CachePath())
		if listErr != nil {
			fmt.Printf("      unreadable (%v)\n", listErr)
		}
		for _, line := range cacheLines(entries) {
			fmt.Println("      " + line)
		}
	} else {
		fmt.Printf("    Bounds cache:  unavailable (%v)\n", err)
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Prices]")
	if len(cfg.Prices.Overrides) == 0 {
		fmt.Println("    No overrides")
	} else {
		keys := make([]string, 0, len(cfg.Prices.Overrides))
		for k := range cfg.Prices.Overrides {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			o := cfg.Prices.Overrides[k]
			line := "    " + k + ":"
			if o.UnitPrice != nil {
				line += " preço " + cli.FormatBRL(*o.UnitPrice)
			}
			if o.Quantity != nil {
				line += " qtd " + cli.FormatQty(*o.Quantity)
			}
			fmt.Println(line)
		}
	}
	fmt.Println()

	fmt.Println("  Run `kitnet setup` to reconfigure.")
	return nil
}

// cacheLines describes the cached assets, one per line, after a count line.
func cacheLines(entries []store.Entry) []string {
	lines := []string{cli.FormatNumber(int64(len(entries))) + " modelos em cache"}
	for _, e := range entries {
		line := fmt.Sprintf("%s  %s bytes  tamanho %s",
			e.Path, cli.FormatNumber(e.SizeBytes), formatVec(e.Box.Size()))
		if !e.MeasuredAt.IsZero() {
			line += "  medido em " + e.MeasuredAt.Local().Format("02/01/2006 15:04")
		}
		lines = append(lines, line)
	}
	return lines
}
