package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/kitnet/internal/cli"
	"github.com/theirongolddev/kitnet/internal/model"
	"github.com/theirongolddev/kitnet/internal/pipeline"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Cost summary for the selected options",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	p, err := loadPage(cmd)
	if err != nil {
		return err
	}
	printSummary(p)
	return nil
}

func printSummary(p *page) {
	bd := pipeline.Aggregate(p.cat, p.sel)

	fmt.Println(cli.RenderSection("Resumo do Orçamento"))
	fmt.Println()

	structure := categoryLabel(p.cat, string(p.sel.Construction))
	roof := categoryLabel(p.cat, string(p.sel.Roof))
	fmt.Println("  Tipo de Construção: " + structure)
	fmt.Println("  Tipo de Cobertura:  " + roof)

	toggles := make([]string, 0, len(model.AddOns))
	for _, a := range model.AddOns {
		on := p.sel.Enabled(a)
		label := pipeline.ToggleLabel(p.cat, a, on)
		if on {
			label = "[x] " + label
		} else {
			label = "[ ] " + label
		}
		toggles = append(toggles, label)
	}
	fmt.Println("  Opções Adicionais:  " + strings.Join(toggles, "  "))
	fmt.Println()

	rows := [][]string{
		{"Total Materiais (" + structure + ")", cli.FormatBRL(bd.Structure.Total)},
		{"Total " + roof, cli.FormatBRL(bd.Roof.Total)},
	}
	for _, ct := range bd.AddOns {
		rows = append(rows, []string{"Total " + ct.Label, cli.FormatBRL(ct.Total)})
	}
	rows = append(rows,
		[]string{pipeline.LabelLabor, cli.FormatBRL(bd.Labor)},
		[]string{"---"},
		[]string{"Custo Total do Projeto", cli.FormatBRL(bd.GrandTotal)},
	)
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Item", "Valor"},
		Rows:    rows,
	}))
	fmt.Println()

	points := pipeline.Chart(bd)
	if len(points) > 0 {
		fmt.Println(cli.RenderSection("Composição do Custo"))
		fmt.Println()

		labelW := 0
		maxVal := 0.0
		for _, pt := range points {
			labelW = max(labelW, lipgloss.Width(pt.Label))
			maxVal = max(maxVal, pt.Value)
		}
		barW := p.width - labelW - 20
		barW = max(10, min(barW, 50))
		for _, pt := range points {
			fmt.Println(cli.RenderHorizontalBar(pt.Label, pt.Value, maxVal, labelW, barW))
		}
		fmt.Println()

		for _, s := range pipeline.Shares(bd) {
			fmt.Printf("  %s %s\n", cli.RenderMuted(padLabel(s.Label, labelW)), cli.FormatPercent(s.Fraction))
		}
		fmt.Println()
	}

	if note := p.cat.Project.LaborNote; note != "" {
		fmt.Println("  " + cli.RenderMuted(wrapIndented(note, p.width-4, 2)))
		fmt.Println()
	}
}

// categoryLabel is the display name of a category, falling back to its key.
func categoryLabel(cat *model.Catalog, key string) string {
	if l := cat.Category(key).Label; l != "" {
		return l
	}
	return key
}

func padLabel(s string, w int) string {
	if n := lipgloss.Width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}
