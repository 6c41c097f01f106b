package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/theirongolddev/kitnet/internal/cli"
	"github.com/theirongolddev/kitnet/internal/model"
	"github.com/theirongolddev/kitnet/internal/pipeline"

	"github.com/spf13/cobra"
)

var flagFilter string

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "Materials budget, optionally filtered by category",
	RunE:  runMaterials,
}

func init() {
	materialsCmd.Flags().StringVarP(&flagFilter, "filter", "f", pipeline.FilterAll, "Category key to list, or \"all\"")
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, _ []string) error {
	p, err := loadPage(cmd)
	if err != nil {
		return err
	}
	filters := pipeline.MaterialFilters(p.cat)
	if !slices.Contains(filters, flagFilter) {
		return fmt.Errorf("unknown filter %q (want one of: %s)", flagFilter, strings.Join(filters, ", "))
	}
	printMaterials(p, flagFilter)
	return nil
}

func printMaterials(p *page, filter string) {
	items := pipeline.Materials(p.cat, filter)

	fmt.Println(cli.RenderSection("Orçamento de Materiais · " + pipeline.FilterLabel(p.cat, filter)))
	fmt.Println()

	if len(items) == 0 {
		fmt.Println("  " + cli.RenderMuted("Nenhum material nesta categoria."))
		fmt.Println()
		return
	}

	if cli.UseCards(p.width) {
		fmt.Print(cli.RenderCards(materialCards(items), p.width))
	} else {
		fmt.Print(cli.RenderTable(materialTable(items)))
	}
	fmt.Println()
	fmt.Println("  Total de Materiais: " + cli.RenderCost(pipeline.Total(items)))
	fmt.Println()
}

func materialTable(items []model.LineItem) cli.Table {
	rows := make([][]string, 0, len(items))
	for _, li := range items {
		rows = append(rows, []string{
			li.Name,
			qtyWithUnit(li),
			cli.FormatBRL(li.UnitPrice),
			cli.FormatBRL(li.Total()),
		})
	}
	return cli.Table{
		Headers: []string{"Produto", "Quantidade", "Preço Unitário", "Total"},
		Rows:    rows,
	}
}

func materialCards(items []model.LineItem) []cli.Card {
	cards := make([]cli.Card, 0, len(items))
	for _, li := range items {
		cards = append(cards, cli.Card{
			Title: li.Name,
			Fields: [][2]string{
				{"Quantidade", qtyWithUnit(li)},
				{"Preço Unitário", cli.FormatBRL(li.UnitPrice)},
				{"Total", cli.FormatBRL(li.Total())},
			},
		})
	}
	return cards
}

func qtyWithUnit(li model.LineItem) string {
	q := cli.FormatQty(li.Quantity)
	if li.Unit == "" {
		return q
	}
	return q + " " + li.Unit
}
