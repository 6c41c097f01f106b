package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/theirongolddev/kitnet/internal/cli"
	"github.com/theirongolddev/kitnet/internal/viewer"

	"github.com/spf13/cobra"
)

var overviewCmd = &cobra.Command{
	Use:   "overview",
	Short: "Project details and 3D model framing",
	RunE:  runOverview,
}

func init() {
	rootCmd.AddCommand(overviewCmd)
}

func runOverview(cmd *cobra.Command, _ []string) error {
	p, err := loadPage(cmd)
	if err != nil {
		return err
	}
	printOverview(p)
	return nil
}

func printOverview(p *page) {
	proj := p.cat.Project
	title := proj.Title
	if title == "" {
		title = "Orçamento"
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title, p.width))
	fmt.Println()
	fmt.Println(cli.RenderSection("Detalhes do Projeto"))
	fmt.Println()

	fields := [][2]string{
		{"Área base", proj.BaseArea},
		{"Ampliação", proj.ExpansionArea},
		{"Área total", proj.TotalArea},
		{"Deck", proj.DeckArea},
		{"Localização", proj.Location},
	}
	printFields(p, "Projeto", fields)

	fmt.Println(cli.RenderSection("Modelo 3D"))
	fmt.Println()
	if proj.ModelPath == "" {
		fmt.Println("  " + cli.RenderMuted("Nenhum modelo 3D configurado"))
		fmt.Println()
		return
	}

	v := fitModel(p)
	if v.State() != viewer.StateFitted {
		fmt.Println("  " + cli.RenderWarning("Modelo indisponível: "+v.Err().Error()))
		fmt.Println("  " + cli.RenderMuted("O restante do orçamento segue disponível."))
		fmt.Println()
		return
	}
	res, _ := v.Result()
	size := res.Size()
	printFields(p, filepath.Base(v.Path()), [][2]string{
		{"Escala", "× " + cli.FormatDecimal(res.Scale, 4)},
		{"Tamanho", formatVec(size)},
		{"Câmera", formatVec(res.Position)},
		{"Distância", cli.FormatDecimal(res.Distance, 2)},
	})
}

// printFields prints label/value pairs as a card on narrow terminals and a
// two-column table otherwise.
func printFields(p *page, title string, fields [][2]string) {
	for i := range fields {
		if fields[i][1] == "" {
			fields[i][1] = "—"
		}
	}
	if cli.UseCards(p.width) {
		fmt.Print(cli.RenderCards([]cli.Card{{Title: title, Fields: fields}}, p.width))
		fmt.Println()
		return
	}
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f[0], f[1]})
	}
	fmt.Print(cli.RenderTable(cli.Table{Rows: rows}))
	fmt.Println()
}

func formatVec(v viewer.Vec3) string {
	return fmt.Sprintf("(%s; %s; %s)",
		cli.FormatDecimal(v.X, 2), cli.FormatDecimal(v.Y, 2), cli.FormatDecimal(v.Z, 2))
}
