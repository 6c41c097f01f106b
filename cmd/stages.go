package cmd

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/kitnet/internal/cli"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "Construction stages and their tasks",
	RunE:  runStages,
}

func init() {
	rootCmd.AddCommand(stagesCmd)
}

func runStages(cmd *cobra.Command, _ []string) error {
	p, err := loadPage(cmd)
	if err != nil {
		return err
	}
	printStages(p)
	return nil
}

func printStages(p *page) {
	fmt.Println(cli.RenderSection("Etapas da Obra"))
	fmt.Println()

	if len(p.cat.Stages) == 0 {
		fmt.Println("  " + cli.RenderMuted("Nenhuma etapa cadastrada no catálogo."))
		fmt.Println()
		return
	}

	wrapW := p.width - 7
	for i, st := range p.cat.Stages {
		fmt.Printf("  %d. %s\n", i+1, st.Title)
		for _, task := range st.Tasks {
			fmt.Println("     • " + wrapIndented(task, wrapW, 7))
		}
		fmt.Println()
	}
}

// wrapIndented word-wraps s to w columns and indents continuation lines.
func wrapIndented(s string, w, indent int) string {
	if w < 20 {
		return s
	}
	lines := strings.Split(lipgloss.NewStyle().Width(w).Render(s), "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.Repeat(" ", indent) + strings.TrimRight(lines[i], " ")
	}
	lines[0] = strings.TrimRight(lines[0], " ")
	return strings.Join(lines, "\n")
}
