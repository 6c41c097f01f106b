package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/theirongolddev/kitnet/internal/cli"
	"github.com/theirongolddev/kitnet/internal/export"
	"github.com/theirongolddev/kitnet/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagExportType  string
	flagExportOut   string
	flagExportLabor bool
	flagExportTitle string
)

var exportCmd = &cobra.Command{
	Use:   "export [pdf|xlsx]",
	Short: "Export the selected budget as PDF or Excel",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportType, "type", "t", "pdf", "Output format: pdf or xlsx")
	exportCmd.Flags().StringVarP(&flagExportOut, "out", "o", "", "Output file (default: orcamento.<type>)")
	exportCmd.Flags().BoolVar(&flagExportLabor, "labor", true, "Include the labor line")
	exportCmd.Flags().StringVar(&flagExportTitle, "title", export.DefaultTitle, "Document title")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	kind := flagExportType
	if len(args) == 1 {
		kind = args[0]
	}
	format, err := export.ParseFormat(kind)
	if err != nil {
		return err
	}

	p, err := loadPage(cmd)
	if err != nil {
		return err
	}

	items := pipeline.SelectedItems(p.cat, p.sel, flagExportLabor)
	doc := export.NewDocument(flagExportTitle, items, time.Now())

	out := flagExportOut
	if out == "" {
		out = format.FileName()
	}
	if err := export.WriteFile(out, doc, format); err != nil {
		return err
	}

	if abs, err := filepath.Abs(out); err == nil {
		out = abs
	}
	status("Wrote %d items to %s", len(doc.Rows), out)
	fmt.Printf("  Total: %s\n", cli.RenderCost(doc.GrandTotal))
	return nil
}
