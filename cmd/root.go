// Package cmd implements the kitnet CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/kitnet/internal/config"
	"github.com/theirongolddev/kitnet/internal/model"
	"github.com/theirongolddev/kitnet/internal/pipeline"
	"github.com/theirongolddev/kitnet/internal/viewer"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
)

var (
	flagCatalog      string
	flagModel        string
	flagConstruction string
	flagRoof         string
	flagDeck         bool
	flagPVC          bool
	flagRoofing      bool
	flagWidth        int
	flagQuiet        bool
	flagNoCache      bool
)

const defaultWidth = 100

var rootCmd = &cobra.Command{
	Use:   "kitnet",
	Short: "Budget for the kitnet construction project",
	Long:  "Show the kitnet budget: project details, construction stages, materials and cost summary.",
	RunE:  runPage,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagCatalog, "catalog", "", "Catalog YAML file (default: embedded catalog)")
	pf.StringVar(&flagModel, "model", "", "3D model file (.glb/.gltf)")
	pf.StringVarP(&flagConstruction, "construction", "c", "", "Construction type: bloco or tijolo")
	pf.StringVarP(&flagRoof, "roof", "r", "", "Roof type: laje or madeira")
	pf.BoolVar(&flagDeck, "deck", false, "Include the deck")
	pf.BoolVar(&flagPVC, "pvc", false, "Include PVC")
	pf.BoolVar(&flagRoofing, "roofing", true, "Include the roofing (telhado)")
	pf.IntVarP(&flagWidth, "width", "w", 0, "Output width (default: terminal width)")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	pf.BoolVar(&flagNoCache, "no-cache", false, "Skip the SQLite bounds cache")
}

// status prints a progress or warning line to stderr unless --quiet.
func status(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "  "+format+"\n", args...)
}

// page is everything a command needs to render the budget.
type page struct {
	cfg   config.Config
	res   *pipeline.LoadResult
	cat   *model.Catalog
	sel   model.Selection
	width int
}

// loadPage is the shared data loading path used by all commands.
// Precedence is flags, then config, then catalog defaults.
func loadPage(cmd *cobra.Command) (*page, error) {
	cfg, err := config.Load()
	if err != nil {
		status("Config unreadable, using defaults: %v", err)
		cfg = config.DefaultConfig()
	}

	if flagModel != "" {
		cfg.Project.Model = flagModel
	}

	catalogPath := config.CatalogPath(cfg)
	if flagCatalog != "" {
		catalogPath = flagCatalog
	}

	res, err := pipeline.LoadFrom(cfg, catalogPath)
	if err != nil {
		return nil, err
	}

	if res.Source != "" {
		status("Loaded catalog %s", res.Source)
	}
	if res.Overridden > 0 {
		status("%d prices overridden by config", res.Overridden)
	}
	for _, w := range res.Warnings {
		status("warning: %s", w)
	}

	sel, err := resolveSelection(cmd, cfg.Selection)
	if err != nil {
		return nil, err
	}

	return &page{
		cfg:   cfg,
		res:   res,
		cat:   res.Catalog,
		sel:   sel,
		width: outputWidth(),
	}, nil
}

// resolveSelection starts from the config and applies only the selection
// flags the user actually set.
func resolveSelection(cmd *cobra.Command, sc config.SelectionConfig) (model.Selection, error) {
	flags := cmd.Flags()
	if flags.Changed("construction") {
		sc.Construction = flagConstruction
	}
	if flags.Changed("roof") {
		sc.Roof = flagRoof
	}
	if flags.Changed("deck") {
		sc.Deck = flagDeck
	}
	if flags.Changed("pvc") {
		sc.PVC = flagPVC
	}
	if flags.Changed("roofing") {
		sc.Roofing = flagRoofing
	}

	sel, err := pipeline.SelectionFromConfig(sc)
	if err != nil {
		return sel, fmt.Errorf("invalid selection: %w", err)
	}
	return sel, nil
}

// outputWidth is --width, else the terminal width, else defaultWidth.
func outputWidth() int {
	if flagWidth > 0 {
		return flagWidth
	}
	fd := os.Stdout.Fd()
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	return defaultWidth
}

// camera returns the viewer camera configured by [viewer].
func camera(cfg config.Config) viewer.Camera {
	cam := viewer.DefaultCamera()
	if cfg.Viewer.FOV > 0 {
		cam.FOV = cfg.Viewer.FOV
	}
	return cam
}

func runPage(cmd *cobra.Command, _ []string) error {
	p, err := loadPage(cmd)
	if err != nil {
		return err
	}

	printOverview(p)
	printStages(p)
	printMaterials(p, pipeline.FilterAll)
	printSummary(p)
	return nil
}
