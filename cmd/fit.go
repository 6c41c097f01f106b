package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/theirongolddev/kitnet/internal/cli"
	"github.com/theirongolddev/kitnet/internal/pipeline"
	"github.com/theirongolddev/kitnet/internal/store"
	"github.com/theirongolddev/kitnet/internal/viewer"

	"github.com/spf13/cobra"
)

var (
	flagFOV     float64
	flagRefresh bool
)

var fitCmd = &cobra.Command{
	Use:   "fit [model.glb]",
	Short: "Frame the 3D model and print the camera placement",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFit,
}

func init() {
	fitCmd.Flags().Float64Var(&flagFOV, "fov", 0, "Vertical field of view in degrees (default: config, else 50)")
	fitCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "Drop the cached bounds and re-measure the model")
	rootCmd.AddCommand(fitCmd)
}

// fitModel frames the page's 3D model, honouring --no-cache.
func fitModel(p *page) *viewer.Viewer {
	cam := camera(p.cfg)
	if flagFOV > 0 {
		cam.FOV = flagFOV
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return pipeline.FitModel(ctx, p.cat.Project.ModelPath, cam, flagNoCache)
}

func runFit(cmd *cobra.Command, args []string) error {
	p, err := loadPage(cmd)
	if err != nil {
		return err
	}
	if len(args) == 1 {
		p.cat.Project.ModelPath = args[0]
	}
	path := p.cat.Project.ModelPath
	if path == "" {
		return fmt.Errorf("no 3D model configured (use --model or [project] model)")
	}

	if flagRefresh && !flagNoCache {
		forgetBounds(path)
	}

	start := time.Now()
	v := fitModel(p)
	if v.State() != viewer.StateFitted {
		return fmt.Errorf("fitting %s: %w", path, v.Err())
	}
	res, _ := v.Result()

	source := "measured"
	if v.FromCache() {
		source = "cached"
	}
	status("Bounds %s in %s", source, time.Since(start).Round(time.Millisecond))

	fmt.Println()
	fmt.Println(cli.RenderTitle("MODELO 3D  "+filepath.Base(path), p.width))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"", "X", "Y", "Z"},
		Rows: [][]string{
			vecRow("Min original", res.Original.Min),
			vecRow("Max original", res.Original.Max),
			{"---"},
			vecRow("Tamanho", res.Size()),
			vecRow("Câmera", res.Position),
			vecRow("Alvo", res.Target),
			vecRow("Deslocamento", res.ModelOffset),
		},
	}))
	fmt.Println()

	fmt.Print(cli.RenderTable(cli.Table{
		Rows: [][]string{
			{"Escala", cli.FormatDecimal(res.Scale, 6)},
			{"Distância", cli.FormatDecimal(res.Distance, 4)},
			{"Campo de visão", cli.FormatDecimal(res.Camera.FOV, 1) + "°"},
			{"Near / Far", cli.FormatDecimal(res.Camera.Near, 1) + " / " + cli.FormatDecimal(res.Camera.Far, 0)},
		},
	}))
	return nil
}

func vecRow(label string, v viewer.Vec3) []string {
	return []string{
		label,
		cli.FormatDecimal(v.X, 3),
		cli.FormatDecimal(v.Y, 3),
		cli.FormatDecimal(v.Z, 3),
	}
}

// forgetBounds drops a model's cached bounds. Failures only mean the next
// fit reads the cache as before.
func forgetBounds(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return
	}
	cache, err := store.Open(store.CachePath())
	if err != nil {
		status("Cache unavailable: %v", err)
		return
	}
	defer func() { _ = cache.Close() }()
	if err := cache.Forget(abs); err != nil {
		status("Could not clear cached bounds: %v", err)
		return
	}
	if n, err := cache.Count(); err == nil {
		status("Cleared cached bounds; %s models left in cache", cli.FormatNumber(int64(n)))
	}
}
