// Package tui provides the interactive Bubble Tea budget page for kitnet.
package tui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/kitnet/internal/cli"
	"github.com/theirongolddev/kitnet/internal/config"
	"github.com/theirongolddev/kitnet/internal/export"
	"github.com/theirongolddev/kitnet/internal/model"
	"github.com/theirongolddev/kitnet/internal/pipeline"
	"github.com/theirongolddev/kitnet/internal/tui/components"
	"github.com/theirongolddev/kitnet/internal/tui/theme"
	"github.com/theirongolddev/kitnet/internal/viewer"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// ModelLoadedMsg is sent when the 3D asset has been measured and framed,
// or has failed to load.
type ModelLoadedMsg struct {
	State     viewer.State
	Result    viewer.FitResult
	Err       error
	FromCache bool
	LoadTime  time.Duration
}

// ExportDoneMsg is sent when a PDF export finishes.
type ExportDoneMsg struct {
	Path string
	Err  error
}

// Options configures the page.
type Options struct {
	ModelPath string
	Camera    viewer.Camera
	NoCache   bool
	ExportDir string // where `e` writes the PDF; empty means the working directory
	Warnings  []string
}

// App is the root Bubble Tea model.
type App struct {
	// Data
	cat       *model.Catalog
	sel       model.Selection
	breakdown model.Breakdown
	warnings  []string

	// 3D model
	modelPath  string
	camera     viewer.Camera
	noCache    bool
	modelState viewer.State
	fit        viewer.FitResult
	fitErr     error
	fitCached  bool
	fitTime    time.Duration

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool
	scroll    int
	filterIdx int
	status    string

	exportDir string
	exporting bool

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *SetupValues
	needSetup bool

	spinner spinner.Model
}

const (
	minTerminalWidth = 60
	compactWidth     = 110
	maxContentWidth  = 160

	minContentHeight = 5
	scrollOverhead   = 4 // header + status bar
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates the page for cat opened on sel.
func NewApp(cat *model.Catalog, sel model.Selection, opts Options) App {
	needSetup := !config.Exists()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent).Background(theme.Active.Surface)

	a := App{
		cat:        cat,
		sel:        sel,
		warnings:   opts.Warnings,
		modelPath:  opts.ModelPath,
		camera:     opts.Camera,
		noCache:    opts.NoCache,
		modelState: viewer.StateLoading,
		exportDir:  opts.ExportDir,
		needSetup:  needSetup,
		spinner:    sp,
	}
	if opts.ModelPath == "" {
		a.modelState = viewer.StateFailed
		a.fitErr = errNoModel
	}
	if needSetup {
		vals := SetupValuesFromConfig(loadConfigOrDefault())
		a.setupVals = &vals
		a.setupForm = NewSetupForm(cat, a.setupVals)
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnableMouseCellMotion,
	}
	if a.modelState == viewer.StateLoading {
		cmds = append(cmds, a.spinner.Tick, loadModelCmd(a.modelPath, a.camera, a.noCache))
	}
	if a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) recompute() {
	a.breakdown = pipeline.Aggregate(a.cat, a.sel)

	filters := pipeline.MaterialFilters(a.cat)
	if a.filterIdx >= len(filters) {
		a.filterIdx = 0
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || (a.needSetup && a.setupForm != nil) {
			return a, nil
		}

		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.scrollBy(-3)
			return a, nil

		case tea.MouseButtonWheelDown:
			a.scrollBy(3)
			return a, nil

		case tea.MouseButtonLeft:
			if msg.Action != tea.MouseActionPress {
				return a, nil
			}
			// Tab bar is the first line
			if msg.Y == 0 {
				if tab := a.tabAtX(msg.X); tab >= 0 && tab < len(components.Tabs) {
					a.setTab(tab)
				}
			}
			return a, nil
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()

		// Global: quit
		if key == "ctrl+c" {
			return a, tea.Quit
		}

		// First-run setup form intercepts all keys
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}

		if key == "?" {
			a.showHelp = !a.showHelp
			return a, nil
		}
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}

		switch key {
		case "q":
			return a, tea.Quit
		case "left":
			a.setTab((a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs))
			return a, nil
		case "right", "tab":
			a.setTab((a.activeTab + 1) % len(components.Tabs))
			return a, nil
		case "j", "down":
			a.scrollBy(1)
			return a, nil
		case "k", "up":
			a.scrollBy(-1)
			return a, nil
		case "ctrl+d":
			a.scrollBy(a.halfPage())
			return a, nil
		case "ctrl+u":
			a.scrollBy(-a.halfPage())
			return a, nil
		case "g":
			a.scroll = 0
			return a, nil
		case "e":
			if a.exporting {
				return a, nil
			}
			a.exporting = true
			a.status = "Gerando PDF…"
			return a, exportCmd(a.cat, a.sel, a.exportDir)
		}

		if a.activeTab == tabMaterials {
			switch key {
			case "l", "]":
				a.cycleFilter(1)
				return a, nil
			case "h", "[":
				a.cycleFilter(-1)
				return a, nil
			}
		}

		if a.activeTab == tabSummary {
			if sel, ok := applySelectionKey(a.sel, key); ok {
				a.sel = sel
				a.status = ""
				a.recompute()
				return a, nil
			}
		}

		if len(msg.Runes) == 1 {
			if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
				a.setTab(idx)
			}
		}
		return a, nil

	case ModelLoadedMsg:
		a.modelState = msg.State
		a.fit = msg.Result
		a.fitErr = msg.Err
		a.fitCached = msg.FromCache
		a.fitTime = msg.LoadTime
		return a, nil

	case ExportDoneMsg:
		a.exporting = false
		if msg.Err != nil {
			a.status = "Falha ao exportar: " + msg.Err.Error()
		} else {
			a.status = "PDF salvo em " + msg.Path
		}
		return a, nil

	case spinner.TickMsg:
		if a.modelState == viewer.StateLoading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	// Forward unhandled messages to the setup form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}

	return a, nil
}

// applySelectionKey maps the summary controls to selection changes.
func applySelectionKey(sel model.Selection, key string) (model.Selection, bool) {
	switch key {
	case "c":
		return sel.NextConstruction(), true
	case "f":
		return sel.NextRoof(), true
	case "d":
		return sel.Toggle(model.AddOnDeck), true
	case "p":
		return sel.Toggle(model.AddOnPVC), true
	case "t":
		return sel.Toggle(model.AddOnRoofing), true
	}
	return sel, false
}

func (a *App) setTab(idx int) {
	if idx != a.activeTab {
		a.scroll = 0
	}
	a.activeTab = idx
}

func (a *App) scrollBy(n int) {
	a.scroll += n
	if a.scroll < 0 {
		a.scroll = 0
	}
}

func (a App) halfPage() int {
	h := (a.height - scrollOverhead) / 2
	if h < 1 {
		h = 1
	}
	return h
}

func (a *App) cycleFilter(step int) {
	n := len(pipeline.MaterialFilters(a.cat))
	if n == 0 {
		return
	}
	a.filterIdx = (a.filterIdx + step + n) % n
	a.scroll = 0
}

func (a App) currentFilter() string {
	filters := pipeline.MaterialFilters(a.cat)
	if a.filterIdx < 0 || a.filterIdx >= len(filters) {
		return pipeline.FilterAll
	}
	return filters[a.filterIdx]
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	if a.setupForm.State == huh.StateCompleted {
		if err := a.saveSetupConfig(); err != nil {
			a.status = "Configuração não salva: " + err.Error()
		}
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	if a.setupForm.State == huh.StateAborted {
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}

	return a, cmd
}

func (a App) contentWidth() int {
	cw := a.width
	if cw > maxContentWidth {
		cw = maxContentWidth
	}
	return cw
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}

	if a.needSetup && a.setupForm != nil {
		return a.setupForm.View()
	}

	if a.showHelp {
		return a.viewHelp()
	}

	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := a.height
	if h < 5 {
		h = 5
	}

	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  kitnet needs at least %d columns.\n  Try `kitnet --width %d` for the static page.\n",
		a.width,
		minTerminalWidth,
		a.width,
	)

	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active
	h := a.height
	w := a.width

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().
		Foreground(t.AccentBright).
		Background(t.Surface).
		Bold(true)

	sectionStyle := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(t.Cyan).
		Background(t.Surface).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted).
		Background(t.Surface)

	dimStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"o s m u", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Scroll"},
			{"^d ^u", "Half-page scroll"},
			{"h l  [ ]", "Materials filter"},
		}},
		{"Budget", []struct{ key, desc string }{
			{"c", "Construction: bloco / tijolo"},
			{"f", "Roof: laje / madeira"},
			{"d p t", "Toggle deck / PVC / telhado"},
			{"e", "Export PDF"},
		}},
		{"General", []struct{ key, desc string }{
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	card := cardStyle.Render(b.String())

	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, card,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	// 1. Header: tab bar + selection pill
	pillStyle := lipgloss.NewStyle().
		Foreground(t.TextDim).
		Background(t.Surface)
	pillAccent := lipgloss.NewStyle().
		Foreground(t.Accent).
		Background(t.Surface).
		Bold(true)

	pill := pillStyle.Render(" ") +
		pillAccent.Render(a.categoryLabel(string(a.sel.Construction))) +
		pillStyle.Render(" │ ") +
		pillAccent.Render(a.categoryLabel(string(a.sel.Roof)))
	for _, addOn := range a.sel.EnabledAddOns() {
		pill += pillStyle.Render(" │ +") + pillAccent.Render(a.categoryLabel(string(addOn)))
	}
	if len(a.warnings) > 0 {
		pill += pillStyle.Render(" │ ") +
			lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).
				Render(fmt.Sprintf("%d avisos no catálogo", len(a.warnings)))
	}
	pill += pillStyle.Render(" ")

	pillRow := lipgloss.NewStyle().
		Background(t.Surface).
		Width(w)

	header := components.RenderTabBar(a.activeTab, w) + "\n" + pillRow.Render(pill)

	// 2. Status bar
	statusBar := components.RenderStatusBar(w, a.tabHint(), a.status,
		"Total: "+cli.FormatBRL(a.breakdown.GrandTotal))

	// 3. Content zone height
	headerH := lipgloss.Height(header)
	statusH := lipgloss.Height(statusBar)
	contentH := h - headerH - statusH
	if contentH < minContentHeight {
		contentH = minContentHeight
	}

	// 4. Tab content
	var content string
	switch a.activeTab {
	case tabOverview:
		content = a.renderOverviewTab(cw)
	case tabStages:
		content = a.renderStagesTab(cw)
	case tabMaterials:
		content = a.renderMaterialsTab(cw)
	case tabSummary:
		content = a.renderSummaryTab(cw)
	}

	// 5. Scroll, then truncate + pad to exactly contentH lines
	content = scrollLines(content, a.scroll, contentH)
	content = padHeight(truncateHeight(content, contentH), contentH)

	// 6. Fill each line to full width with background
	content = fillLinesWithBackground(content, cw, t.Background)

	// 7. Place content with background fill (centres when w > cw)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)

	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

const (
	tabOverview = iota
	tabStages
	tabMaterials
	tabSummary
)

func (a App) tabHint() string {
	switch a.activeTab {
	case tabMaterials:
		return "[h/l]filtro"
	case tabSummary:
		return "[c]onstrução [f]cobertura [d/p/t]extras [e]xportar"
	}
	return "[e]xportar PDF"
}

func (a App) categoryLabel(key string) string {
	if l := a.cat.Category(key).Label; l != "" {
		return l
	}
	return key
}

// ─── Commands ───────────────────────────────────────────────────

var errNoModel = errors.New("no 3D model configured")

// loadModelCmd frames the 3D asset in a background goroutine.
func loadModelCmd(path string, cam viewer.Camera, noCache bool) tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		v := pipeline.FitModel(ctx, path, cam, noCache)
		res, _ := v.Result()
		return ModelLoadedMsg{
			State:     v.State(),
			Result:    res,
			Err:       v.Err(),
			FromCache: v.FromCache(),
			LoadTime:  time.Since(start),
		}
	}
}

// exportCmd writes the selected budget, labor included, as a PDF.
func exportCmd(cat *model.Catalog, sel model.Selection, dir string) tea.Cmd {
	return func() tea.Msg {
		items := pipeline.SelectedItems(cat, sel, true)
		doc := export.NewDocument(export.DefaultTitle, items, time.Now())

		path := filepath.Join(dir, export.FormatPDF.FileName())
		if err := export.WriteFile(path, doc, export.FormatPDF); err != nil {
			return ExportDoneMsg{Err: err}
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		return ExportDoneMsg{Path: path}
	}
}

// ─── Helpers ────────────────────────────────────────────────────

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

// scrollLines drops the first offset lines, clamped so the last screenful
// stays visible.
func scrollLines(s string, offset, h int) string {
	lines := strings.Split(s, "\n")
	maxOffset := len(lines) - h
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	if offset <= 0 {
		return s
	}
	return strings.Join(lines[offset:], "\n")
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	padding := strings.Repeat("\n", h-len(lines))
	return s + padding
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// ─── Mouse Support ──────────────────────────────────────────────

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)

		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW

		// Separator is one column between tabs.
		if i < len(components.Tabs)-1 {
			pos++
		}
	}
	return -1
}
