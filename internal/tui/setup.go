package tui

import (
	"github.com/theirongolddev/kitnet/internal/config"
	"github.com/theirongolddev/kitnet/internal/model"
	"github.com/theirongolddev/kitnet/internal/pipeline"
	"github.com/theirongolddev/kitnet/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues holds the answers collected by the first-run form.
type SetupValues struct {
	Construction string
	Roof         string
	AddOns       []string
	Theme        string
}

// SetupValuesFromConfig seeds the form with the current configuration.
func SetupValuesFromConfig(cfg config.Config) SetupValues {
	v := SetupValues{
		Construction: cfg.Selection.Construction,
		Roof:         cfg.Selection.Roof,
		Theme:        cfg.Appearance.Theme,
	}
	if cfg.Selection.Deck {
		v.AddOns = append(v.AddOns, string(model.AddOnDeck))
	}
	if cfg.Selection.PVC {
		v.AddOns = append(v.AddOns, string(model.AddOnPVC))
	}
	if cfg.Selection.Roofing {
		v.AddOns = append(v.AddOns, string(model.AddOnRoofing))
	}
	return v
}

// Apply writes the answers into cfg.
func (v SetupValues) Apply(cfg *config.Config) {
	if v.Construction != "" {
		cfg.Selection.Construction = v.Construction
	}
	if v.Roof != "" {
		cfg.Selection.Roof = v.Roof
	}
	cfg.Selection.Deck = false
	cfg.Selection.PVC = false
	cfg.Selection.Roofing = false
	for _, a := range v.AddOns {
		switch model.AddOn(a) {
		case model.AddOnDeck:
			cfg.Selection.Deck = true
		case model.AddOnPVC:
			cfg.Selection.PVC = true
		case model.AddOnRoofing:
			cfg.Selection.Roofing = true
		}
	}
	if v.Theme != "" {
		cfg.Appearance.Theme = v.Theme
	}
}

// NewSetupForm builds the first-run form. Option labels come from cat so a
// custom catalog shows its own names.
func NewSetupForm(cat *model.Catalog, vals *SetupValues) *huh.Form {
	label := func(key string) string {
		if l := cat.Category(key).Label; l != "" {
			return l
		}
		return key
	}

	constructionOpts := make([]huh.Option[string], 0, len(model.ConstructionKinds))
	for _, k := range model.ConstructionKinds {
		constructionOpts = append(constructionOpts, huh.NewOption(label(string(k)), string(k)))
	}
	roofOpts := make([]huh.Option[string], 0, len(model.RoofKinds))
	for _, k := range model.RoofKinds {
		roofOpts = append(roofOpts, huh.NewOption(label(string(k)), string(k)))
	}
	addOnOpts := make([]huh.Option[string], 0, len(model.AddOns))
	for _, a := range model.AddOns {
		addOnOpts = append(addOnOpts, huh.NewOption(label(string(a)), string(a)))
	}
	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, th := range theme.All {
		themeOpts = append(themeOpts, huh.NewOption(th.Label, th.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Bem-vindo ao kitnet").
				Description("Escolha como o orçamento deve abrir.\nDá para mudar tudo depois com `kitnet setup`."),
			huh.NewSelect[string]().
				Title("Tipo de construção").
				Options(constructionOpts...).
				Value(&vals.Construction),
			huh.NewSelect[string]().
				Title("Tipo de cobertura").
				Options(roofOpts...).
				Value(&vals.Roof),
			huh.NewMultiSelect[string]().
				Title("Opções adicionais").
				Options(addOnOpts...).
				Value(&vals.AddOns),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Tema de cores").
				Options(themeOpts...).
				Value(&vals.Theme),
		),
	).WithShowHelp(true)
}

// saveSetupConfig applies the form answers to the config on disk and to
// the running page.
func (a *App) saveSetupConfig() error {
	cfg := loadConfigOrDefault()
	a.setupVals.Apply(&cfg)
	theme.SetActive(cfg.Appearance.Theme)

	if sel, err := pipeline.SelectionFromConfig(cfg.Selection); err == nil {
		a.sel = sel
		a.recompute()
	}

	return config.Save(cfg)
}
