// Package theme defines color themes for the kitnet TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name  string
	Label string // shown in the setup form

	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Inactive pills and tabs
	SurfaceBright lipgloss.Color
	Border        lipgloss.Color
	BorderBright  lipgloss.Color
	BorderAccent  lipgloss.Color // Help card, highlighted metric
	TextDim       lipgloss.Color // Hints, axes, empty bar track
	TextMuted     lipgloss.Color // Labels
	TextPrimary   lipgloss.Color
	Accent        lipgloss.Color // Active tab and pills
	AccentBright  lipgloss.Color
	AccentDim     lipgloss.Color

	Green   lipgloss.Color // money totals
	Orange  lipgloss.Color // warnings
	Red     lipgloss.Color
	Blue    lipgloss.Color
	Yellow  lipgloss.Color
	Magenta lipgloss.Color
	Cyan    lipgloss.Color // key hints

	// Series colours the cost chart bars in order: materials, labor, roof,
	// then each add-on.
	Series []lipgloss.Color
}

// SeriesColor returns the chart colour for bar i, wrapping around.
func (t Theme) SeriesColor(i int) lipgloss.Color {
	if len(t.Series) == 0 {
		return t.Accent
	}
	if i < 0 {
		i = -i
	}
	return t.Series[i%len(t.Series)]
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Label:         "Flexoki escuro",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderBright:  lipgloss.Color("#575653"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	AccentDim:     lipgloss.Color("#1A3533"),
	Green:         lipgloss.Color("#879A39"),
	Orange:        lipgloss.Color("#DA702C"),
	Red:           lipgloss.Color("#D14D41"),
	Blue:          lipgloss.Color("#4385BE"),
	Yellow:        lipgloss.Color("#D0A215"),
	Magenta:       lipgloss.Color("#CE5D97"),
	Cyan:          lipgloss.Color("#24837B"),
	Series: []lipgloss.Color{
		"#4385BE", "#DA702C", "#879A39", "#D0A215", "#CE5D97", "#8B7EC8",
	},
}

// FlexokiLight mirrors the white printed budget.
var FlexokiLight = Theme{
	Name:          "flexoki-light",
	Label:         "Flexoki claro",
	Background:    lipgloss.Color("#FFFCF0"),
	Surface:       lipgloss.Color("#F2F0E5"),
	SurfaceHover:  lipgloss.Color("#E6E4D9"),
	SurfaceBright: lipgloss.Color("#DAD8CE"),
	Border:        lipgloss.Color("#CECDC3"),
	BorderBright:  lipgloss.Color("#B7B5AC"),
	BorderAccent:  lipgloss.Color("#24837B"),
	TextDim:       lipgloss.Color("#B7B5AC"),
	TextMuted:     lipgloss.Color("#6F6E69"),
	TextPrimary:   lipgloss.Color("#100F0F"),
	Accent:        lipgloss.Color("#24837B"),
	AccentBright:  lipgloss.Color("#1C6C66"),
	AccentDim:     lipgloss.Color("#DDF1E4"),
	Green:         lipgloss.Color("#66800B"),
	Orange:        lipgloss.Color("#BC5215"),
	Red:           lipgloss.Color("#AF3029"),
	Blue:          lipgloss.Color("#205EA6"),
	Yellow:        lipgloss.Color("#AD8301"),
	Magenta:       lipgloss.Color("#A02F6F"),
	Cyan:          lipgloss.Color("#24837B"),
	Series: []lipgloss.Color{
		"#205EA6", "#BC5215", "#66800B", "#AD8301", "#A02F6F", "#5E409D",
	},
}

// Canteiro is a concrete-grey theme with safety-orange accents.
var Canteiro = Theme{
	Name:          "canteiro",
	Label:         "Canteiro de obras",
	Background:    lipgloss.Color("#161616"),
	Surface:       lipgloss.Color("#222120"),
	SurfaceHover:  lipgloss.Color("#302E2C"),
	SurfaceBright: lipgloss.Color("#3C3A37"),
	Border:        lipgloss.Color("#4A4744"),
	BorderBright:  lipgloss.Color("#6B6762"),
	BorderAccent:  lipgloss.Color("#F28C28"),
	TextDim:       lipgloss.Color("#6B6762"),
	TextMuted:     lipgloss.Color("#A39E97"),
	TextPrimary:   lipgloss.Color("#EDE8E1"),
	Accent:        lipgloss.Color("#F28C28"),
	AccentBright:  lipgloss.Color("#FFB15C"),
	AccentDim:     lipgloss.Color("#3D2610"),
	Green:         lipgloss.Color("#9BBF5A"),
	Orange:        lipgloss.Color("#F28C28"),
	Red:           lipgloss.Color("#E0584A"),
	Blue:          lipgloss.Color("#6E9BC5"),
	Yellow:        lipgloss.Color("#F2C94C"),
	Magenta:       lipgloss.Color("#C77DAA"),
	Cyan:          lipgloss.Color("#6FB3B8"),
	Series: []lipgloss.Color{
		"#A39E97", "#F28C28", "#6E9BC5", "#F2C94C", "#9BBF5A", "#C77DAA",
	},
}

// Terminal uses ANSI 16 colors only.
var Terminal = Theme{
	Name:          "terminal",
	Label:         "Terminal (ANSI 16)",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	AccentDim:     lipgloss.Color("0"),
	Green:         lipgloss.Color("2"),
	Orange:        lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
	Series:        []lipgloss.Color{"4", "3", "2", "5", "6", "12"},
}

// All available themes.
var All = []Theme{FlexokiDark, FlexokiLight, Canteiro, Terminal}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
