package render

// FallbackColor is used for every language the palette does not know.
const FallbackColor = "#888"

var defaultColors = map[string]string{
	"TypeScript": "#2b7489",
	"JavaScript": "#f1e05a",
	"HTML":       "#e34c26",
	"SCSS":       "#c6538c",
	"CSS":        "#563d7c",
	"Dockerfile": "#384d54",
	"Shell":      "#89e051",
	"Go":         "#00ADD8",
	"Python":     "#3572A5",
	"Java":       "#b07219",
	"Rust":       "#dea584",
	"C":          "#555555",
	"C++":        "#f34b7d",
	"C#":         "#178600",
	"Ruby":       "#701516",
	"PHP":        "#4F5D95",
	"Kotlin":     "#A97BFF",
	"Swift":      "#F05138",
	"Vue":        "#41b883",
	"Lua":        "#000080",
}

// Palette maps language names to fill colors. ColorFor never fails: unknown
// names get the fallback.
type Palette struct {
	colors   map[string]string
	fallback string
}

func DefaultPalette() Palette {
	return Palette{colors: defaultColors, fallback: FallbackColor}
}

// With returns a copy of p with overrides applied on top. Empty values are ignored.
func (p Palette) With(overrides map[string]string) Palette {
	if len(overrides) == 0 {
		return p
	}

	colors := make(map[string]string, len(p.colors)+len(overrides))
	for name, c := range p.colors {
		colors[name] = c
	}
	for name, c := range overrides {
		if c != "" {
			colors[name] = c
		}
	}

	return Palette{colors: colors, fallback: p.fallbackColor()}
}

func (p Palette) ColorFor(name string) string {
	if c, ok := p.colors[name]; ok {
		return c
	}
	return p.fallbackColor()
}

func (p Palette) fallbackColor() string {
	if p.fallback == "" {
		return FallbackColor
	}
	return p.fallback
}
