package model

// Theme is a fixed palette of named colors. Themes are never built at
// runtime, only looked up by name.
type Theme struct {
	Name       string `json:"name"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
	Prompt     string `json:"prompt"`
	Error      string `json:"error"`
	Success    string `json:"success"`
	Selection  string `json:"selection"`
	Accent     string `json:"accent"`
	FontFamily string `json:"fontFamily"` // only meaningful to the web front end
}

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "classic"

var themeOrder = []string{"classic", "modern", "light", "retro"}

var themes = map[string]Theme{
	"classic": {
		Name:       "Classic",
		Background: "#000000",
		Foreground: "#00ff00",
		Prompt:     "#00ff00",
		Error:      "#ff0000",
		Success:    "#00ff00",
		Selection:  "#333333",
		Accent:     "#0077ff",
		FontFamily: "monospace",
	},
	"modern": {
		Name:       "Modern",
		Background: "#1e1e2e",
		Foreground: "#d9e0ee",
		Prompt:     "#89b4fa",
		Error:      "#f38ba8",
		Success:    "#a6e3a1",
		Selection:  "#313244",
		Accent:     "#f5c2e7",
		FontFamily: `"Cascadia Code", monospace`,
	},
	"light": {
		Name:       "Light",
		Background: "#f5f5f5",
		Foreground: "#333333",
		Prompt:     "#0077cc",
		Error:      "#cc0000",
		Success:    "#007700",
		Selection:  "#dddddd",
		Accent:     "#ff6600",
		FontFamily: `"Fira Code", monospace`,
	},
	"retro": {
		Name:       "Retro",
		Background: "#2d2b55",
		Foreground: "#ff7edb",
		Prompt:     "#ffcc00",
		Error:      "#ff5370",
		Success:    "#a5ff90",
		Selection:  "#423f77",
		Accent:     "#00aaff",
		FontFamily: `"VT323", monospace`,
	},
}

// ThemeNames lists the known theme keys in display order.
func ThemeNames() []string {
	out := make([]string, len(themeOrder))
	copy(out, themeOrder)
	return out
}

// LookupTheme returns the theme registered under key.
func LookupTheme(key string) (Theme, bool) {
	t, ok := themes[key]
	return t, ok
}
