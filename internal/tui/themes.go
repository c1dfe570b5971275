package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme of the player.
type Theme struct {
	Name      string
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Faint     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Primary:   lipgloss.Color("#ff00ff"),
		Secondary: lipgloss.Color("#00ffff"),
		Accent:    lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888899"),
		Faint:     lipgloss.Color("#444466"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff4444"),
	}

	ThemeRetro = Theme{
		Name:      "retro",
		Primary:   lipgloss.Color("#00ff00"), // green phosphor
		Secondary: lipgloss.Color("#00cc00"),
		Accent:    lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#008800"),
		Faint:     lipgloss.Color("#005500"),
		Success:   lipgloss.Color("#88ff88"),
		Warning:   lipgloss.Color("#ffff00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Primary:   lipgloss.Color("#ffffff"),
		Secondary: lipgloss.Color("#cccccc"),
		Accent:    lipgloss.Color("#0088ff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Faint:     lipgloss.Color("#444444"),
		Success:   lipgloss.Color("#00ff00"),
		Warning:   lipgloss.Color("#ffaa00"),
		Error:     lipgloss.Color("#ff0000"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Primary:   lipgloss.Color("#0077be"),
		Secondary: lipgloss.Color("#00a8cc"),
		Accent:    lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Faint:     lipgloss.Color("#224455"),
		Success:   lipgloss.Color("#00ff88"),
		Warning:   lipgloss.Color("#ffcc00"),
		Error:     lipgloss.Color("#ff4444"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Primary:   lipgloss.Color("#ff6b6b"),
		Secondary: lipgloss.Color("#feca57"),
		Accent:    lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Faint:     lipgloss.Color("#4d3b4e"),
		Success:   lipgloss.Color("#5fd068"),
		Warning:   lipgloss.Color("#ffc048"),
		Error:     lipgloss.Color("#ff4757"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetro,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// themeIndex returns the position of the named theme, falling back to the
// first one.
func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
