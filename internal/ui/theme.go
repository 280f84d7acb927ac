package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// An empty colour means "no colour" for that role.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.Color
	Border                                        lipgloss.Border
	BarFull, BarEmpty                             string
	SymCross                                      string
	Plain                                         bool // never emit colour
}

// Themes lists the names accepted by ThemeByName.
var Themes = []string{"classic", "neon", "mono"}

// ThemeByName returns the named theme, or classic and false if the name is unknown.
func ThemeByName(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: "13", Muted: "8", Accent: "14",
			Success: "10", Error: "9", Pending: "11",
			Border:  lipgloss.RoundedBorder(),
			BarFull: "◼", BarEmpty: "◻",
			SymCross: "✖",
		}, true
	case "mono":
		return Theme{
			Name:    "mono",
			Border:  asciiBorder,
			BarFull: "#", BarEmpty: "-",
			SymCross: "!",
			Plain:    true,
		}, true
	case "", "classic":
		return classic(), true
	default:
		return classic(), false
	}
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

func classic() Theme {
	return Theme{
		Name:  "classic",
		Muted: "8", Accent: "12",
		Success: "42", Error: "9", Pending: "214",
		Border:  lipgloss.NormalBorder(),
		BarFull: "█", BarEmpty: "░",
		SymCross: "✖",
	}
}
