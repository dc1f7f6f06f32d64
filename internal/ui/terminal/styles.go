package terminal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/servicestudio/shell/internal/ui/ghost"
)

// Palette holds the host colors.
type Palette struct {
	Desktop string
	Surface string
	Text    string
	Muted   string
	Accent  string
	Border  string
}

// DefaultPalette returns the dark host colors.
func DefaultPalette() Palette {
	return Palette{
		Desktop: "#0a0a0b",
		Surface: "#1a1a1b",
		Text:    "#ffffff",
		Muted:   "#909090",
		Accent:  "#4ade80",
		Border:  "#333333",
	}
}

// Styles are the lipgloss styles of every canvas element.
type Styles struct {
	cells  [styleCount]lipgloss.Style
	Status lipgloss.Style
	Help   lipgloss.Style
}

// NewStyles builds the host styles. The tab ghost uses the ghost palette.
func NewStyles(p Palette, ghostPalette ghost.Palette) Styles {
	surface := lipgloss.Color(p.Surface)
	text := lipgloss.Color(p.Text)
	muted := lipgloss.Color(p.Muted)
	accent := lipgloss.Color(p.Accent)

	var s Styles
	s.cells[styleDesktop] = lipgloss.NewStyle().Background(lipgloss.Color(p.Desktop))
	s.cells[styleBody] = lipgloss.NewStyle().Background(surface).Foreground(muted)
	s.cells[styleBorder] = lipgloss.NewStyle().Background(surface).Foreground(lipgloss.Color(p.Border))
	s.cells[styleBorderFront] = lipgloss.NewStyle().Background(surface).Foreground(accent)
	s.cells[styleStrip] = lipgloss.NewStyle().Background(surface).Foreground(muted)
	s.cells[styleHeaderImage] = lipgloss.NewStyle().Background(surface).Foreground(accent).Bold(true)
	s.cells[styleTab] = lipgloss.NewStyle().Background(lipgloss.Color(p.Border)).Foreground(text)
	s.cells[styleTabActive] = lipgloss.NewStyle().Background(accent).Foreground(lipgloss.Color(p.Desktop)).Bold(true)
	s.cells[styleTabHidden] = lipgloss.NewStyle().Background(surface).Foreground(surface)
	s.cells[styleTabFixed] = lipgloss.NewStyle().Background(lipgloss.Color(p.Border)).Foreground(muted).Italic(true)
	s.cells[styleGhostTab] = lipgloss.NewStyle().
		Background(lipgloss.Color(rgbColor(ghostPalette.Background))).
		Foreground(lipgloss.Color("#1F2328"))
	s.cells[styleGhostFacsimile] = lipgloss.NewStyle().Foreground(accent)

	s.Status = lipgloss.NewStyle().Foreground(muted)
	s.Help = lipgloss.NewStyle().Foreground(muted)
	return s
}

// rgbColor drops the alpha byte of #AARRGGBB colors, which terminals cannot show.
func rgbColor(hex string) string {
	if len(hex) == 9 && hex[0] == '#' {
		return "#" + hex[3:]
	}
	return hex
}
