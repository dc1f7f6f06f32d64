package ghost

import (
	"github.com/servicestudio/shell/internal/application/port"
	"github.com/servicestudio/shell/internal/domain/entity"
)

// Mode is the representation currently shown by a preview.
type Mode int

const (
	ModeHidden Mode = iota
	ModeTab
	ModeFacsimile
)

// String returns the mode name used in logs.
func (m Mode) String() string {
	switch m {
	case ModeTab:
		return "tab"
	case ModeFacsimile:
		return "facsimile"
	default:
		return "hidden"
	}
}

// Preview owns the single floating ghost surface of a drag session.
type Preview struct {
	surface   port.GhostSurface
	tab       TabProxy
	facsimile Facsimile
	mode      Mode
}

// NewPreview creates the ghost surface; nothing is shown until a mode is chosen.
func NewPreview(factory port.GhostFactory, tab TabProxy, facsimile Facsimile) *Preview {
	surface := factory.NewGhostSurface()
	surface.SetDecorations(port.DecorationsBorderOnly)
	return &Preview{
		surface:   surface,
		tab:       tab,
		facsimile: facsimile,
	}
}

// Mode returns the current representation.
func (p *Preview) Mode() Mode {
	return p.mode
}

// IsClosed reports whether the surface was released.
func (p *Preview) IsClosed() bool {
	return p.surface == nil
}

// ShowTab switches to the tab proxy. Returns true when the representation changed.
func (p *Preview) ShowTab() bool {
	return p.switchTo(ModeTab, p.tab, port.DecorationsNone)
}

// ShowFacsimile switches to the window facsimile. Returns true when the
// representation changed.
func (p *Preview) ShowFacsimile() bool {
	return p.switchTo(ModeFacsimile, p.facsimile, port.DecorationsBorderOnly)
}

func (p *Preview) switchTo(mode Mode, content port.GhostContent, decorations port.Decorations) bool {
	if p.surface == nil || p.mode == mode {
		return false
	}
	p.surface.SetDecorations(decorations)
	p.surface.SetContent(content)
	p.surface.InvalidateMeasure()
	p.surface.Show()
	p.mode = mode
	return true
}

// Show re-shows the surface in its current representation.
func (p *Preview) Show() {
	if p.surface == nil || p.mode == ModeHidden {
		return
	}
	p.surface.Show()
}

// MoveTo positions the surface in screen coordinates.
func (p *Preview) MoveTo(screen entity.Point) {
	if p.surface == nil {
		return
	}
	p.surface.MoveTo(screen)
}

// Close destroys the surface. Safe to call more than once.
func (p *Preview) Close() {
	if p.surface == nil {
		return
	}
	p.surface.Close()
	p.surface = nil
	p.mode = ModeHidden
}
