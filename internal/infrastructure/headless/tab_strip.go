package headless

import (
	"github.com/servicestudio/shell/internal/application/port"
	"github.com/servicestudio/shell/internal/domain/entity"
)

// TabStrip implements port.TabStripView with tabs laid out left to right after
// the header image.
type TabStrip struct {
	window   *Window
	layout   Layout
	items    []entity.TabID
	captions map[entity.TabID]string
	opacity  map[entity.TabID]float64
	selected entity.TabID
}

var _ port.TabStripView = (*TabStrip)(nil)

// Bounds spans the full window width at the top.
func (s *TabStrip) Bounds() entity.Rect {
	return entity.Rect{X: 0, Y: 0, W: s.window.bounds.W, H: s.layout.TabHeight}
}

// HeaderImageBounds is the logo area at the leading edge.
func (s *TabStrip) HeaderImageBounds() entity.Rect {
	return entity.Rect{X: 0, Y: 0, W: s.layout.HeaderImageWidth, H: s.layout.TabHeight}
}

// TabBounds returns the slot of a tab.
func (s *TabStrip) TabBounds(id entity.TabID) (entity.Rect, bool) {
	i := s.indexOf(id)
	if i < 0 {
		return entity.Rect{}, false
	}
	width := s.layout.TabWidth
	if width <= 0 {
		width = s.layout.TabMinWidth
	}
	return entity.Rect{
		X: s.layout.HeaderImageWidth + i*width,
		Y: 0,
		W: width,
		H: s.layout.TabHeight,
	}, true
}

// Foreground returns the caption color.
func (s *TabStrip) Foreground() string {
	return s.layout.Foreground
}

// InsertTab adds a tab item at index, clamped. An existing item is moved instead.
func (s *TabStrip) InsertTab(index int, tab *entity.Tab) {
	if tab == nil {
		return
	}
	if s.indexOf(tab.ID) >= 0 {
		s.MoveTab(tab.ID, index)
		return
	}
	if index < 0 || index > len(s.items) {
		index = len(s.items)
	}
	s.items = append(s.items[:index], append([]entity.TabID{tab.ID}, s.items[index:]...)...)
	if s.captions == nil {
		s.captions = make(map[entity.TabID]string)
	}
	s.captions[tab.ID] = tab.Caption
	s.opacity[tab.ID] = 1
}

// RemoveTab drops a tab item.
func (s *TabStrip) RemoveTab(id entity.TabID) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	delete(s.opacity, id)
	delete(s.captions, id)
	if s.selected == id {
		s.selected = ""
	}
}

// MoveTab repositions a tab item.
func (s *TabStrip) MoveTab(id entity.TabID, index int) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	if index < 0 || index > len(s.items) {
		index = len(s.items)
	}
	s.items = append(s.items[:index], append([]entity.TabID{id}, s.items[index:]...)...)
}

// SelectTab marks a tab item as selected.
func (s *TabStrip) SelectTab(id entity.TabID) {
	if s.indexOf(id) < 0 {
		return
	}
	s.selected = id
}

// SetTabOpacity changes the rendering opacity of a tab item.
func (s *TabStrip) SetTabOpacity(id entity.TabID, opacity float64) {
	if s.indexOf(id) < 0 {
		return
	}
	s.opacity[id] = opacity
}

// Items returns the tab items in strip order.
func (s *TabStrip) Items() []entity.TabID {
	out := make([]entity.TabID, len(s.items))
	copy(out, s.items)
	return out
}

// Caption returns the caption recorded for a tab item.
func (s *TabStrip) Caption(id entity.TabID) string {
	return s.captions[id]
}

// Selected returns the selected tab item.
func (s *TabStrip) Selected() entity.TabID {
	return s.selected
}

// Opacity returns the opacity of a tab item, 0 when absent.
func (s *TabStrip) Opacity(id entity.TabID) float64 {
	return s.opacity[id]
}

func (s *TabStrip) indexOf(id entity.TabID) int {
	for i, item := range s.items {
		if item == id {
			return i
		}
	}
	return -1
}
