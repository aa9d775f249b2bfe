package tui

const (
	headerHeight = 1
	footerHeight = 2
)

// layout is the screen geometry shared by View and mouse handling.
type layout struct {
	contentW, contentH int
	sidebarW           int
	// canvas origin and size in cells
	x, y, w, h int
}

func (m Model) layout() layout {
	var lo layout
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	lo.contentW = max(10, m.width)
	if m.showSidebar {
		lo.sidebarW = m.sidebarWidth()
		lo.x = lo.sidebarW + 1
	}
	lo.y = headerHeight
	lo.w = max(10, lo.contentW-lo.sidebarW-1)
	lo.h = lo.contentH
	return lo
}

func (m Model) sidebarWidth() int {
	if m.cfg.Viewer.SidebarWidth > 4 {
		return m.cfg.Viewer.SidebarWidth
	}
	return 28
}

func (lo layout) contains(cx, cy int) bool {
	return cx >= lo.x && cx < lo.x+lo.w && cy >= lo.y && cy < lo.y+lo.h
}

// dotsWide is the canvas width in braille dots, the pixel width used for
// rotation sensitivity.
func (lo layout) dotsWide() float64 {
	return float64(lo.w * 2)
}
