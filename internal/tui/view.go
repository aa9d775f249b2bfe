package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"meshwire/internal/canvas"
	"meshwire/internal/render"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header
	header := titleStyle.Render(" meshwire ─ terminal wireframe viewer ")
	header = lipgloss.NewStyle().Width(lo.contentW).Padding(0).Render(header)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(m.l.View())
	}

	var stats render.Stats
	var view string
	switch {
	case m.showObjects:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 2
		}
		maxW := min(lo.w, max(32, colW+4))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.h-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		view = lipgloss.Place(lo.w, lo.h, lipgloss.Center, lipgloss.Center, box)
	case m.pasteMode:
		m.ta.SetWidth(lo.w)
		m.ta.SetHeight(min(lo.h, 12))
		view = lipgloss.NewStyle().Width(lo.w).Height(lo.h).Render(m.ta.View())
	default:
		var mesh string
		mesh, stats = m.renderMesh(lo.w, lo.h)
		view = lipgloss.NewStyle().Width(lo.w).Height(lo.h).Render(mesh)
	}

	// Body row
	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", view)
	} else {
		body = view
	}

	// Footer / help
	status := m.status
	if m.loading {
		status = m.spin.View() + " " + status
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, dimStyle.Render(" "+status+" "), m.renderHelp())
	v, l, f := m.scene.Counts()
	counts := dimStyle.Render(fmt.Sprintf("  obj=%d v=%d l=%d f=%d seg=%d skip=%d  ",
		m.scene.Len(), v, l, f, stats.Drawn, stats.Skipped))
	spacerW := max(0, lo.contentW-lipgloss.Width(left)-lipgloss.Width(counts))
	right := lipgloss.Place(spacerW+lipgloss.Width(counts), 1, lipgloss.Right, lipgloss.Center, counts)
	footer := lipgloss.NewStyle().Width(lo.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).Render(ui)
}

// renderMesh rasterizes the scene onto a w×h cell braille canvas.
func (m Model) renderMesh(w, h int) (string, render.Stats) {
	b := canvas.NewBraille(w, h)
	st := m.raster.Draw(b, m.scene)
	return b.Render(), st
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"drag/←→↑↓ rotate",
		"rdrag/wasd pan",
		"wheel/+- dolly",
		"Tab files",
		"Enter open",
		"p paste",
		"t objects",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
