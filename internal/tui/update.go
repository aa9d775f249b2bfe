package tui

import (
	"fmt"
	"strings"
	"time"

	list "github.com/charmbracelet/bubbles/list"
	spinner "github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"meshwire/internal/meshfile"
)

const (
	// keyboard steps, in braille dots
	keyRotateStep = 8
	keyPanStep    = 7
)

type statusClearMsg struct{ seq int }

// setStatus shows s and schedules its removal.
func (m *Model) setStatus(s string) tea.Cmd {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	d := m.cfg.Viewer.StatusTimeout
	if d <= 0 {
		return nil
	}
	return tea.Tick(d, func(time.Time) tea.Msg { return statusClearMsg{seq: seq} })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeSidebar()
	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case meshLoadedMsg:
		return m, m.handleLoaded(msg)
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		if m.showObjects {
			switch msg.String() {
			case "t", "esc":
				m.showObjects = false
				return m, nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		return m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
		// the sidebar gets wheel events only when the pointer is over it
		if m.showSidebar && msg.X < m.sidebarWidth() {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		return m, nil
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		return m, m.setStatus("view mode")
	case "ctrl+s":
		text := m.ta.Value()
		if strings.TrimSpace(text) == "" {
			return m, m.setStatus("paste: empty")
		}
		objs, warns := meshfile.ParseOBJ(strings.NewReader(text))
		m.pasteMode = false
		m.ta.Blur()
		if len(objs) == 0 {
			return m, m.setStatus(fmt.Sprintf("paste: no objects (%d warnings)", len(warns)))
		}
		return m, m.addObjects("<pasted>", objs, warns)
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lo := m.layout()
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "down", "pgup", "pgdown", "/":
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
	}
	switch msg.String() {
	case "up":
		m.scene.Rotate(0, -keyRotateStep, lo.dotsWide())
	case "down":
		m.scene.Rotate(0, keyRotateStep, lo.dotsWide())
	case "left":
		m.scene.Rotate(-keyRotateStep, 0, lo.dotsWide())
	case "right":
		m.scene.Rotate(keyRotateStep, 0, lo.dotsWide())
	case "w":
		m.scene.Pan(0, -keyPanStep)
	case "s":
		m.scene.Pan(0, keyPanStep)
	case "a":
		m.scene.Pan(-keyPanStep, 0)
	case "d":
		m.scene.Pan(keyPanStep, 0)
	case "+", "=":
		m.scene.Dolly(m.cfg.Viewer.WheelUnits)
	case "-", "_":
		m.scene.Dolly(-m.cfg.Viewer.WheelUnits)
	case "tab":
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
			m.resizeSidebar()
		}
	case "p":
		m.pasteMode = true
		m.ta.SetValue("")
		m.ta.Focus()
		m.status = "paste mode"
	case "t":
		m.showObjects = true
		m.refreshObjectTable()
	case "h":
		m.helpVisible = !m.helpVisible
	case "enter":
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				return m, m.open(it)
			}
		}
	default:
		if m.showSidebar {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// updateMouse maps drags and wheel notches on the canvas to scene interactions.
// Cell deltas are converted to braille dots so sensitivities stay per pixel.
func (m *Model) updateMouse(msg tea.MouseMsg) {
	lo := m.layout()
	switch msg.Action {
	case tea.MouseActionPress:
		if !lo.contains(msg.X, msg.Y) {
			return
		}
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.rotating = true
		case tea.MouseButtonRight:
			m.panning = true
		case tea.MouseButtonWheelUp:
			m.scene.Dolly(-m.cfg.Viewer.WheelUnits)
			return
		case tea.MouseButtonWheelDown:
			m.scene.Dolly(m.cfg.Viewer.WheelUnits)
			return
		default:
			return
		}
		m.lastX, m.lastY = msg.X, msg.Y
	case tea.MouseActionRelease:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.rotating = false
		case tea.MouseButtonRight:
			m.panning = false
		default:
			// X10 reporting does not say which button was released
			m.rotating, m.panning = false, false
		}
	case tea.MouseActionMotion:
		if !m.rotating && !m.panning {
			return
		}
		dx := float64((msg.X - m.lastX) * 2)
		dy := float64((msg.Y - m.lastY) * 4)
		m.lastX, m.lastY = msg.X, msg.Y
		if m.panning {
			m.scene.Pan(dx, dy)
		}
		if m.rotating {
			m.scene.Rotate(dx, dy, lo.dotsWide())
		}
	}
}

func (m *Model) resizeSidebar() {
	if m.showSidebar {
		m.l.SetSize(m.sidebarWidth()-2, m.layout().contentH-2)
	}
}
