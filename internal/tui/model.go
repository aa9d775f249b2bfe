package tui

import (
	"os"

	list "github.com/charmbracelet/bubbles/list"
	spinner "github.com/charmbracelet/bubbles/spinner"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"meshwire/internal/config"
	"meshwire/internal/logger"
	"meshwire/internal/render"
	"meshwire/internal/scene"
)

type Model struct {
	width  int
	height int

	cfg    *config.Config
	raster render.Rasterizer

	showSidebar bool
	helpVisible bool

	status    string
	statusSeq int

	// File explorer
	cwd     string
	l       list.Model
	items   []list.Item
	selPath string

	// Data
	scene *scene.Scene

	// async load
	loading bool
	spin    spinner.Model

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// drag state, in terminal cells
	rotating bool
	panning  bool
	lastX    int
	lastY    int

	// object table
	showObjects bool
	tbl         table.Model
}

// New builds a viewer with an empty scene.
func New(cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	st, err := cfg.Viewer.Style()
	if err != nil {
		logger.Warn("invalid viewer colours, using defaults", zap.Error(err))
		st = render.DefaultStyle()
	}
	m := Model{
		cfg:         cfg,
		raster:      render.Rasterizer{Style: st},
		showSidebar: false,
		helpVisible: true,
		status:      "meshwire ready",
		scene:       scene.New(),
	}
	m.cwd = cfg.Viewer.Dir
	if m.cwd == "" {
		m.cwd, _ = os.Getwd()
	}
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste OBJ text here (v, l, f, o). Ctrl+S to add it to the scene; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	// object table setup
	m.tbl = table.New(table.WithColumns(objectColumns()), table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.spin = spinner.New()
	m.spin.Spinner = spinner.Dot
	m.spin.Style = titleStyle
	m.refreshDir()
	return m
}

// NewWithPath starts loading a file's meshes at launch.
func NewWithPath(cfg *config.Config, path string) Model {
	m := New(cfg)
	m.selPath = path
	m.loading = true
	return m
}

// Scene returns the viewer's scene.
func (m Model) Scene() *scene.Scene { return m.scene }

func (m Model) Init() tea.Cmd {
	if m.loading && m.selPath != "" {
		return tea.Batch(loadCmd(m.selPath), m.spin.Tick)
	}
	return nil
}
