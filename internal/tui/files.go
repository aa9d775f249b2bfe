package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"meshwire/internal/logger"
	"meshwire/internal/meshfile"
	"meshwire/internal/scene"
	"meshwire/internal/vecmath"
)

type fileItem struct {
	title, desc string
	path        string
	isDir       bool
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// meshLoadedMsg carries the result of a background load.
type meshLoadedMsg struct {
	path     string
	objects  []*scene.Object
	warnings []meshfile.Warning
	err      error
}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var dirs, files []list.Item
	for _, e := range entries {
		name := e.Name()
		p := filepath.Join(m.cwd, name)
		if e.IsDir() {
			if !strings.HasPrefix(name, ".") {
				dirs = append(dirs, fileItem{title: name + "/", desc: "dir", path: p, isDir: true})
			}
			continue
		}
		if meshfile.Supported(name) {
			files = append(files, fileItem{title: name, desc: strings.ToLower(filepath.Ext(name)), path: p})
		}
	}
	byTitle := func(items []list.Item) {
		sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	}
	byTitle(dirs)
	byTitle(files)
	items := []list.Item{fileItem{title: "../", desc: "dir", path: filepath.Dir(m.cwd), isDir: true}}
	items = append(items, dirs...)
	items = append(items, files...)
	m.items = items
	m.l.SetItems(items)
	if len(files) == 0 {
		m.status = "no mesh files in " + filepath.Base(m.cwd)
	}
}

// open enters a directory or starts loading a mesh file.
func (m *Model) open(it fileItem) tea.Cmd {
	if it.isDir {
		m.cwd = it.path
		m.refreshDir()
		m.l.ResetFilter()
		return nil
	}
	if m.loading {
		return m.setStatus("busy loading " + filepath.Base(m.selPath))
	}
	m.selPath = it.path
	m.loading = true
	m.status = "loading " + it.title
	return tea.Batch(loadCmd(it.path), m.spin.Tick)
}

// loadCmd parses a mesh file off the update loop.
func loadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		objs, warns, err := meshfile.Load(path)
		return meshLoadedMsg{path: path, objects: objs, warnings: warns, err: err}
	}
}

// addObjects places new objects in front of the camera and appends them.
func (m *Model) addObjects(source string, objs []*scene.Object, warns []meshfile.Warning) tea.Cmd {
	scene.Offset(objs, vecmath.Vec3{0, 0, m.cfg.Viewer.InitialDepth})
	m.scene.Append(objs...)
	if m.showObjects {
		m.refreshObjectTable()
	}
	v, l, f := countObjects(objs)
	logger.Info("objects added",
		zap.String("source", source),
		zap.Int("objects", len(objs)),
		zap.Int("warnings", len(warns)))
	msg := fmt.Sprintf("loaded: %s  objects=%d v=%d l=%d f=%d", source, len(objs), v, l, f)
	if len(warns) > 0 {
		msg += fmt.Sprintf("  warnings=%d (first: %s)", len(warns), warns[0])
	}
	return m.setStatus(msg)
}

func (m *Model) handleLoaded(msg meshLoadedMsg) tea.Cmd {
	m.loading = false
	if msg.err != nil {
		logger.Error("load failed", zap.String("path", msg.path), zap.Error(msg.err))
		return m.setStatus("load error: " + msg.err.Error())
	}
	return m.addObjects(filepath.Base(msg.path), msg.objects, msg.warnings)
}

func countObjects(objs []*scene.Object) (v, l, f int) {
	for _, o := range objs {
		v += len(o.Vertices)
		l += len(o.Lines)
		f += len(o.Faces)
	}
	return v, l, f
}
