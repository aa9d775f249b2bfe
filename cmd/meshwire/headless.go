package main

import (
	"bufio"
	"io"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"meshwire/internal/canvas"
	"meshwire/internal/config"
	"meshwire/internal/logger"
	"meshwire/internal/meshfile"
	"meshwire/internal/render"
	"meshwire/internal/scene"
	"meshwire/internal/vecmath"
)

var spewConfig = &spew.ConfigState{
	Indent:                  "  ",
	DisableCapacities:       true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// loadScene reads a mesh file into a fresh scene placed at the configured depth.
func loadScene(cfg *config.Config, path string) (*scene.Scene, error) {
	if path == "" {
		return nil, errors.New("no mesh file given")
	}
	objs, warns, err := meshfile.Load(path)
	if err != nil {
		return nil, err
	}
	for _, w := range warns {
		logger.Sugar.Debugf("%s: %s", path, w)
	}
	scene.Offset(objs, vecmath.Vec3{0, 0, cfg.Viewer.InitialDepth})
	sc := scene.New()
	sc.Append(objs...)
	return sc, nil
}

// runHeadless renders and/or dumps the mesh at path without starting the TUI.
func runHeadless(cfg *config.Config, path, snapshot string, dump bool, out io.Writer) error {
	sc, err := loadScene(cfg, path)
	if err != nil {
		return err
	}
	if dump {
		spewConfig.Fdump(out, sc.Objects())
	}
	if snapshot == "" {
		return nil
	}
	st, err := cfg.Viewer.Style()
	if err != nil {
		return err
	}
	stats, err := writeSnapshot(sc, st, cfg.Snapshot.Width, cfg.Snapshot.Height, snapshot)
	if err != nil {
		return err
	}
	logger.Info("snapshot written",
		zap.String("path", snapshot),
		zap.Int("segments", stats.Drawn),
		zap.Int("skipped", stats.Skipped))
	return nil
}

func writeSnapshot(sc *scene.Scene, st render.Style, w, h int, path string) (render.Stats, error) {
	if w <= 0 || h <= 0 {
		return render.Stats{}, errors.Errorf("invalid snapshot size %dx%d", w, h)
	}
	img := canvas.NewImage(w, h)
	stats := render.Rasterizer{Style: st}.Draw(img, sc)

	f, err := os.Create(path)
	if err != nil {
		return stats, errors.Wrap(err, "create snapshot")
	}
	bw := bufio.NewWriter(f)
	if err := img.WritePNG(bw); err != nil {
		f.Close()
		return stats, errors.Wrap(err, "encode snapshot")
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return stats, errors.Wrap(err, "write snapshot")
	}
	return stats, errors.Wrap(f.Close(), "close snapshot")
}
