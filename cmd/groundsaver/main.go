// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command groundsaver is an X11 screensaver that draws an endless
// instanced ground plane with WebGPU. Under xscreensaver it renders
// into the window named by XSCREENSAVER_WINDOW; otherwise it opens
// its own window.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"cogentcore.org/core/base/logx"
	"github.com/smaragden/xscreensaver-wgpu/config"
	"github.com/smaragden/xscreensaver-wgpu/display"
	"github.com/smaragden/xscreensaver-wgpu/gfx"
	"github.com/smaragden/xscreensaver-wgpu/ground"
	"github.com/smaragden/xscreensaver-wgpu/saver"
	"github.com/smaragden/xscreensaver-wgpu/shaders"
	"github.com/smaragden/xscreensaver-wgpu/uniforms"
	"golang.org/x/sys/unix"
)

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

// run returns the process exit code: 0 on a clean stop or when no
// window can be opened, 1 on a configuration or GPU failure.
func run() int {
	cfg, err := config.Load(os.LookupEnv)
	if err != nil {
		fmt.Fprintln(os.Stderr, "groundsaver:", err)
		return 1
	}
	lv, _ := cfg.Level()
	logx.UserLevel = lv

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()
	if err := stopWithParent(unix.SIGTERM); err != nil {
		slog.Warn("groundsaver: parent death signal", "err", err)
	}

	src := display.SourceFromEnv(os.LookupEnv, cfg.WindowWidth, cfg.WindowHeight)
	ses, err := display.Open(src)
	if errors.Is(err, display.ErrWindowInit) {
		slog.Error("groundsaver: no window, not starting", "err", err)
		return 0
	}
	if err != nil {
		slog.Error("groundsaver: display", "err", err)
		return 1
	}
	defer ses.Close()

	if err := render(ctx, cfg, ses); err != nil {
		slog.Error("groundsaver: stopped", "err", err)
		return 1
	}
	return 0
}

// render builds the GPU resources for ses and runs the frame loop.
// The graphics context releases its pipeline and var buffers before
// its device; the caller closes ses last.
func render(ctx context.Context, cfg *config.Config, ses *display.Session) error {
	width, height := ses.Size()
	gc, err := gfx.New(ctx, ses.Handle(), width, height)
	if err != nil {
		return err
	}
	defer gc.Release()

	vars := gc.System.Vars()
	geom := ground.AddVars(vars)
	frame, camera := uniforms.AddVars(vars)
	pl, err := gfx.NewPipeline(gc, "ground", shaders.Ground)
	if err != nil {
		return err
	}
	if err := gc.Config(); err != nil {
		return err
	}
	if err := geom.SetValues(); err != nil {
		return err
	}
	rs, err := uniforms.New(frame.Values.CurrentValue(), camera.Values.CurrentValue(), uniforms.DefaultCamera(width, height))
	if err != nil {
		return err
	}
	sc := &saver.Scene{
		Surface:   gc,
		Camera:    rs,
		Pipeline:  pl,
		Geometry:  geom,
		FixAspect: cfg.FixAspectOnResize,
	}

	pc := saver.NewPacer(cfg.FPS)
	defer pc.Stop()
	return saver.Run(ctx, saver.Loop{
		Events:   ses,
		Renderer: sc,
		Ticker:   rs,
		Pacer:    pc,
	})
}
