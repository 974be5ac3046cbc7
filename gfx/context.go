// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gfx owns the GPU, the presentable surface and the
// graphics system drawing into it, and implements the surface
// (re)configuration and per-frame submission protocol.
package gfx

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/smaragden/xscreensaver-wgpu/display"
)

// ClearLinear is the linear color each frame is cleared to.
var ClearLinear = [3]float32{0.01, 0, 0.01}

// ClearColor returns [ClearLinear] as the sRGB color the render
// pass expects.
func ClearColor() color.RGBA {
	r, g, b := gpu.SRGBFromLinear(ClearLinear[0], ClearLinear[1], ClearLinear[2])
	return colors.FromFloat32(r, g, b, 1)
}

// Drawable records its draw commands into a render pass, after
// the pipeline and its uniform groups have been bound.
type Drawable interface {
	Draw(pl *gpu.GraphicsPipeline, rp *wgpu.RenderPassEncoder)
}

// Context is the graphics context: it must outlive every var,
// value and pipeline of its System. It is driven from a single
// thread and is not safe for concurrent use.
type Context struct {
	// GPU is the selected adapter.
	GPU *gpu.GPU

	// Surface is the window surface, which owns the device.
	Surface *gpu.Surface

	// System holds the vars and pipelines rendering to Surface.
	System *gpu.GraphicsSystem

	// size is the applied surface size; never zero.
	size image.Point

	// setSize applies a new size to the surface.
	setSize func(image.Point)
}

// New creates a surface for the window h, selects an adapter,
// requests a device and configures the surface at the given size
// with FIFO presentation and the first format the surface reports.
// Adapter and device failures wrap [ErrDeviceAcquisition].
func New(ctx context.Context, h display.WindowHandle, width, height uint32) (*Context, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("gfx: invalid surface size %dx%d", width, height)
	}
	sd, err := SurfaceDescriptor(h)
	if err != nil {
		return nil, err
	}
	wsurf := gpu.Instance().CreateSurface(sd)
	if wsurf == nil {
		return nil, fmt.Errorf("%w: surface creation failed", ErrDeviceAcquisition)
	}
	if err := ctx.Err(); err != nil {
		wsurf.Release()
		return nil, err
	}
	gp := gpu.NewGPU(wsurf)
	if gp == nil {
		wsurf.Release()
		return nil, fmt.Errorf("%w: no adapter", ErrDeviceAcquisition)
	}
	logAdapter(gp)

	caps := wsurf.GetCapabilities(gp.GPU)
	if len(caps.Formats) == 0 || len(caps.AlphaModes) == 0 {
		wsurf.Release()
		gp.Release()
		return nil, fmt.Errorf("%w: surface is incompatible with the adapter", ErrDeviceAcquisition)
	}
	if err := ctx.Err(); err != nil {
		wsurf.Release()
		gp.Release()
		return nil, err
	}
	size := image.Pt(int(width), int(height))
	sf := gpu.NewSurface(gp, wsurf, size, 1, gpu.UndefinedType)
	if sf.Device() == nil {
		sf.Release()
		gp.Release()
		return nil, fmt.Errorf("%w: device", ErrDeviceAcquisition)
	}
	gc := &Context{GPU: gp, Surface: sf, size: size, setSize: sf.SetSize}
	gc.System = gpu.NewGraphicsSystem(gp, "groundsaver", sf)
	gc.System.SetClearColor(ClearColor())
	slog.Info("gfx: surface configured", "format", caps.Formats[0], "view", sf.Format.Format, "alpha", caps.AlphaModes[0], "width", width, "height", height)
	return gc, nil
}

// logAdapter reports the adapter chosen by [gpu.NewGPU].
func logAdapter(gp *gpu.GPU) {
	slog.Info("gfx: adapter selected", "name", gp.DeviceName, "backend", gp.Properties.BackendType, "type", gp.Properties.AdapterType)
}

// Size returns the applied surface size.
func (gc *Context) Size() (uint32, uint32) {
	return uint32(gc.size.X), uint32(gc.size.Y)
}

// Format returns the texture format the pipelines render in.
func (gc *Context) Format() wgpu.TextureFormat { return gc.Surface.Format.Format }

// Config configures the vars of the System and builds its
// pipelines. Every var and pipeline must have been added first.
func (gc *Context) Config() error {
	gc.System.Config()
	for _, pl := range gc.System.GraphicsPipelines {
		if err := pl.Config(false); err != nil {
			return fmt.Errorf("gfx: pipeline %s: %w", pl.Name, err)
		}
	}
	return nil
}

// Reconfigure applies a new surface size. It does nothing and
// returns false if the size is unchanged or either dimension is zero.
// It must not be called while a frame is being rendered.
func (gc *Context) Reconfigure(width, height uint32) bool {
	if width == 0 || height == 0 {
		return false
	}
	sz := image.Pt(int(width), int(height))
	if sz == gc.size {
		return false
	}
	gc.size = sz
	gc.setSize(sz)
	slog.Debug("gfx: surface reconfigured", "width", width, "height", height)
	return true
}

// Render draws one frame: it acquires the next surface texture,
// clears it, binds pl with all of its uniform groups, records g,
// then submits and presents. A texture acquisition failure wraps
// [ErrSurfaceAcquisition].
func (gc *Context) Render(pl *gpu.GraphicsPipeline, g Drawable) error {
	rp, err := gc.System.BeginRenderPass()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceAcquisition, err)
	}
	if err := pl.BindPipeline(rp); err != nil {
		rp.End()
		gc.System.EndRenderPass(rp)
		return fmt.Errorf("gfx: bind %s: %w", pl.Name, err)
	}
	g.Draw(pl, rp)
	rp.End()
	err = gc.System.SubmitRender(rp)
	gc.Surface.Present()
	if err != nil {
		return fmt.Errorf("gfx: submit: %w", err)
	}
	return nil
}

// Release releases the system (pipelines and var buffers), the
// surface with its device, the adapter and finally the instance.
func (gc *Context) Release() {
	if gc.System != nil {
		gc.System.Release()
		gc.System = nil
	}
	if gc.Surface != nil {
		gc.Surface.Release()
		gc.Surface = nil
	}
	if gc.GPU != nil {
		gc.GPU.Release()
		gc.GPU = nil
	}
	gpu.ReleaseInstance()
}
