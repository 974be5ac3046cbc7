// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package saver

import (
	"cogentcore.org/core/gpu"
	"github.com/smaragden/xscreensaver-wgpu/gfx"
)

// Surface is the part of the graphics context a [Scene] drives;
// *gfx.Context implements it.
type Surface interface {
	// Reconfigure applies a new size, returning false for a no-op.
	Reconfigure(width, height uint32) bool

	// Render draws one frame of g with pl.
	Render(pl *gpu.GraphicsPipeline, g gfx.Drawable) error
}

// CameraUpdater recomputes the camera for a new surface size;
// *uniforms.Resources implements it.
type CameraUpdater interface {
	UpdateCamera(width, height uint32) error
}

// Scene is the [Renderer] for the ground: one pipeline drawing the
// instanced geometry with the frame and camera uniforms.
type Scene struct {
	Surface  Surface
	Camera   CameraUpdater
	Pipeline *gpu.GraphicsPipeline
	Geometry gfx.Drawable

	// FixAspect recomputes the camera aspect on every accepted resize.
	FixAspect bool
}

// Resize reconfigures the surface and, if FixAspect is set and the
// size actually changed, updates the camera.
func (sc *Scene) Resize(width, height uint32) error {
	if !sc.Surface.Reconfigure(width, height) || !sc.FixAspect {
		return nil
	}
	return sc.Camera.UpdateCamera(width, height)
}

// Render draws one frame.
func (sc *Scene) Render() error {
	return sc.Surface.Render(sc.Pipeline, sc.Geometry)
}
