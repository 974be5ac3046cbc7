// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package uniforms maintains the frame counter and the camera,
// together with the vertex-stage uniform vars that mirror them
// on the GPU.
package uniforms

import (
	"fmt"
	"unsafe"

	"cogentcore.org/core/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// Writer uploads the bytes of a uniform value; *gpu.Value
// implements it. A write is ordered before any later submitted draw.
type Writer interface {
	SetFromBytes(from []byte) error
}

// AddVars adds the frame group (@group(0)) and the camera group
// (@group(1)) to vs, each holding one vertex-stage uniform with
// one value.
func AddVars(vs *gpu.Vars) (frame, camera *gpu.Var) {
	fgp := vs.AddGroup(gpu.Uniform, "Frame")
	frame = fgp.AddStruct("Frame", int(unsafe.Sizeof(FrameCounter{})), 1, gpu.VertexShader)
	cgp := vs.AddGroup(gpu.Uniform, "Camera")
	camera = cgp.AddStruct("Camera", int(unsafe.Sizeof(CameraUniform{})), 1, gpu.VertexShader)
	fgp.SetNValues(1)
	cgp.SetNValues(1)
	return frame, camera
}

// Resources owns the CPU values of the uniforms and the GPU values
// they are written to. Values are only mutated through
// [Resources.Tick] and [Resources.UpdateCamera].
type Resources struct {
	frame  FrameCounter
	camera Camera

	frameValue  Writer
	cameraValue Writer
}

// New uploads a zero frame counter and cam to the given values.
func New(frame, camera Writer, cam Camera) (*Resources, error) {
	rs := &Resources{camera: cam, frameValue: frame, cameraValue: camera}
	if err := rs.writeFrame(); err != nil {
		return nil, err
	}
	if err := rs.writeCamera(); err != nil {
		return nil, err
	}
	return rs, nil
}

func (rs *Resources) writeFrame() error {
	if err := rs.frameValue.SetFromBytes(wgpu.ToBytes([]FrameCounter{rs.frame})); err != nil {
		return fmt.Errorf("uniforms: frame: %w", err)
	}
	return nil
}

func (rs *Resources) writeCamera() error {
	cu := CameraUniform{ViewProj: rs.camera.ViewProj()}
	if err := rs.cameraValue.SetFromBytes(wgpu.ToBytes([]CameraUniform{cu})); err != nil {
		return fmt.Errorf("uniforms: camera: %w", err)
	}
	return nil
}

// Frame returns the current frame counter value.
func (rs *Resources) Frame() uint32 { return rs.frame.Value() }

// Camera returns the current camera.
func (rs *Resources) Camera() Camera { return rs.camera }

// Tick advances the frame counter and writes its new value.
// The write is visible to the next submitted draw, not to one
// already submitted.
func (rs *Resources) Tick() error {
	rs.frame.Tick()
	return rs.writeFrame()
}

// UpdateCamera recomputes the camera aspect for a new surface size
// and writes the new view-projection matrix.
func (rs *Resources) UpdateCamera(width, height uint32) error {
	rs.camera.SetAspect(width, height)
	return rs.writeCamera()
}
