// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniforms

import (
	"cogentcore.org/core/math32"
)

// Camera is a perspective camera. Everything except Aspect is
// fixed after startup.
type Camera struct {
	// Eye is the camera position.
	Eye math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the up direction.
	Up math32.Vector3

	// FOV is the vertical field of view, in degrees.
	FOV float32

	// Near and Far are the clipping plane distances.
	Near, Far float32

	// Aspect is width / height of the surface.
	Aspect float32
}

// DefaultCamera returns the ground camera: one unit up and two
// units back, looking far down the -z axis.
func DefaultCamera(width, height uint32) Camera {
	cam := Camera{
		Eye:    math32.Vec3(0, 1, 2),
		Target: math32.Vec3(0, 0, -100),
		Up:     math32.Vec3(0, 1, 0),
		FOV:    45,
		Near:   0.1,
		Far:    1000,
	}
	cam.SetAspect(width, height)
	return cam
}

// SetAspect sets Aspect from a surface size.
// A zero height leaves Aspect unchanged.
func (cm *Camera) SetAspect(width, height uint32) {
	if height == 0 {
		return
	}
	cm.Aspect = float32(width) / float32(height)
}

// clipDepth maps OpenGL clip depth [-1, 1] to WebGPU clip depth [0, 1].
var clipDepth = math32.Matrix4{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, 0.5, 0,
	0, 0, 0.5, 1,
}

// View returns the camera view matrix.
func (cm *Camera) View() math32.Matrix4 {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(cm.Eye, cm.Target, cm.Up))
	var cview math32.Matrix4
	cview.SetTransform(cm.Eye, lookq, math32.Vec3(1, 1, 1))
	view, _ := cview.Inverse()
	return *view
}

// ViewProj returns the combined view-projection matrix in WebGPU
// clip space.
func (cm *Camera) ViewProj() math32.Matrix4 {
	view := cm.View()
	var proj math32.Matrix4
	proj.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	var pv, vp math32.Matrix4
	pv.MulMatrices(&proj, &view)
	vp.MulMatrices(&clipDepth, &pv)
	return vp
}

// CameraUniform is the uniform block uploaded for the camera.
// The layout matches the CameraUniform struct of the shader.
type CameraUniform struct {
	ViewProj math32.Matrix4
}
