// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniforms

import (
	"encoding/binary"
	"testing"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordWriter records every uniform write.
type recordWriter struct {
	writes [][]byte
	err    error
}

func (rw *recordWriter) SetFromBytes(from []byte) error {
	rw.writes = append(rw.writes, append([]byte(nil), from...))
	return rw.err
}

func TestFrameCounter(t *testing.T) {
	var fc FrameCounter
	assert.Equal(t, uint32(0), fc.Value())
	for n := 1; n <= 250; n++ {
		prev := fc.Value()
		v := fc.Tick()
		assert.Equal(t, uint32(n%FrameModulus), v)
		assert.Equal(t, (prev+1)%FrameModulus, v)
		assert.Less(t, v, uint32(FrameModulus))
	}
}

func TestResourcesTick(t *testing.T) {
	rw := &recordWriter{}
	rs := &Resources{frameValue: rw}
	for range 100 {
		require.NoError(t, rs.Tick())
	}
	assert.Equal(t, uint32(0), rs.Frame())
	require.Len(t, rw.writes, 100)
	for i, w := range rw.writes {
		require.Len(t, w, 4)
		assert.Equal(t, uint32((i+1)%FrameModulus), binary.LittleEndian.Uint32(w))
	}
}

func TestResourcesTickError(t *testing.T) {
	rw := &recordWriter{err: errors.New("queue lost")}
	rs := &Resources{frameValue: rw}
	assert.Error(t, rs.Tick())
	assert.Equal(t, uint32(1), rs.Frame())
}

func TestUpdateCamera(t *testing.T) {
	rw := &recordWriter{}
	rs := &Resources{cameraValue: rw, camera: DefaultCamera(1200, 800)}
	require.NoError(t, rs.UpdateCamera(800, 800))
	assert.Equal(t, float32(1), rs.Camera().Aspect)
	require.Len(t, rw.writes, 1)
	assert.Len(t, rw.writes[0], 64)
}

func TestNew(t *testing.T) {
	fw, cw := &recordWriter{}, &recordWriter{}
	cam := DefaultCamera(1200, 800)
	rs, err := New(fw, cw, cam)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), rs.Frame())
	require.Len(t, fw.writes, 1)
	assert.Equal(t, []byte{0, 0, 0, 0}, fw.writes[0])
	require.Len(t, cw.writes, 1)
	assert.Len(t, cw.writes[0], 64)

	_, err = New(fw, &recordWriter{err: errors.New("no buffer")}, cam)
	assert.ErrorContains(t, err, "camera")
}

// project applies the column-major matrix m to p and divides by w.
func project(m math32.Matrix4, p math32.Vector3) (x, y, z float32) {
	in := [4]float32{p.X, p.Y, p.Z, 1}
	var out [4]float32
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r] += m[c*4+r] * in[c]
		}
	}
	return out[0] / out[3], out[1] / out[3], out[2] / out[3]
}

func TestCameraViewProj(t *testing.T) {
	cam := DefaultCamera(1200, 800)
	assert.InDelta(t, 1.5, cam.Aspect, 1e-6)

	vp := cam.ViewProj()

	// the target is on the view axis, inside the depth range
	x, y, z := project(vp, cam.Target)
	assert.InDelta(t, 0, x, 1e-4)
	assert.InDelta(t, 0, y, 1e-4)
	assert.Greater(t, z, float32(0))
	assert.Less(t, z, float32(1))

	// the ground receding from the camera stays in front of it
	_, _, zn := project(vp, math32.Vec3(0, 0, 0))
	_, _, zf := project(vp, math32.Vec3(0, 0, -28.5))
	assert.Less(t, zn, zf)

	// a wider surface shrinks x
	wide := cam
	wide.SetAspect(2400, 800)
	p := math32.Vec3(1, 0, -10)
	xn, _, _ := project(vp, p)
	xw, _, _ := project(wide.ViewProj(), p)
	assert.InDelta(t, xn/2, xw, 1e-4)
}

func TestSetAspectZeroHeight(t *testing.T) {
	cam := DefaultCamera(1200, 800)
	cam.SetAspect(100, 0)
	assert.InDelta(t, 1.5, cam.Aspect, 1e-6)
}
