// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ground

import (
	"testing"

	"cogentcore.org/core/gpu"
	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMesh(t *testing.T) {
	require.Len(t, Vertices, 4)
	require.Len(t, Indices, 6)
	for _, ix := range Indices {
		assert.Less(t, int(ix), len(Vertices))
	}
	// two triangles sharing the 0-2 diagonal cover the quad
	assert.Equal(t, []uint16{0, 1, 2}, Indices[:3])
	assert.Equal(t, []uint16{0, 2, 3}, Indices[3:])
	for _, v := range Vertices {
		assert.Zero(t, v.Position[1])
	}
}

func TestInstances(t *testing.T) {
	insts := Instances()
	require.Len(t, insts, NumInstances)
	assert.Zero(t, insts[0].Position.Z)
	assert.InDelta(t, -28.5, insts[19].Position.Z, 1e-5)
	for i, in := range insts {
		assert.InDelta(t, -(float32(i)/20)*30, in.Position.Z, 1e-5)
		assert.Zero(t, in.Position.X)
		assert.Zero(t, in.Position.Y)
		assert.Equal(t, math32.NewQuat(0, 0, 0, 1), in.Rotation)
	}
}

func TestModelColumns(t *testing.T) {
	cols := ModelColumns(Instances())
	for c := range cols {
		require.Len(t, cols[c], NumInstances)
	}
	for i := range NumInstances {
		// pure translation: identity rotation part, z in column 3
		assert.Equal(t, math32.Vec4(1, 0, 0, 0), cols[0][i])
		assert.Equal(t, math32.Vec4(0, 1, 0, 0), cols[1][i])
		assert.Equal(t, math32.Vec4(0, 0, 1, 0), cols[2][i])
		assert.Zero(t, cols[3][i].X)
		assert.Zero(t, cols[3][i].Y)
		assert.InDelta(t, -(float32(i)/20)*30, cols[3][i].Z, 1e-5)
		assert.Equal(t, float32(1), cols[3][i].W)
	}
}

func TestVertexLayout(t *testing.T) {
	vs := &gpu.Vars{}
	g := AddVars(vs)
	require.NoError(t, vs.Config(&gpu.Device{}))

	assert.Equal(t, 0, g.Pos.Binding)
	assert.Equal(t, 1, g.Color.Binding)
	assert.Equal(t, gpu.Index, g.Index.Role)
	assert.Same(t, g.Index, vs.VertexGroup().IndexVar())

	lays := vs.VertexLayout()
	require.Len(t, lays, 6)
	for i, lay := range lays {
		require.Len(t, lay.Attributes, 1)
		at := lay.Attributes[0]
		assert.Equal(t, uint32(i), at.ShaderLocation)
		assert.Zero(t, at.Offset)
		if i < 2 {
			assert.Equal(t, wgpu.VertexStepModeVertex, lay.StepMode)
			assert.Equal(t, uint64(12), lay.ArrayStride)
			assert.Equal(t, wgpu.VertexFormatFloat32x3, at.Format)
			continue
		}
		assert.Equal(t, wgpu.VertexStepModeInstance, lay.StepMode)
		assert.Equal(t, uint64(16), lay.ArrayStride)
		assert.Equal(t, wgpu.VertexFormatFloat32x4, at.Format)
	}
}

func TestBuffersSize(t *testing.T) {
	assert.Len(t, wgpu.ToBytes(Indices), 12)
	for _, col := range ModelColumns(Instances()) {
		assert.Len(t, wgpu.ToBytes(col), NumInstances*16)
	}
}
