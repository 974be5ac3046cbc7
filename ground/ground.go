// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ground provides the instanced ground geometry: a thin
// double sided quad repeated along -z to make a receding floor.
package ground

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/gpu"
	"cogentcore.org/core/math32"
	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex is one mesh vertex.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
}

// Vertices is the quad: green along the near edge, blue along the far edge.
var Vertices = []Vertex{
	{Position: [3]float32{-100, 0, 0.1}, Color: [3]float32{0, 1, 0}},
	{Position: [3]float32{100, 0, 0.1}, Color: [3]float32{0, 1, 0}},
	{Position: [3]float32{100, 0, -0.1}, Color: [3]float32{0, 0, 1}},
	{Position: [3]float32{-100, 0, -0.1}, Color: [3]float32{0, 0, 1}},
}

// Indices describes the two triangles of the quad.
var Indices = []uint16{0, 1, 2, 0, 2, 3}

const (
	// NumInstances is the number of quad repetitions.
	NumInstances = 20

	// Depth is the distance along -z covered by all instances.
	Depth = 30
)

// Instance places one repetition of the quad.
type Instance struct {
	Position math32.Vector3
	Rotation math32.Quat
}

// Model returns the model matrix of the instance.
func (in Instance) Model() math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(in.Position, in.Rotation, math32.Vec3(1, 1, 1))
	return m
}

// Instances returns the instance table: instance i sits at
// z = -(i/NumInstances)*Depth, with x = y = 0 and no rotation.
func Instances() []Instance {
	insts := make([]Instance, NumInstances)
	for i := range insts {
		insts[i] = Instance{
			Position: math32.Vec3(0, 0, -(float32(i) / NumInstances * Depth)),
			Rotation: math32.NewQuat(0, 0, 0, 1),
		}
	}
	return insts
}

// ModelColumns splits the model matrices of insts into their four
// columns, one per-instance vertex var each.
func ModelColumns(insts []Instance) [4][]math32.Vector4 {
	var cols [4][]math32.Vector4
	for c := range cols {
		cols[c] = make([]math32.Vector4, len(insts))
	}
	for i, in := range insts {
		m := in.Model()
		for c := range cols {
			cols[c][i] = math32.Vec4(m[4*c], m[4*c+1], m[4*c+2], m[4*c+3])
		}
	}
	return cols
}

// Geometry is the vertex group of the ground: per-vertex position
// and color, the per-instance model matrix as four columns, and
// the index. Shader locations follow the order the vars are added:
// Pos 0, Color 1, Model columns 2 to 5.
type Geometry struct {
	Pos   *gpu.Var
	Color *gpu.Var
	Model [4]*gpu.Var
	Index *gpu.Var
}

// AddVars adds the vertex group to vs, with one value per var.
// Values are uploaded by [Geometry.SetValues] once vs is configured.
func AddVars(vs *gpu.Vars) *Geometry {
	vgp := vs.AddVertexGroup()
	g := &Geometry{}
	// vertex are dynamically sized in general, so using 0 here
	g.Pos = vgp.Add("Pos", gpu.Float32Vector3, 0, gpu.VertexShader)
	g.Color = vgp.Add("Color", gpu.Float32Vector3, 0, gpu.VertexShader)
	for c := range g.Model {
		g.Model[c] = vgp.Add(fmt.Sprintf("Model%d", c), gpu.Float32Vector4, 0, gpu.VertexShader)
		g.Model[c].VertexInstance = true
	}
	g.Index = vgp.Add("Index", gpu.Uint16, 0, gpu.VertexShader)
	g.Index.Role = gpu.Index
	vgp.SetNValues(1)
	return g
}

// SetValues uploads the mesh and the instance table.
func (g *Geometry) SetValues() error {
	pos := make([][3]float32, len(Vertices))
	clr := make([][3]float32, len(Vertices))
	for i, v := range Vertices {
		pos[i] = v.Position
		clr[i] = v.Color
	}
	errs := []error{
		gpu.SetValueFrom(g.Pos.Values.CurrentValue(), pos),
		gpu.SetValueFrom(g.Color.Values.CurrentValue(), clr),
		gpu.SetValueFrom(g.Index.Values.CurrentValue(), Indices),
	}
	for c, col := range ModelColumns(Instances()) {
		errs = append(errs, gpu.SetValueFrom(g.Model[c].Values.CurrentValue(), col))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("ground: %w", err)
	}
	return nil
}

// Draw binds the vertex group and records one indexed draw
// covering all indices and all instances.
func (g *Geometry) Draw(pl *gpu.GraphicsPipeline, rp *wgpu.RenderPassEncoder) {
	pl.BindVertex(rp)
	rp.DrawIndexed(uint32(len(Indices)), NumInstances, 0, 0, 0)
}
