// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import (
	"fmt"

	"cogentcore.org/core/gpu"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/smaragden/xscreensaver-wgpu/shaders"
)

// DoubleSided changes the gpu defaults of pl to counter-clockwise
// front faces without culling, keeping the triangle list topology,
// alpha blending and single sampling.
func DoubleSided(pl *gpu.GraphicsPipeline) *gpu.GraphicsPipeline {
	pl.SetGraphicsDefaults()
	pl.SetFrontFace(wgpu.FrontFaceCCW)
	pl.SetCullMode(wgpu.CullModeNone)
	pl.SetAlphaBlend(true)
	return pl
}

// NewPipeline validates src and adds a double sided pipeline named
// name to the System of gc, with the vertex and fragment entry
// points of src. The pipeline is built by [Context.Config].
func NewPipeline(gc *Context, name, src string) (*gpu.GraphicsPipeline, error) {
	if err := shaders.Validate(src); err != nil {
		return nil, err
	}
	pl := DoubleSided(gc.System.AddGraphicsPipeline(name))
	sh := pl.AddShader(name)
	if err := sh.OpenCode(src); err != nil {
		return nil, fmt.Errorf("gfx: shader %s: %w", name, err)
	}
	pl.AddEntry(sh, gpu.VertexShader, shaders.VertexEntry)
	pl.AddEntry(sh, gpu.FragmentShader, shaders.FragmentEntry)
	return pl, nil
}
