// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package uniforms

// FrameModulus is the period of the [FrameCounter].
const FrameModulus = 100

// FrameCounter is the animation clock shared with the shader.
// Its value is always in [0, FrameModulus). The layout matches
// the FrameUniform struct of the shader.
type FrameCounter struct {
	Frame uint32
}

// Tick advances the counter by one, wrapping at [FrameModulus],
// and returns the new value.
func (fc *FrameCounter) Tick() uint32 {
	fc.Frame = (fc.Frame + 1) % FrameModulus
	return fc.Frame
}

// Value returns the current value.
func (fc *FrameCounter) Value() uint32 { return fc.Frame }
