// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gfx

import (
	"errors"
	"fmt"
	"math"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/smaragden/xscreensaver-wgpu/display"
)

var (
	// ErrDeviceAcquisition is returned when no compatible adapter or
	// device can be obtained. There is no fallback rendering path.
	ErrDeviceAcquisition = errors.New("gfx: no compatible GPU adapter or device")

	// ErrSurfaceAcquisition is returned when the surface cannot yield
	// a frame to render into.
	ErrSurfaceAcquisition = errors.New("gfx: surface could not provide a frame")

	// ErrInvalidHandle is returned for a window handle that cannot
	// back a surface.
	ErrInvalidHandle = errors.New("gfx: invalid window handle")
)

// SurfaceDescriptor converts a native window handle into the Xlib
// surface descriptor wgpu needs. The window referenced by h must
// outlive any surface created from the result.
func SurfaceDescriptor(h display.WindowHandle) (*wgpu.SurfaceDescriptor, error) {
	if h.Display == nil {
		return nil, fmt.Errorf("%w: nil display", ErrInvalidHandle)
	}
	if h.Window == 0 {
		return nil, fmt.Errorf("%w: zero window", ErrInvalidHandle)
	}
	if h.Window > math.MaxUint32 {
		return nil, fmt.Errorf("%w: window id %#x out of range", ErrInvalidHandle, h.Window)
	}
	return &wgpu.SurfaceDescriptor{
		XlibWindow: &wgpu.SurfaceDescriptorFromXlibWindow{
			Display: h.Display,
			Window:  uint32(h.Window),
		},
	}, nil
}
