// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux || !cgo

package display

import "cogentcore.org/core/base/errors"

func openBackend() (Backend, error) {
	return nil, errors.New("X11 is only supported on linux with cgo enabled")
}
