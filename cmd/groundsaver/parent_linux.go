// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import "golang.org/x/sys/unix"

// stopWithParent asks the kernel to send sig when the process that
// started the saver exits, so a hack orphaned by a crashed
// xscreensaver stops through the same path as a normal kill.
func stopWithParent(sig unix.Signal) error {
	return unix.Prctl(unix.PR_SET_PDEATHSIG, uintptr(sig), 0, 0, 0)
}
