// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package display

import (
	"strconv"
	"strings"
)

// WindowEnv is the environment variable through which the
// screensaver host hands over the window to render into.
const WindowEnv = "XSCREENSAVER_WINDOW"

// Source describes where the managed window comes from.
// It is either [Attached] or [Owned].
type Source interface {
	isSource()
}

// Attached is a window created and owned by the screensaver host.
type Attached struct {
	ID uint64
}

// Owned is a standalone window created by the session, for development.
type Owned struct {
	Width, Height int
}

func (Attached) isSource() {}
func (Owned) isSource()    {}

// ParseWindowID parses a host window id: the first whitespace
// delimited token, with an optional 0x prefix, in hexadecimal.
// X resource ids are 32 bits wide. It returns false for an empty,
// unparsable, zero or wider id.
func ParseWindowID(s string) (uint64, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	tok := fields[0]
	tok = strings.TrimPrefix(tok, "0x")
	tok = strings.TrimPrefix(tok, "0X")
	id, err := strconv.ParseUint(tok, 16, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// SourceFromEnv selects the window source from the environment:
// [Attached] if [WindowEnv] holds a valid id, otherwise [Owned]
// with the given size. A malformed id is treated as absent.
func SourceFromEnv(lookup func(string) (string, bool), width, height int) Source {
	if v, ok := lookup(WindowEnv); ok {
		if id, ok := ParseWindowID(v); ok {
			return Attached{ID: id}
		}
	}
	return Owned{Width: width, Height: height}
}
