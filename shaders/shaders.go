// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shaders holds the embedded WGSL programs.
package shaders

import (
	_ "embed"
	"fmt"
	"regexp"

	"github.com/gogpu/naga"
)

// Ground is the WGSL source of the ground program.
//
//go:embed ground.wgsl
var Ground string

// Entry point names exposed by every program in this package.
const (
	VertexEntry   = "vs_main"
	FragmentEntry = "fs_main"
)

// entryPoints match the function declarations of the entry points.
var entryPoints = map[string]*regexp.Regexp{
	VertexEntry:   regexp.MustCompile(`\bfn\s+` + VertexEntry + `\s*\(`),
	FragmentEntry: regexp.MustCompile(`\bfn\s+` + FragmentEntry + `\s*\(`),
}

// Validate checks that src declares both entry points and
// compiles, so that a broken asset is reported before any GPU
// object is created from it.
func Validate(src string) error {
	for _, ent := range []string{VertexEntry, FragmentEntry} {
		if !entryPoints[ent].MatchString(src) {
			return fmt.Errorf("shaders: missing entry point %q", ent)
		}
	}
	if _, err := naga.Compile(src); err != nil {
		return fmt.Errorf("shaders: %w", err)
	}
	return nil
}
