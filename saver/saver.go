// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package saver runs the frame loop: drain window events and apply
// resizes, render one frame, advance the frame counter, and wait
// for the next frame slot.
package saver

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/smaragden/xscreensaver-wgpu/display"
)

// Events is a non-blocking source of window events.
type Events interface {
	DrainEvents() []display.Event
}

// Renderer applies surface resizes and draws frames.
type Renderer interface {
	// Resize applies a new surface size. It is called before the
	// next Render and never concurrently with it.
	Resize(width, height uint32) error

	// Render draws and presents one frame.
	Render() error
}

// Ticker advances per-frame state after a frame has been rendered.
type Ticker interface {
	Tick() error
}

// Waiter blocks until the next frame slot or until ctx is done.
type Waiter interface {
	Wait(ctx context.Context) error
}

// Loop bundles the collaborators of [Run].
type Loop struct {
	Events   Events
	Renderer Renderer
	Ticker   Ticker
	Pacer    Waiter
}

// Run drives the frame loop until ctx is done or a step fails.
// Each iteration, in order: every pending resize is applied (so the
// last one wins), one frame is rendered, the ticker advances, and
// the pacer waits. Cancellation of ctx is a clean stop and returns nil.
func Run(ctx context.Context, lp Loop) error {
	slog.Info("saver: frame loop started")
	for ctx.Err() == nil {
		for _, ev := range lp.Events.DrainEvents() {
			rs, ok := ev.(display.Resized)
			if !ok {
				continue
			}
			if err := lp.Renderer.Resize(rs.Width, rs.Height); err != nil {
				return fmt.Errorf("saver: resize %dx%d: %w", rs.Width, rs.Height, err)
			}
		}
		if err := lp.Renderer.Render(); err != nil {
			return fmt.Errorf("saver: render: %w", err)
		}
		if err := lp.Ticker.Tick(); err != nil {
			return fmt.Errorf("saver: tick: %w", err)
		}
		if err := lp.Pacer.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				break
			}
			return fmt.Errorf("saver: wait: %w", err)
		}
	}
	slog.Info("saver: frame loop stopped")
	return nil
}
