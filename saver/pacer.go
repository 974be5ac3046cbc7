// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package saver

import (
	"context"
	"log/slog"
	"time"
)

// FPSInterval is how often the measured frame rate is logged.
const FPSInterval = 10 * time.Second

// Pacer paces the frame loop to a fixed target rate. Frames that
// run late are not made up: the ticker drops missed slots.
type Pacer struct {
	ticker *time.Ticker

	frames int
	start  time.Time
}

// NewPacer returns a pacer for the given frames per second.
// fps must be positive.
func NewPacer(fps int) *Pacer {
	return &Pacer{
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
		start:  time.Now(),
	}
}

// Wait blocks until the next frame slot. It returns ctx.Err()
// if ctx is done first.
func (pc *Pacer) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case now := <-pc.ticker.C:
		if fps, ok := pc.count(now); ok {
			slog.Debug("saver: frame rate", "fps", int(fps+0.5))
		}
	}
	return nil
}

// count records one frame at now. Once per [FPSInterval] it
// returns the measured frame rate and restarts the measurement.
func (pc *Pacer) count(now time.Time) (float64, bool) {
	pc.frames++
	dur := now.Sub(pc.start)
	if dur < FPSInterval {
		return 0, false
	}
	fps := float64(pc.frames) / dur.Seconds()
	pc.frames = 0
	pc.start = now
	return fps, true
}

// Stop releases the underlying ticker.
func (pc *Pacer) Stop() {
	pc.ticker.Stop()
}
