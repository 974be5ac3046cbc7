// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package display manages the native window that the screensaver
// renders into: either a window handed over by the screensaver host
// (see [WindowEnv]) or a standalone window created for development.
// It turns native window-system events into the small [Event]
// vocabulary consumed by the frame loop.
package display

import (
	"fmt"
	"log/slog"
	"unsafe"

	"cogentcore.org/core/base/errors"
)

// ErrWindowInit is returned (wrapped) when the window-system connection
// cannot be opened or the host window cannot be attached.
// The caller must not start rendering in that case.
var ErrWindowInit = errors.New("display: window initialization failed")

// EventMask is the set of native event classes selected on the window.
type EventMask int64

// Xlib event mask bits used by the session.
const (
	KeyPressMask        EventMask = 1 << 0  // key press events
	ExposureMask        EventMask = 1 << 15 // expose events (redraw window contents)
	StructureNotifyMask EventMask = 1 << 17 // structural changes like resizing

	// SessionMask is selected on both attached and owned windows.
	SessionMask = ExposureMask | KeyPressMask | StructureNotifyMask
)

// NativeTypes are the native event type codes (X protocol values).
type NativeTypes int32

const (
	NativeKeyPress        NativeTypes = 2
	NativeExpose          NativeTypes = 12
	NativeConfigureNotify NativeTypes = 22
)

// NativeEvent is the subset of a native event that the session inspects.
type NativeEvent struct {
	Type NativeTypes

	// Width and Height are only meaningful for NativeConfigureNotify.
	Width, Height int
}

// Event is an event delivered to the frame loop.
// [Resized] is currently the only kind.
type Event interface {
	isEvent()
}

// Resized reports a new window size.
type Resized struct {
	Width, Height uint32
}

func (Resized) isEvent() {}

// WindowHandle identifies the native window for surface creation:
// the display connection plus the window id. It is only valid while
// the [Session] that returned it is open.
type WindowHandle struct {
	Display unsafe.Pointer
	Window  uint64
}

// IsValid returns whether both parts of the handle are set.
func (h WindowHandle) IsValid() bool {
	return h.Display != nil && h.Window != 0
}

// Backend is the native window-system connection used by a [Session].
// The Xlib implementation is returned by [Open]; tests supply fakes.
type Backend interface {
	// Attach selects mask on the existing window with the given id.
	Attach(id uint64, mask EventMask) error

	// Create makes a new top-level window of the given size,
	// selects mask on it and maps it.
	Create(width, height int, mask EventMask) (uint64, error)

	// Geometry returns the live size of the window.
	Geometry(id uint64) (width, height int, err error)

	// Pending returns the number of queued native events.
	Pending() int

	// NextEvent removes and returns the next queued native event.
	NextEvent() NativeEvent

	// Handle returns the handle for the given window.
	Handle(id uint64) WindowHandle

	// Close destroys the window if it was created (owned)
	// and closes the connection.
	Close(id uint64, owned bool)
}

// Session owns the window-system connection and the managed window.
type Session struct {
	backend Backend
	source  Source
	window  uint64

	// last size returned by Size, used if the live query fails
	width, height uint32
}

// Open opens the native window-system connection and then
// attaches to or creates the window described by src.
func Open(src Source) (*Session, error) {
	b, err := openBackend()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindowInit, err)
	}
	se, err := OpenWith(b, src)
	if err != nil {
		b.Close(0, false)
		return nil, err
	}
	return se, nil
}

// OpenWith attaches to or creates the window described by src
// using an already open [Backend].
func OpenWith(b Backend, src Source) (*Session, error) {
	se := &Session{backend: b, source: src}
	switch s := src.(type) {
	case Attached:
		if err := b.Attach(s.ID, SessionMask); err != nil {
			return nil, fmt.Errorf("%w: attach window 0x%x: %w", ErrWindowInit, s.ID, err)
		}
		se.window = s.ID
		slog.Info("display: attached to host window", "window", fmt.Sprintf("0x%x", s.ID))
	case Owned:
		id, err := b.Create(s.Width, s.Height, SessionMask)
		if err != nil {
			return nil, fmt.Errorf("%w: create window: %w", ErrWindowInit, err)
		}
		se.window = id
		se.width, se.height = uint32(s.Width), uint32(s.Height)
		slog.Info("display: created standalone window", "window", fmt.Sprintf("0x%x", id), "width", s.Width, "height", s.Height)
	default:
		return nil, fmt.Errorf("%w: unknown window source %T", ErrWindowInit, src)
	}
	return se, nil
}

// Source returns the window source this session was opened with.
func (se *Session) Source() Source { return se.source }

// Handle returns the native handle of the managed window.
// The session must outlive any surface created from it.
func (se *Session) Handle() WindowHandle {
	return se.backend.Handle(se.window)
}

// Size returns the live size of the managed window, including
// host driven resizes. If the query fails, the last known size
// is returned.
func (se *Session) Size() (width, height uint32) {
	w, h, err := se.backend.Geometry(se.window)
	if errors.Log(err) != nil || w <= 0 || h <= 0 {
		return se.width, se.height
	}
	se.width, se.height = uint32(w), uint32(h)
	return se.width, se.height
}

// DrainEvents removes all currently queued native events without
// blocking, and returns those that map to an [Event].
// All other native events (key presses, exposes) are discarded.
func (se *Session) DrainEvents() []Event {
	var evs []Event
	for se.backend.Pending() > 0 {
		if ev, ok := mapEvent(se.backend.NextEvent()); ok {
			evs = append(evs, ev)
		}
	}
	return evs
}

// Close destroys an owned window and closes the connection.
// Any surface created from [Session.Handle] must be released first.
func (se *Session) Close() {
	_, owned := se.source.(Owned)
	se.backend.Close(se.window, owned)
}

// mapEvent maps a native event into the [Event] vocabulary.
func mapEvent(ne NativeEvent) (Event, bool) {
	switch ne.Type {
	case NativeConfigureNotify:
		if ne.Width <= 0 || ne.Height <= 0 {
			return nil, false
		}
		return Resized{Width: uint32(ne.Width), Height: uint32(ne.Height)}, true
	default:
		return nil, false
	}
}
