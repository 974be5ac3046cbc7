// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && cgo

package display

/*
#cgo LDFLAGS: -lX11
#include <stdlib.h>
#include <X11/Xlib.h>

static int lastXError;

static int recordXError(Display *d, XErrorEvent *e) {
	lastXError = e->error_code;
	return 0;
}

static void installErrorHandler() {
	XSetErrorHandler(recordXError);
}

static int takeXError() {
	int e = lastXError;
	lastXError = 0;
	return e;
}

static int eventType(XEvent *e) { return e->type; }
static int configureWidth(XEvent *e) { return e->xconfigure.width; }
static int configureHeight(XEvent *e) { return e->xconfigure.height; }
*/
import "C"

import (
	"fmt"
	"unsafe"
)

// xlib is the Xlib implementation of [Backend].
type xlib struct {
	display *C.Display
	screen  C.int
	root    C.Window
}

func openBackend() (Backend, error) {
	C.XInitThreads()
	display := C.XOpenDisplay(nil)
	if display == nil {
		return nil, fmt.Errorf("unable to open X display")
	}
	C.installErrorHandler()
	screen := C.XDefaultScreen(display)
	return &xlib{
		display: display,
		screen:  screen,
		root:    C.XRootWindow(display, screen),
	}, nil
}

// sync flushes requests and returns the first X error they caused.
func (x *xlib) sync() error {
	C.XSync(x.display, C.False)
	if code := C.takeXError(); code != 0 {
		return fmt.Errorf("X error code %d", int(code))
	}
	return nil
}

func (x *xlib) Attach(id uint64, mask EventMask) error {
	var attrs C.XWindowAttributes
	if C.XGetWindowAttributes(x.display, C.Window(id), &attrs) == 0 {
		C.takeXError()
		return fmt.Errorf("no such window")
	}
	C.XSelectInput(x.display, C.Window(id), C.long(mask))
	return x.sync()
}

func (x *xlib) Create(width, height int, mask EventMask) (uint64, error) {
	black := C.XBlackPixel(x.display, x.screen)
	win := C.XCreateSimpleWindow(
		x.display,
		x.root,
		0, 0,
		C.uint(width), C.uint(height),
		10,
		black,
		black,
	)
	title := C.CString("groundsaver")
	defer C.free(unsafe.Pointer(title))
	C.XStoreName(x.display, win, title)
	C.XSelectInput(x.display, win, C.long(mask))
	C.XMapWindow(x.display, win)
	if err := x.sync(); err != nil {
		return 0, err
	}
	return uint64(win), nil
}

func (x *xlib) Geometry(id uint64) (int, int, error) {
	var attrs C.XWindowAttributes
	if C.XGetWindowAttributes(x.display, C.Window(id), &attrs) == 0 {
		C.takeXError()
		return 0, 0, fmt.Errorf("display: get attributes of window 0x%x failed", id)
	}
	return int(attrs.width), int(attrs.height), nil
}

func (x *xlib) Pending() int {
	return int(C.XPending(x.display))
}

func (x *xlib) NextEvent() NativeEvent {
	var ev C.XEvent
	C.XNextEvent(x.display, &ev)
	ne := NativeEvent{Type: NativeTypes(C.eventType(&ev))}
	if ne.Type == NativeConfigureNotify {
		ne.Width = int(C.configureWidth(&ev))
		ne.Height = int(C.configureHeight(&ev))
	}
	return ne
}

func (x *xlib) Handle(id uint64) WindowHandle {
	return WindowHandle{Display: unsafe.Pointer(x.display), Window: id}
}

func (x *xlib) Close(id uint64, owned bool) {
	if x.display == nil {
		return
	}
	if owned && id != 0 {
		C.XDestroyWindow(x.display, C.Window(id))
	}
	C.XCloseDisplay(x.display)
	x.display = nil
}
