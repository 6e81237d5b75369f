// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal owns the controlling terminal while the shell runs: raw
// mode, keystroke decoding and in-place frame drawing.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"atomicgo.dev/cursor"
	"golang.org/x/term"
)

// TTYPath is the device opened by Init.
const TTYPath = "/dev/tty"

// Device is a raw-mode terminal. Init must succeed before ReadEvent or Draw
// are used, and Restore must be called afterwards.
type Device struct {
	path string

	tty   *os.File
	fd    int
	state *term.State
	out   *crlfWriter
	area  cursor.Area

	events chan Event
	errs   chan error
	done   chan struct{}

	restoreOnce sync.Once
	restoreErr  error
}

// New returns a device bound to /dev/tty.
func New() *Device {
	return &Device{path: TTYPath}
}

// Init opens the terminal, switches it to raw mode, hides the cursor and
// starts the reader goroutine.
func (d *Device) Init() error {
	tty, err := os.OpenFile(d.path, os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("open %s: %w", d.path, err)
	}
	fd, err := rawFd(tty)
	if err != nil {
		_ = tty.Close()
		return err
	}
	if !term.IsTerminal(fd) {
		_ = tty.Close()
		return fmt.Errorf("%s is not a terminal", d.path)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		_ = tty.Close()
		return fmt.Errorf("enable raw mode: %w", err)
	}

	d.tty = tty
	d.fd = fd
	d.state = state
	d.out = &crlfWriter{f: tty, fd: uintptr(fd)}
	d.area = cursor.NewArea().WithWriter(d.out)
	d.events = make(chan Event, 64)
	d.errs = make(chan error, 1)
	d.done = make(chan struct{})

	cursor.NewCursor().WithWriter(d.out).Hide()
	go d.readLoop()
	return nil
}

func (d *Device) readLoop() {
	var dec Decoder
	buf := make([]byte, 256)
	for {
		n, err := d.tty.Read(buf)
		for _, ev := range dec.Feed(buf[:n]) {
			select {
			case d.events <- ev:
			case <-d.done:
				return
			}
		}
		if err != nil {
			select {
			case d.errs <- err:
			case <-d.done:
			}
			return
		}
	}
}

// ReadEvent blocks until a key is pressed, the terminal fails or ctx ends.
// End of input is reported as io.EOF.
func (d *Device) ReadEvent(ctx context.Context) (Event, error) {
	select {
	case ev := <-d.events:
		return ev, nil
	case err := <-d.errs:
		if errors.Is(err, os.ErrClosed) {
			return Event{}, io.EOF
		}
		return Event{}, err
	case <-ctx.Done():
		return Event{}, ctx.Err()
	}
}

// Draw replaces the previously drawn frame with frame.
func (d *Device) Draw(frame string) error {
	if d.tty == nil {
		return errors.New("terminal not initialized")
	}
	d.area.Update(strings.TrimRight(frame, "\n"))
	return d.out.err
}

// Restore leaves the last frame on screen, shows the cursor, restores the
// original terminal mode and stops the reader. It is safe to call more than
// once.
func (d *Device) Restore() error {
	if d.tty == nil {
		return nil
	}
	d.restoreOnce.Do(func() {
		_, _ = d.out.Write([]byte("\n"))
		cursor.NewCursor().WithWriter(d.out).Show()
		d.restoreErr = term.Restore(d.fd, d.state)
		close(d.done)
		if err := d.tty.Close(); err != nil && d.restoreErr == nil {
			d.restoreErr = err
		}
	})
	return d.restoreErr
}

// rawFd reads the descriptor without os.File.Fd, which would switch the file
// to blocking mode and keep Close from interrupting a pending Read.
func rawFd(f *os.File) (int, error) {
	conn, err := f.SyscallConn()
	if err != nil {
		return 0, fmt.Errorf("access %s: %w", f.Name(), err)
	}
	var fd int
	if err := conn.Control(func(p uintptr) { fd = int(p) }); err != nil {
		return 0, fmt.Errorf("access %s: %w", f.Name(), err)
	}
	return fd, nil
}

// crlfWriter turns "\n" into "\r\n" because raw mode disables output
// post-processing. It satisfies cursor.Writer. cursor.Area ignores write
// errors, so the first one is kept in err for Draw to report.
type crlfWriter struct {
	f   *os.File
	fd  uintptr
	err error
}

func (w *crlfWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	if _, err := w.f.Write([]byte(strings.ReplaceAll(string(p), "\n", "\r\n"))); err != nil {
		w.err = err
		return 0, err
	}
	return len(p), nil
}

func (w *crlfWriter) Fd() uintptr { return w.fd }
