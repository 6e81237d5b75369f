// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import "unicode/utf8"

// Key classifies a decoded input event.
type Key int

const (
	KeyRune Key = iota
	KeyBackspace
	KeyEnter
	KeyInterrupt // Ctrl+C
	KeyEOF       // Ctrl+D
	KeyOther
)

func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyBackspace:
		return "backspace"
	case KeyEnter:
		return "enter"
	case KeyInterrupt:
		return "interrupt"
	case KeyEOF:
		return "eof"
	default:
		return "other"
	}
}

// Event is one keystroke. Rune is set only for KeyRune.
type Event struct {
	Key  Key
	Rune rune
}

// Rune builds a printable character event.
func Rune(r rune) Event { return Event{Key: KeyRune, Rune: r} }

// Decoder turns raw terminal bytes into events. Incomplete UTF-8 sequences
// and escape sequences are held until the next Feed.
type Decoder struct {
	pending []byte
}

// Feed decodes p, prefixed by any bytes left over from the previous call.
func (d *Decoder) Feed(p []byte) []Event {
	buf := append(d.pending, p...)
	d.pending = nil

	var events []Event
	for len(buf) > 0 {
		b := buf[0]
		switch {
		case b == 0x1b:
			n, ok := escapeLen(buf)
			if !ok {
				d.pending = append([]byte(nil), buf...)
				return events
			}
			events = append(events, Event{Key: KeyOther})
			buf = buf[n:]
			continue
		case b == '\r':
			events = append(events, Event{Key: KeyEnter})
			if len(buf) > 1 && buf[1] == '\n' {
				buf = buf[1:]
			}
		case b == '\n':
			events = append(events, Event{Key: KeyEnter})
		case b == 127 || b == 8:
			events = append(events, Event{Key: KeyBackspace})
		case b == 3:
			events = append(events, Event{Key: KeyInterrupt})
		case b == 4:
			events = append(events, Event{Key: KeyEOF})
		case b < 0x20:
			events = append(events, Event{Key: KeyOther})
		default:
			if !utf8.FullRune(buf) {
				d.pending = append([]byte(nil), buf...)
				return events
			}
			r, size := utf8.DecodeRune(buf)
			if r == utf8.RuneError {
				events = append(events, Event{Key: KeyOther})
			} else {
				events = append(events, Rune(r))
			}
			buf = buf[size:]
			continue
		}
		buf = buf[1:]
	}
	return events
}

// escapeLen returns the length of the escape sequence at the start of buf.
// A lone ESC at the end of a read is the Escape key itself.
func escapeLen(buf []byte) (int, bool) {
	if len(buf) == 1 {
		return 1, true
	}
	switch buf[1] {
	case '[':
		// CSI: parameters then a final byte in 0x40..0x7e.
		for i := 2; i < len(buf); i++ {
			if buf[i] >= 0x40 && buf[i] <= 0x7e {
				return i + 1, true
			}
		}
		return 0, false
	case 'O':
		if len(buf) < 3 {
			return 0, false
		}
		return 3, true
	default:
		return 2, true
	}
}
