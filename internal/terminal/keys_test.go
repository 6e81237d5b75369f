// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecoderFeed(t *testing.T) {
	other := Event{Key: KeyOther}
	enter := Event{Key: KeyEnter}

	tests := []struct {
		name string
		in   string
		want []Event
	}{
		{name: "ascii", in: "ab", want: []Event{Rune('a'), Rune('b')}},
		{name: "multibyte", in: "é✓", want: []Event{Rune('é'), Rune('✓')}},
		{name: "carriage return", in: "x\r", want: []Event{Rune('x'), enter}},
		{name: "crlf is one enter", in: "\r\n", want: []Event{enter}},
		{name: "line feed", in: "\n", want: []Event{enter}},
		{name: "delete", in: "\x7f", want: []Event{{Key: KeyBackspace}}},
		{name: "ctrl h", in: "\x08", want: []Event{{Key: KeyBackspace}}},
		{name: "ctrl c", in: "\x03", want: []Event{{Key: KeyInterrupt}}},
		{name: "ctrl d", in: "\x04", want: []Event{{Key: KeyEOF}}},
		{name: "tab", in: "\t", want: []Event{other}},
		{name: "arrow key", in: "\x1b[A", want: []Event{other}},
		{name: "csi with params", in: "\x1b[1;5Cz", want: []Event{other, Rune('z')}},
		{name: "ss3", in: "\x1bOP", want: []Event{other}},
		{name: "alt key", in: "\x1bx", want: []Event{other}},
		{name: "lone escape", in: "\x1b", want: []Event{other}},
		{name: "invalid utf8", in: "\xff", want: []Event{other}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decoder
			got := d.Feed([]byte(tt.in))
			assert.Equal(t, tt.want, got)
			assert.Empty(t, d.pending)
		})
	}
}

func TestDecoderSplitSequences(t *testing.T) {
	var d Decoder

	// First two bytes of "✓" (e2 9c 93).
	assert.Empty(t, d.Feed([]byte{0xe2, 0x9c}))
	assert.Equal(t, []Event{Rune('✓')}, d.Feed([]byte{0x93}))

	assert.Empty(t, d.Feed([]byte("\x1b[")))
	assert.Equal(t, []Event{{Key: KeyOther}, Rune('q')}, d.Feed([]byte("Dq")))
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "enter", KeyEnter.String())
	assert.Equal(t, "other", Key(99).String())
}
