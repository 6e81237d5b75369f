// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"os"

	"atomicgo.dev/cursor"
	"golang.org/x/term"
)

// ClearPreviousLines erases a line-mode prompt and the answer typed after it,
// including the empty line left by Enter. textLength is the prompt plus input
// length in characters.
func ClearPreviousLines(textLength int) {
	cursor.ClearLinesUp(PromptLines(textLength, Width()))
	cursor.StartOfLine()
}

// PromptLines is the number of lines above the cursor taken by textLength
// characters wrapped at width.
func PromptLines(textLength, width int) int {
	if width <= 0 {
		width = 80
	}
	lines := (textLength + width - 1) / width
	if lines < 1 {
		lines = 1
	}
	return lines
}

// Width returns the stdout terminal width, or 80 when unknown.
func Width() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 80
}
