// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package shell

import (
	"strings"

	"github.com/pterm/pterm"
)

const (
	// Title is shown in the frame border.
	Title = " Tables "
	// Prompt prefixes history entries and the input line.
	Prompt = "> "
	// Hint is the footer line.
	Hint = "type quit to quit"
)

var (
	promptStyle  = pterm.NewStyle(pterm.FgYellow)
	successStyle = pterm.NewStyle(pterm.FgCyan)
	failureStyle = pterm.NewStyle(pterm.FgRed)
	mutedStyle   = pterm.NewStyle(pterm.FgGray)
)

// Render draws v as a boxed transcript. It only reads v, so rendering the same
// view twice yields the same frame.
func Render(v View) string {
	var b strings.Builder

	for _, line := range v.History {
		b.WriteString(promptStyle.Sprint(Prompt))
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(promptStyle.Sprint(Prompt))
	b.WriteString(v.Input)
	b.WriteString(mutedStyle.Sprint("_"))
	b.WriteByte('\n')

	switch {
	case v.Pending:
		b.WriteByte('\n')
		b.WriteString(mutedStyle.Sprint("running..."))
		b.WriteByte('\n')
	case v.LastOutput != "":
		style := successStyle
		if v.LastFailed {
			style = failureStyle
		}
		b.WriteByte('\n')
		for _, line := range strings.Split(strings.TrimRight(v.LastOutput, "\n"), "\n") {
			b.WriteString(style.Sprint(line))
			b.WriteByte('\n')
		}
	}

	b.WriteByte('\n')
	b.WriteString(mutedStyle.Sprint(Hint))

	return pterm.DefaultBox.
		WithTitle(pterm.Bold.Sprint(Title)).
		Sprint(b.String())
}
