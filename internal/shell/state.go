// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package shell

import (
	"slices"
	"unicode/utf8"
)

// State is the mutable display state owned by the shell loop.
type State struct {
	Input      string
	History    []string
	LastOutput string
	LastFailed bool
	Pending    bool
}

// View is a read-only copy of State handed to the renderer.
type View struct {
	Input      string
	History    []string
	LastOutput string
	LastFailed bool
	Pending    bool
}

// View copies the state so drawing can never alias the live history.
func (s *State) View() View {
	return View{
		Input:      s.Input,
		History:    slices.Clone(s.History),
		LastOutput: s.LastOutput,
		LastFailed: s.LastFailed,
		Pending:    s.Pending,
	}
}

func (s *State) appendRune(r rune) {
	s.Input += string(r)
}

func (s *State) backspace() {
	if s.Input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(s.Input)
	s.Input = s.Input[:len(s.Input)-size]
}

// record appends the submitted line to History and clears the input buffer.
func (s *State) record(text string) {
	s.History = append(s.History, text)
	s.Input = ""
}
