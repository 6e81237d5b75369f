// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package shell implements the interactive read/render loop. It turns
// keystrokes into an input line, submits lines to the query worker over the
// bridge and waits for the matching answer before accepting more input.
package shell

import (
	"context"
	stderrors "errors"
	"io"

	"go.uber.org/zap"

	"tables/cli/internal/bridge"
	"tables/cli/internal/bridge/model"
	"tables/cli/internal/errors"
	"tables/cli/internal/terminal"
)

// QuitCommand ends the session. It is matched exactly.
const QuitCommand = "quit"

// Terminal is the device the shell reads keys from and draws frames to.
type Terminal interface {
	ReadEvent(ctx context.Context) (terminal.Event, error)
	Draw(frame string) error
}

// Shell is the interactive loop. It is not safe for concurrent use; Run owns
// it until it returns.
type Shell struct {
	term   Terminal
	end    bridge.ShellEnd
	logger *zap.Logger

	state  State
	lastID uint64
}

// New creates a shell drawing to term and talking to the worker through end.
func New(term Terminal, end bridge.ShellEnd, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{term: term, end: end, logger: logger.Named("shell")}
}

// View returns a snapshot of the current display state.
func (s *Shell) View() View {
	return s.state.View()
}

// Run draws, reads one key and reacts to it until the user quits, the worker
// goes away or ctx is cancelled. Those all return nil unless the last frame
// cannot be drawn. Terminal failures are returned as terminal_io errors. The request channel is closed on return.
func (s *Shell) Run(ctx context.Context) error {
	defer close(s.end.Requests)

	for {
		if err := s.draw(); err != nil {
			return err
		}

		ev, err := s.term.ReadEvent(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if stderrors.Is(err, io.EOF) {
				s.sendQuit()
				return nil
			}
			return errors.Wrap(errors.TerminalIO, "failed to read input", err)
		}

		done, err := s.handle(ctx, ev)
		if err != nil {
			return err
		}
		if done {
			return s.draw()
		}
	}
}

func (s *Shell) draw() error {
	if err := s.term.Draw(Render(s.state.View())); err != nil {
		return errors.Wrap(errors.TerminalIO, "failed to draw frame", err)
	}
	return nil
}

// handle applies one key event. It reports true when the loop should stop.
func (s *Shell) handle(ctx context.Context, ev terminal.Event) (bool, error) {
	switch ev.Key {
	case terminal.KeyRune:
		s.state.appendRune(ev.Rune)
	case terminal.KeyBackspace:
		s.state.backspace()
	case terminal.KeyEnter:
		return s.submit(ctx, s.state.Input)
	case terminal.KeyInterrupt, terminal.KeyEOF:
		s.logger.Debug("quit key pressed", zap.Stringer("key", ev.Key))
		s.sendQuit()
		return true, nil
	}
	return false, nil
}

// submit dispatches text. Every branch records text in History and clears the
// input; only queries wait for the worker.
func (s *Shell) submit(ctx context.Context, text string) (bool, error) {
	switch text {
	case QuitCommand:
		s.state.record(text)
		s.sendQuit()
		return true, nil
	case "":
		s.state.record(text)
		return false, nil
	}

	req := model.Query(s.nextID(), text)
	select {
	case s.end.Requests <- req:
	case <-ctx.Done():
		return true, nil
	}
	s.logger.Debug("request sent", zap.Stringer("request", req))

	s.state.Pending = true
	if err := s.draw(); err != nil {
		s.state.Pending = false
		s.state.record(text)
		return true, err
	}
	resp, ok := s.await(ctx, req.ID)
	s.state.Pending = false
	s.state.record(text)
	if !ok {
		return true, nil
	}

	s.state.LastOutput = resp.Text
	s.state.LastFailed = resp.Failed()
	return false, nil
}

// await blocks until the response for id arrives. It returns false when the
// response channel closes or ctx ends first.
func (s *Shell) await(ctx context.Context, id uint64) (model.Response, bool) {
	for {
		select {
		case resp, ok := <-s.end.Responses:
			if !ok {
				s.logger.Info("worker closed the response channel", zap.Uint64("request_id", id))
				return model.Response{}, false
			}
			if resp.ID != id {
				s.logger.Warn("discarding response for another request",
					zap.Uint64("request_id", id), zap.Uint64("response_id", resp.ID))
				continue
			}
			return resp, true
		case <-ctx.Done():
			return model.Response{}, false
		}
	}
}

// sendQuit tells the worker to stop without waiting. A full channel is fine:
// closing the request channel on return has the same effect.
func (s *Shell) sendQuit() {
	req := model.Quit(s.nextID())
	if !bridge.TrySend(s.end.Requests, req) {
		s.logger.Debug("request channel full, relying on close", zap.Stringer("request", req))
	}
}

func (s *Shell) nextID() uint64 {
	s.lastID++
	return s.lastID
}
