// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	stderrors "errors"
	"sync"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"tables/cli/internal/config"
	"tables/cli/internal/dsn"
	"tables/cli/internal/errors"
	"tables/cli/internal/sqlexec"
	"tables/cli/internal/terminal"
)

// The secret service keyring backend connects to the session bus at init and
// keeps a reader goroutine for the life of the process.
var leakOptions = []goleak.Option{
	goleak.IgnoreAnyFunction("github.com/godbus/dbus.(*Conn).inWorker"),
}

// keyboard types lines and then blocks until the session context ends.
type keyboard struct {
	mu     sync.Mutex
	events []terminal.Event
	last   string
}

func typing(lines ...string) *keyboard {
	k := &keyboard{}
	for _, line := range lines {
		for _, r := range line {
			k.events = append(k.events, terminal.Rune(r))
		}
		k.events = append(k.events, terminal.Event{Key: terminal.KeyEnter})
	}
	return k
}

func (k *keyboard) ReadEvent(ctx context.Context) (terminal.Event, error) {
	k.mu.Lock()
	if len(k.events) > 0 {
		ev := k.events[0]
		k.events = k.events[1:]
		k.mu.Unlock()
		return ev, nil
	}
	k.mu.Unlock()
	<-ctx.Done()
	return terminal.Event{}, ctx.Err()
}

func (k *keyboard) Draw(frame string) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.last = pterm.RemoveColorFromString(frame)
	return nil
}

func TestServeQuitEndsBothLoops(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions...)

	info, err := dsn.Resolve("sqlite://:memory:")
	require.NoError(t, err)

	kb := typing("CREATE TABLE t (v TEXT)", "INSERT INTO t VALUES ('hello')", "SELECT v FROM t", "quit")
	err = serve(context.Background(), kb, sqlexec.NewOpener(info), 2, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Contains(t, kb.last, "> SELECT v FROM t")
	assert.Contains(t, kb.last, "hello")
	assert.Contains(t, kb.last, "(1 row)")
	assert.Contains(t, kb.last, "> quit")
}

func TestServeReportsConnectFailure(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions...)

	refused := stderrors.New("connection refused")
	open := func(context.Context) (sqlexec.Executor, error) { return nil, refused }

	err := serve(context.Background(), typing(), open, 1, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ConnectFailed))
	assert.ErrorIs(t, err, refused)
}

func TestServeStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, leakOptions...)

	info, err := dsn.Resolve("sqlite://:memory:")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, serve(ctx, typing(), sqlexec.NewOpener(info), 1, zaptest.NewLogger(t)))
}

func TestRunSessionRejectsBadDSN(t *testing.T) {
	err := runSession(context.Background(), dsnSource{DSN: "mysql://u:p@h/db", Origin: sourceFlag}, config.Default())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.InvalidDSN))
}
