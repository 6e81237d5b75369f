// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

package bridge

import (
	"testing"

	"tables/cli/internal/bridge/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     int
	}{
		{name: "zero is raised", capacity: 0, want: 1},
		{name: "negative is raised", capacity: -3, want: 1},
		{name: "explicit", capacity: 4, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.capacity)
			assert.Equal(t, tt.want, cap(p.ShellEnd().Requests))
			assert.Equal(t, tt.want, cap(p.WorkerEnd().Responses))
		})
	}
}

func TestPairIsFIFO(t *testing.T) {
	p := New(3)
	shell, worker := p.ShellEnd(), p.WorkerEnd()

	shell.Requests <- model.Query(1, "a")
	shell.Requests <- model.Query(2, "b")
	shell.Requests <- model.Quit(3)

	for _, want := range []uint64{1, 2, 3} {
		got := <-worker.Requests
		assert.Equal(t, want, got.ID)
	}

	worker.Responses <- model.Success(1, "ok")
	worker.Responses <- model.Failure(2, "boom")
	close(worker.Responses)

	first := <-shell.Responses
	second := <-shell.Responses
	_, open := <-shell.Responses

	assert.False(t, first.Failed())
	assert.True(t, second.Failed())
	assert.False(t, open, "closed response channel must report closed after draining")
}

func TestTrySend(t *testing.T) {
	p := New(1)
	shell := p.ShellEnd()

	require.True(t, TrySend(shell.Requests, model.Query(1, "SELECT 1")))
	assert.False(t, TrySend(shell.Requests, model.Quit(2)), "full channel must not block")
}

func TestRequestString(t *testing.T) {
	assert.Equal(t, `#4 query "SELECT 1"`, model.Query(4, "SELECT 1").String())
	assert.Equal(t, "#5 quit", model.Quit(5).String())
}
