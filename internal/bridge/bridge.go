// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package bridge provides the channel pair that connects the shell loop with the
// query worker. Requests flow from the shell to the worker and responses flow
// back; both channels are bounded and FIFO.
//
// Each side owns exactly one outgoing channel and is the only one allowed to
// close it. A receiver that observes a closed channel treats it as a request to
// terminate, which lets either side shut down first without stranding the other.
package bridge

import (
	"tables/cli/internal/bridge/model"
)

// DefaultCapacity is used when the configuration does not specify one.
const DefaultCapacity = 8

// Pair holds both directions of the shell/worker conversation.
type Pair struct {
	requests  chan model.Request
	responses chan model.Response
}

// ShellEnd is the shell's view: it sends requests and receives responses.
type ShellEnd struct {
	Requests  chan<- model.Request
	Responses <-chan model.Response
}

// WorkerEnd is the worker's view: it receives requests and sends responses.
type WorkerEnd struct {
	Requests  <-chan model.Request
	Responses chan<- model.Response
}

// New creates a fresh channel pair. Capacities below one are raised to one.
func New(capacity int) *Pair {
	if capacity < 1 {
		capacity = 1
	}
	return &Pair{
		requests:  make(chan model.Request, capacity),
		responses: make(chan model.Response, capacity),
	}
}

// ShellEnd returns the shell side of the pair.
func (p *Pair) ShellEnd() ShellEnd {
	return ShellEnd{Requests: p.requests, Responses: p.responses}
}

// WorkerEnd returns the worker side of the pair.
func (p *Pair) WorkerEnd() WorkerEnd {
	return WorkerEnd{Requests: p.requests, Responses: p.responses}
}

// TrySend delivers req without blocking. It reports false when the channel is
// full. The caller must own ch, so it can never be closed underneath us.
func TrySend(ch chan<- model.Request, req model.Request) bool {
	select {
	case ch <- req:
		return true
	default:
		return false
	}
}
