// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package model defines the messages exchanged between the shell loop and the
// query worker. Every message carries the identifier of the request it belongs
// to, so a reply can be matched to its request without relying on arrival order.
package model

import "fmt"

// RequestKind tags the variant of a Request.
type RequestKind string

const (
	// KindQuery asks the worker to execute Text against the database.
	KindQuery RequestKind = "query"
	// KindQuit asks the worker to stop serving. It is never answered.
	KindQuit RequestKind = "quit"
)

// ResponseKind tags the variant of a Response.
type ResponseKind string

const (
	// KindSuccess carries the rendered result set in Text.
	KindSuccess ResponseKind = "success"
	// KindFailure carries the query error description in Text.
	KindFailure ResponseKind = "failure"
)

// Request is a unit of work sent from the shell to the worker.
type Request struct {
	ID   uint64
	Kind RequestKind
	Text string
}

// Response is the worker's single answer to a query Request.
type Response struct {
	ID   uint64
	Kind ResponseKind
	Text string
}

// Query builds a query request.
func Query(id uint64, text string) Request {
	return Request{ID: id, Kind: KindQuery, Text: text}
}

// Quit builds a quit request.
func Quit(id uint64) Request {
	return Request{ID: id, Kind: KindQuit}
}

// Success builds the response for a query that produced a result.
func Success(id uint64, rendered string) Response {
	return Response{ID: id, Kind: KindSuccess, Text: rendered}
}

// Failure builds the response for a query the database rejected.
func Failure(id uint64, message string) Response {
	return Response{ID: id, Kind: KindFailure, Text: message}
}

// Failed reports whether r carries an error message.
func (r Response) Failed() bool { return r.Kind == KindFailure }

func (r Request) String() string {
	if r.Kind == KindQuit {
		return fmt.Sprintf("#%d quit", r.ID)
	}
	return fmt.Sprintf("#%d query %q", r.ID, r.Text)
}
