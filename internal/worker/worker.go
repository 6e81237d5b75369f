// Copyright (c) 2025 Tables
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package worker serves query requests from the shell against a single
// database connection, one at a time.
package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tables/cli/internal/bridge"
	"tables/cli/internal/bridge/model"
	"tables/cli/internal/errors"
	"tables/cli/internal/sqlexec"
)

// Worker owns the database connection for the lifetime of a session.
type Worker struct {
	open   sqlexec.Opener
	end    bridge.WorkerEnd
	logger *zap.Logger
}

// New creates a worker that connects through open and talks to the shell
// through end.
func New(open sqlexec.Opener, end bridge.WorkerEnd, logger *zap.Logger) *Worker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Worker{open: open, end: end, logger: logger.Named("worker")}
}

// Run connects, then answers every query request until Quit arrives, the
// request channel closes or ctx ends. A failed connection is returned as a
// connect_failed error unless ctx ended first. The response channel is always
// closed on return.
func (w *Worker) Run(ctx context.Context) error {
	defer close(w.end.Responses)

	start := time.Now()
	exec, err := w.open(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		w.logger.Error("connection failed", zap.Error(err))
		return errors.Wrap(errors.ConnectFailed, "could not connect to the database", err)
	}
	defer func() {
		if err := exec.Close(); err != nil {
			w.logger.Warn("closing connection", zap.Error(err))
		}
	}()
	w.logger.Info("connected", zap.Duration("duration", time.Since(start)))

	for {
		select {
		case req, ok := <-w.end.Requests:
			if !ok {
				w.logger.Info("request channel closed")
				return nil
			}
			if req.Kind == model.KindQuit {
				w.logger.Info("quit requested", zap.Uint64("request_id", req.ID))
				return nil
			}
			resp := w.serve(ctx, exec, req)
			select {
			case w.end.Responses <- resp:
			case <-ctx.Done():
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}

// serve runs one query. Database errors become Failure responses.
func (w *Worker) serve(ctx context.Context, exec sqlexec.Executor, req model.Request) model.Response {
	start := time.Now()
	res, err := exec.Execute(ctx, req.Text)
	fields := []zap.Field{
		zap.Uint64("request_id", req.ID),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		w.logger.Info("query failed", append(fields, zap.Error(err))...)
		return model.Failure(req.ID, err.Error())
	}
	w.logger.Info("query succeeded", append(fields, zap.Int("rows", len(res.Rows)))...)
	return model.Success(req.ID, res.Render())
}
