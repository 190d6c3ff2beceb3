package kiosk

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultMinDisplay is how long Processing stays on screen at minimum.
const DefaultMinDisplay = 2 * time.Second

// PipelineResult is what a submission cycle settled with.
type PipelineResult struct {
	Text string
	// Delivered is the sink's best-effort dispatch flag. The session does
	// not act on it; it is only recorded in the event log.
	Delivered bool
	Err       error
}

// Pipeline runs the generator, the sink and the minimum-display timer
// concurrently for one submission.
type Pipeline struct {
	Generator  MessageGenerator
	Sink       SubmissionSink
	MinDisplay time.Duration
	Logger     *slog.Logger
}

// Run waits for all three tasks to settle. Any task error or panic is
// reported in PipelineResult.Err rather than returned.
func (p *Pipeline) Run(ctx context.Context, sub WishSubmission) PipelineResult {
	var (
		res PipelineResult
		g   errgroup.Group
	)

	g.Go(p.guard("generate", func() error {
		res.Text = p.Generator.Generate(ctx, sub.Message)
		return nil
	}))

	g.Go(p.guard("sink", func() error {
		res.Delivered = p.Sink.Submit(ctx, sub)
		return nil
	}))

	g.Go(p.guard("min_display", func() error {
		t := time.NewTimer(p.MinDisplay)
		defer t.Stop()
		select {
		case <-t.C:
			return nil
		case <-ctx.Done():
			return fmt.Errorf("waiting for min display: %w", ctx.Err())
		}
	}))

	if err := g.Wait(); err != nil {
		p.logger().Error("submission pipeline failed", "error", err)
		res.Err = err
	}
	return res
}

// guard converts a panic in task into an error.
func (p *Pipeline) guard(task string, fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s panicked: %v", task, r)
			}
		}()
		return fn()
	}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}
