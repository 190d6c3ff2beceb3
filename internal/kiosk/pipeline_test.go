package kiosk

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type stubGenerator struct {
	text  string
	panic bool
	calls atomic.Int32
}

func (g *stubGenerator) Generate(_ context.Context, _ string) string {
	g.calls.Add(1)
	if g.panic {
		panic("generator exploded")
	}
	return g.text
}

type stubSink struct {
	ok    bool
	delay time.Duration
	got   atomic.Value
}

func (s *stubSink) Submit(ctx context.Context, sub WishSubmission) bool {
	s.got.Store(sub)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return false
		}
	}
	return s.ok
}

func TestPipelineJoinsAllTasks(t *testing.T) {
	gen := &stubGenerator{text: "Your wish is now aid."}
	snk := &stubSink{ok: true, delay: 20 * time.Millisecond}
	p := &Pipeline{Generator: gen, Sink: snk, MinDisplay: 50 * time.Millisecond}

	sub := validForm().Snapshot(time.Now())
	start := time.Now()
	res := p.Run(context.Background(), sub)
	elapsed := time.Since(start)

	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Text != "Your wish is now aid." {
		t.Errorf("Text = %q", res.Text)
	}
	if !res.Delivered {
		t.Error("Delivered should be true")
	}
	if elapsed < 50*time.Millisecond {
		t.Errorf("Run returned after %v, before the minimum display time", elapsed)
	}
	if got := snk.got.Load().(WishSubmission); got != sub {
		t.Errorf("sink received %+v, want %+v", got, sub)
	}
}

func TestPipelineSinkFailureStillCompletes(t *testing.T) {
	s := newTestSession()
	s.Start()
	s.UpdateForm(validForm())
	sub, cycle, _ := s.BeginSubmit(time.Now())

	p := &Pipeline{Generator: &stubGenerator{text: "thanks"}, Sink: &stubSink{ok: false}}
	res := p.Run(context.Background(), sub)

	if res.Err != nil {
		t.Fatalf("sink failure must not fail the pipeline: %v", res.Err)
	}
	if res.Delivered {
		t.Error("Delivered should be false")
	}
	s.Complete(cycle, res)
	if s.Screen() != ScreenSuccess {
		t.Errorf("screen = %s, want success", s.Screen())
	}
	want := DonationStats{TotalDonated: DefaultStartingTotal + 1000, MessageCount: DefaultStartingCount + 1}
	if s.Stats() != want {
		t.Errorf("stats = %+v, want %+v", s.Stats(), want)
	}
}

func TestPipelineRecoversPanickingGenerator(t *testing.T) {
	gen := &stubGenerator{panic: true}
	snk := &stubSink{ok: true}
	p := &Pipeline{Generator: gen, Sink: snk, MinDisplay: 10 * time.Millisecond}

	res := p.Run(context.Background(), validForm().Snapshot(time.Now()))

	if res.Err == nil {
		t.Fatal("expected an error from a panicking generator")
	}
	if !res.Delivered {
		t.Error("sink should still have settled")
	}
}

func TestPipelineBoundedByContext(t *testing.T) {
	p := &Pipeline{
		Generator:  &stubGenerator{text: "thanks"},
		Sink:       &stubSink{ok: true, delay: time.Hour},
		MinDisplay: time.Hour,
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	done := make(chan PipelineResult, 1)
	go func() { done <- p.Run(ctx, validForm().Snapshot(time.Now())) }()

	select {
	case res := <-done:
		if res.Err == nil {
			t.Error("expected a context error")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("pipeline did not settle after its context ended")
	}
}
