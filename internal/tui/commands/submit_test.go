package commands

import (
	"context"
	"testing"
	"time"

	"github.com/berth-dev/wishkiosk/internal/kiosk"
	"github.com/berth-dev/wishkiosk/internal/tui"
)

type echoGenerator struct{}

func (echoGenerator) Generate(_ context.Context, wish string) string {
	return "thanks for: " + wish
}

type recordingSink struct {
	got kiosk.WishSubmission
}

func (s *recordingSink) Submit(_ context.Context, sub kiosk.WishSubmission) bool {
	s.got = sub
	return true
}

func TestSubmitWishCmdReportsCycle(t *testing.T) {
	snk := &recordingSink{}
	p := &kiosk.Pipeline{Generator: echoGenerator{}, Sink: snk}
	sub := kiosk.WishForm{Name: "Nimal", ContactNumber: "077", Wish: "Hope"}.Snapshot(time.Now())

	msg := SubmitWishCmd(context.Background(), p, sub, "cycle-1")()

	done, ok := msg.(tui.WishCompleteMsg)
	if !ok {
		t.Fatalf("got %T, want tui.WishCompleteMsg", msg)
	}
	if done.Cycle != "cycle-1" {
		t.Errorf("Cycle = %q", done.Cycle)
	}
	if done.Result.Text != "thanks for: Hope" {
		t.Errorf("Text = %q", done.Result.Text)
	}
	if !done.Result.Delivered || done.Result.Err != nil {
		t.Errorf("Result = %+v", done.Result)
	}
	if snk.got.Name != "Nimal" {
		t.Errorf("sink got %+v", snk.got)
	}
	if done.Duration < 0 {
		t.Errorf("Duration = %v", done.Duration)
	}
}

func TestSubmitWishCmdHonorsMinDisplay(t *testing.T) {
	p := &kiosk.Pipeline{Generator: echoGenerator{}, Sink: &recordingSink{}, MinDisplay: 30 * time.Millisecond}
	sub := kiosk.WishForm{Name: "a", ContactNumber: "1", Wish: "w"}.Snapshot(time.Now())

	done := SubmitWishCmd(context.Background(), p, sub, "c")().(tui.WishCompleteMsg)
	if done.Duration < 30*time.Millisecond {
		t.Errorf("Duration = %v, want at least 30ms", done.Duration)
	}
}
