package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner("Rendering results...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	if s.message != "Rendering results..." {
		t.Errorf("message = %q", s.message)
	}
}

func TestNewRenderSpinnerMessage(t *testing.T) {
	s := newRenderSpinner(context.Background(), "pole")
	if s.message != "Rendering pole..." {
		t.Errorf("message = %q, want %q", s.message, "Rendering pole...")
	}
	s.Start()
	s.Stop()
}

func TestSpinnerCancelledByContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newRenderSpinner(ctx, "lineup")
	s.Start()
	cancel()

	// Give the goroutine time to notice the cancellation.
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancelled after context cancellation")
	}
}

func TestSpinnerCancelledByTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "Rendering presentation...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("spinner should report cancelled after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newRenderSpinner(context.Background(), "numbers")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithSuccess(t *testing.T) {
	s := newRenderSpinner(context.Background(), "results")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("Rendered results")
}

func TestSpinnerStopWithError(t *testing.T) {
	s := newRenderSpinner(context.Background(), "details")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("Rendering details failed")
}
