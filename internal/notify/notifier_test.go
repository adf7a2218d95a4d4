package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MrSnakeDoc/pali/internal/logger"
)

type failingPlayer struct{ calls int }

func (p *failingPlayer) Play(context.Context) error {
	p.calls++
	return errors.New("autoplay blocked")
}

func waitHidden(t *testing.T, n *Notifier, within time.Duration) {
	t.Helper()
	deadline := time.Now().Add(within)
	for time.Now().Before(deadline) {
		if _, visible := n.Current(); !visible {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("notification still visible after %v", within)
}

func TestShowThenAutoHide(t *testing.T) {
	n := New(30*time.Millisecond, nil, logger.New("error", false))

	n.Show(context.Background(), "New content added!")
	text, visible := n.Current()
	if !visible || text != "New content added!" {
		t.Fatalf("Current() = (%q, %v), want visible text", text, visible)
	}

	waitHidden(t, n, time.Second)
}

func TestDismissCancelsTimer(t *testing.T) {
	n := New(time.Hour, nil, logger.New("error", false))

	n.Show(context.Background(), "hi")
	n.Dismiss()

	if _, visible := n.Current(); visible {
		t.Fatal("Dismiss() should hide the notification")
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		t.Error("Dismiss() should cancel the timer")
	}
}

func TestShowRestartsTimer(t *testing.T) {
	n := New(200*time.Millisecond, nil, logger.New("error", false))
	ctx := context.Background()

	n.Show(ctx, "first")
	time.Sleep(120 * time.Millisecond)
	n.Show(ctx, "second")
	time.Sleep(120 * time.Millisecond)

	// The first timer would have fired by now; the restart keeps it visible.
	text, visible := n.Current()
	if !visible || text != "second" {
		t.Fatalf("Current() = (%q, %v), want (second, true)", text, visible)
	}
	waitHidden(t, n, time.Second)
}

func TestCueFailureIsSwallowed(t *testing.T) {
	p := &failingPlayer{}
	n := New(time.Hour, p, logger.New("error", false))
	defer n.Stop()

	n.Show(context.Background(), "hi")

	if p.calls != 1 {
		t.Errorf("Play() called %d times, want 1", p.calls)
	}
	if _, visible := n.Current(); !visible {
		t.Error("text should display even when the cue fails")
	}
}

func TestCueTakeOnce(t *testing.T) {
	var c Cue
	if c.Take() {
		t.Fatal("new Cue should not be pending")
	}
	_ = c.Play(context.Background())
	if !c.Take() {
		t.Fatal("Take() after Play() should be true")
	}
	if c.Take() {
		t.Fatal("Take() should clear the pending cue")
	}
}

func TestDefaultDelay(t *testing.T) {
	n := New(0, nil, logger.NewNop())
	if n.after != DefaultDismissAfter {
		t.Errorf("after = %v, want %v", n.after, DefaultDismissAfter)
	}
}
