// Package notify implements the transient "content changed" banner: shown
// with a one-shot audio cue, hidden again after a fixed delay.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/pali/internal/logger"
)

// DefaultDismissAfter is how long a notification stays visible.
const DefaultDismissAfter = 4 * time.Second

// Player plays the audio cue that accompanies a notification.
type Player interface {
	Play(ctx context.Context) error
}

// Notifier is a two-state machine: hidden or visible with a text.
type Notifier struct {
	mu      sync.Mutex
	text    string
	visible bool
	timer   *time.Timer
	gen     uint64 // bumped on every transition; stale timers compare against it

	after  time.Duration
	player Player
	logger logger.Logger
}

// New creates a hidden notifier. A zero after uses DefaultDismissAfter; a nil
// player disables the audio cue.
func New(after time.Duration, player Player, log logger.Logger) *Notifier {
	if after <= 0 {
		after = DefaultDismissAfter
	}
	return &Notifier{
		after:  after,
		player: player,
		logger: log,
	}
}

// Show makes text visible, plays the cue and (re)arms the auto-dismiss timer.
func (n *Notifier) Show(ctx context.Context, text string) {
	n.mu.Lock()
	n.stopTimerLocked()
	n.gen++
	gen := n.gen
	n.text = text
	n.visible = true
	n.timer = time.AfterFunc(n.after, func() { n.expire(gen) })
	n.mu.Unlock()

	if n.player == nil {
		return
	}
	if err := n.player.Play(ctx); err != nil {
		n.logger.Warn("notification cue failed to play", logger.Error(err))
	}
}

// Dismiss hides the notification and cancels the pending timer.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimerLocked()
	n.gen++
	n.text = ""
	n.visible = false
}

// Current returns the visible text, if any.
func (n *Notifier) Current() (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	return n.text, n.visible
}

// Stop cancels the pending timer without changing visibility.
func (n *Notifier) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimerLocked()
}

func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if gen != n.gen {
		return
	}
	n.timer = nil
	n.text = ""
	n.visible = false
}

func (n *Notifier) stopTimerLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
