// Package install holds the deferred "add to home screen" prompt that the
// hosting platform hands out once a site is installable.
package install

import (
	"context"
	"errors"
	"sync"

	"github.com/MrSnakeDoc/pali/internal/logger"
)

// ErrNoPrompt is returned by Trigger when no prompt has been captured.
var ErrNoPrompt = errors.New("install: no prompt captured")

// Outcome is the user's answer to the install prompt.
type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeDismissed Outcome = "dismissed"
)

// Handle is the platform's opaque installability signal.
type Handle interface {
	Prompt(ctx context.Context) (Outcome, error)
}

// Slot keeps at most one captured handle.
type Slot struct {
	mu     sync.Mutex
	handle Handle
	logger logger.Logger
}

// NewSlot creates an empty slot
func NewSlot(log logger.Logger) *Slot {
	return &Slot{logger: log}
}

// Capture stores h, replacing any earlier handle.
func (s *Slot) Capture(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handle = h
}

// Available reports whether a prompt can be triggered.
func (s *Slot) Available() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.handle != nil
}

// Trigger shows the captured prompt and clears it: a handle is usable once,
// whatever the outcome.
func (s *Slot) Trigger(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	h := s.handle
	s.handle = nil
	s.mu.Unlock()

	if h == nil {
		return "", ErrNoPrompt
	}

	outcome, err := h.Prompt(ctx)
	if err != nil {
		s.logger.Warn("install prompt failed", logger.Error(err))
		return "", err
	}

	if outcome == OutcomeAccepted {
		s.logger.Info("user accepted the install prompt")
	} else {
		s.logger.Info("user dismissed the install prompt")
	}
	return outcome, nil
}
