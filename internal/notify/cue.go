package notify

import (
	"context"
	"sync/atomic"
)

// Cue is a Player for server-rendered pages: playing it only marks the cue
// as pending, and the next rendered page embeds the sound once.
type Cue struct {
	pending atomic.Bool
}

// Play marks the cue pending. It never fails.
func (c *Cue) Play(context.Context) error {
	c.pending.Store(true)
	return nil
}

// Take reports whether a cue is pending and clears it.
func (c *Cue) Take() bool {
	return c.pending.Swap(false)
}
