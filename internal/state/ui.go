package state

import (
	"context"
	"sync"

	"github.com/MrSnakeDoc/pali/internal/content"
	"github.com/MrSnakeDoc/pali/internal/domain"
	"github.com/MrSnakeDoc/pali/internal/install"
	"github.com/MrSnakeDoc/pali/internal/notify"
)

// UI is transient state. None of it is persisted.
type UI struct {
	mu         sync.Mutex
	activePage domain.Page
	loginOpen  bool
	loginError string
	flash      string
	draft      *content.Draft

	Notifier *notify.Notifier
	Cue      *notify.Cue
	Install  *install.Slot
}

// ActivePage returns the page currently shown.
func (u *UI) ActivePage() domain.Page {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.activePage
}

func (u *UI) setActivePage(p domain.Page) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.activePage = p
}

// LoginOpen reports whether the login modal is shown.
func (u *UI) LoginOpen() bool {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.loginOpen
}

// SetLoginOpen shows or hides the login modal. Any previous error is cleared.
func (u *UI) SetLoginOpen(open bool) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.loginOpen = open
	u.loginError = ""
}

// LoginError returns the message shown in the login modal, if any.
func (u *UI) LoginError() string {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.loginError
}

// SetLoginError sets the message shown in the login modal.
func (u *UI) SetLoginError(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.loginError = msg
}

// SetFlash sets a one-time message for the next rendered page.
func (u *UI) SetFlash(msg string) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.flash = msg
}

// TakeFlash returns the pending message and clears it.
func (u *UI) TakeFlash() string {
	u.mu.Lock()
	defer u.mu.Unlock()

	msg := u.flash
	u.flash = ""
	return msg
}

// CurrentDraft returns the open draft, or nil.
func (u *UI) CurrentDraft() *content.Draft {
	u.mu.Lock()
	defer u.mu.Unlock()

	return u.draft
}

func (u *UI) discardDraft() {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.draft = nil
}

// Draft returns the admin draft, opening one from the committed content if
// none is open. Adding an item to the draft shows the "content changed"
// notification.
func (c *Container) Draft() *content.Draft {
	c.UI.mu.Lock()
	defer c.UI.mu.Unlock()

	if c.UI.draft == nil {
		c.UI.draft = content.NewDraft(c.Content.Get(), func() {
			c.NotifyContentChanged(context.Background())
		})
	}
	return c.UI.draft
}

// DiscardDraft drops the admin draft without committing it.
func (c *Container) DiscardDraft() {
	c.UI.discardDraft()
}

// CommitDraft writes the open draft as the new content. It reports false
// when no draft is open.
func (c *Container) CommitDraft(ctx context.Context) bool {
	d := c.UI.CurrentDraft()
	if d == nil {
		return false
	}
	d.Commit(ctx, c.Content)
	return true
}
