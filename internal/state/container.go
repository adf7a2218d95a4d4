// Package state holds one profile's application state: five persisted
// slices plus transient UI state.
package state

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/pali/internal/domain"
	"github.com/MrSnakeDoc/pali/internal/i18n"
	"github.com/MrSnakeDoc/pali/internal/install"
	"github.com/MrSnakeDoc/pali/internal/logger"
	"github.com/MrSnakeDoc/pali/internal/notify"
	"github.com/MrSnakeDoc/pali/internal/store"
)

// Options configures Open.
type Options struct {
	// NotifyAfter is the notification auto-dismiss delay; zero uses
	// notify.DefaultDismissAfter.
	NotifyAfter time.Duration
	// SeedContent replaces domain.DefaultContent as the first-run content.
	SeedContent *domain.Content
	Logger      logger.Logger
}

// Container is the state of one profile.
type Container struct {
	mu sync.Mutex

	profileID string
	adapter   *store.Adapter
	logger    logger.Logger

	Theme   *Slice[domain.Theme]
	Lang    *Slice[domain.Language]
	User    *Slice[*string]
	IsAdmin *Slice[bool]
	Content *Slice[domain.Content]

	UI *UI
}

// Open performs the initial load of every slice. Missing or unreadable
// slices start from their defaults; Open never fails.
func Open(ctx context.Context, a *store.Adapter, opts Options) *Container {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With(logger.String("profile", a.ProfileID()))

	def := domain.DefaultContent()
	if opts.SeedContent != nil {
		def = opts.SeedContent.Clone().Normalize()
	}

	cue := &notify.Cue{}
	c := &Container{
		profileID: a.ProfileID(),
		adapter:   a,
		logger:    log,

		Theme:   loadSlice(ctx, a, store.KeyTheme, domain.ThemeLight, fixTheme),
		Lang:    loadSlice(ctx, a, store.KeyLang, domain.LangMyanmar, fixLang),
		User:    loadSlice(ctx, a, store.KeyUser, (*string)(nil), copyUser),
		IsAdmin: loadSlice[bool](ctx, a, store.KeyIsAdmin, false, nil),
		Content: loadSlice(ctx, a, store.KeyAppData, def, fixContent),

		UI: &UI{
			activePage: domain.PageVideos,
			Notifier:   notify.New(opts.NotifyAfter, cue, log),
			Cue:        cue,
			Install:    install.NewSlot(log),
		},
	}

	log.Debug("profile state loaded",
		logger.String("theme", string(c.Theme.Get())),
		logger.String("lang", string(c.Lang.Get())),
		logger.Bool("isAdmin", c.IsAdmin.Get()))

	return c
}

// ProfileID returns the id of the profile this container belongs to.
func (c *Container) ProfileID() string { return c.profileID }

// Logger returns the profile scoped logger.
func (c *Container) Logger() logger.Logger { return c.logger }

// Exclusive runs fn while holding the container lock. Every request that
// mutates the container goes through it, so operations on one profile never
// interleave.
func (c *Container) Exclusive(fn func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return fn()
}

// NotifyContentChanged shows the localized "content changed" banner.
func (c *Container) NotifyContentChanged(ctx context.Context) {
	c.UI.Notifier.Show(ctx, i18n.T(c.Lang.Get(), "notification"))
}

// SetActivePage navigates to p. Leaving the admin page discards the draft.
func (c *Container) SetActivePage(p domain.Page) {
	if c.UI.ActivePage() == domain.PageAdmin && p != domain.PageAdmin {
		c.UI.discardDraft()
	}
	c.UI.setActivePage(p)
}

// Reset deletes every persisted slice of the profile and stops its timers.
// The container must not be used afterwards.
func (c *Container) Reset(ctx context.Context) error {
	c.Close()
	return c.adapter.Clear(ctx)
}

// Close releases timers held by the container.
func (c *Container) Close() {
	c.UI.Notifier.Stop()
}

func fixTheme(t domain.Theme) domain.Theme {
	if t != domain.ThemeLight && t != domain.ThemeDark {
		return domain.ThemeLight
	}
	return t
}

func fixLang(l domain.Language) domain.Language {
	if !l.Valid() {
		return domain.LangMyanmar
	}
	return l
}

func copyUser(u *string) *string {
	if u == nil {
		return nil
	}
	v := *u
	return &v
}

func fixContent(c domain.Content) domain.Content {
	return c.Clone().Normalize()
}
