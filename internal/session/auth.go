// Package session implements the admin login and first-run name entry flows
// on top of a profile's state.
package session

import (
	"context"
	"errors"
	"strings"

	"github.com/MrSnakeDoc/pali/internal/domain"
	"github.com/MrSnakeDoc/pali/internal/i18n"
	"github.com/MrSnakeDoc/pali/internal/logger"
	"github.com/MrSnakeDoc/pali/internal/state"
)

var (
	ErrIncorrectPassword = errors.New("session: incorrect password")
	ErrEmptyName         = errors.New("session: name must not be empty")
)

// AdminState is the position of a profile in the login flow.
type AdminState int

const (
	LoggedOut AdminState = iota
	AwaitingPassword
	LoggedIn
)

func (s AdminState) String() string {
	switch s {
	case LoggedOut:
		return "loggedOut"
	case AwaitingPassword:
		return "awaitingPassword"
	case LoggedIn:
		return "loggedIn"
	}
	return "unknown"
}

// Auth checks the shared admin passphrase.
//
// The passphrase is a plaintext, case-sensitive shared secret. There is no
// attempt counting.
type Auth struct {
	passphrase string
	logger     logger.Logger
}

// NewAuth creates an Auth for passphrase.
func NewAuth(passphrase string, log logger.Logger) *Auth {
	return &Auth{passphrase: passphrase, logger: log}
}

// State derives the login state of c.
func State(c *state.Container) AdminState {
	switch {
	case c.IsAdmin.Get():
		return LoggedIn
	case c.UI.LoginOpen():
		return AwaitingPassword
	default:
		return LoggedOut
	}
}

// OpenLogin shows the login modal.
func (a *Auth) OpenLogin(c *state.Container) {
	c.UI.SetLoginOpen(true)
}

// CloseLogin hides the login modal without logging in.
func (a *Auth) CloseLogin(c *state.Container) {
	c.UI.SetLoginOpen(false)
}

// SubmitPassword compares password with the passphrase. On success the
// admin flag is persisted, the modal closes and the admin page opens. On
// failure the modal stays open with an error and ErrIncorrectPassword is
// returned.
func (a *Auth) SubmitPassword(ctx context.Context, c *state.Container, password string) error {
	if password != a.passphrase {
		c.UI.SetLoginError(i18n.T(c.Lang.Get(), "incorrectPassword"))
		a.logger.Info("admin login rejected", logger.String("profile", c.ProfileID()))
		return ErrIncorrectPassword
	}

	c.IsAdmin.Set(ctx, true)
	c.UI.SetLoginOpen(false)
	c.SetActivePage(domain.PageAdmin)
	a.logger.Info("admin logged in", logger.String("profile", c.ProfileID()))
	return nil
}

// Logout clears the admin flag and the user name and returns to the videos
// page. Any uncommitted draft is dropped.
func (a *Auth) Logout(ctx context.Context, c *state.Container) {
	c.IsAdmin.Set(ctx, false)
	c.User.Set(ctx, nil)
	c.SetActivePage(domain.PageVideos)
	c.DiscardDraft()
	a.logger.Info("logged out", logger.String("profile", c.ProfileID()))
}

// HasUser reports whether the first-run name has been entered. A blank
// stored name counts as no name.
func HasUser(c *state.Container) bool {
	u := c.User.Get()
	return u != nil && strings.TrimSpace(*u) != ""
}

// EnterName stores the trimmed name. An empty or blank name is rejected with
// ErrEmptyName and nothing is stored.
func EnterName(ctx context.Context, c *state.Container, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	c.User.Set(ctx, &name)
	return nil
}
