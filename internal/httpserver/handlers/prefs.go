package handlers

import (
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/pali/internal/domain"
	"github.com/MrSnakeDoc/pali/internal/httpserver/deps"
	"github.com/MrSnakeDoc/pali/internal/httpserver/mw"
	"github.com/MrSnakeDoc/pali/internal/i18n"
	"github.com/MrSnakeDoc/pali/internal/logger"
	"github.com/MrSnakeDoc/pali/internal/session"
	"github.com/MrSnakeDoc/pali/internal/view"
)

// EnterName stores the first-run user name. A blank name re-renders the
// name screen with an error.
func EnterName(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())

		err := session.EnterName(r.Context(), c, r.PostFormValue("name"))
		if errors.Is(err, session.ErrEmptyName) {
			data := buildPageData(d, c, view.Filter{})
			data.NameError = i18n.T(data.Lang, "nameRequired")
			renderPage(d, w, http.StatusUnprocessableEntity, data)
			return
		}
		redirectHome(w, r)
	}
}

// ToggleTheme flips between light and dark.
func ToggleTheme(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())
		c.Theme.Update(r.Context(), domain.Theme.Toggle)
		redirectHome(w, r)
	}
}

// SetLang selects the language named by the lang form field, which may be a
// code or a language tag like "en-US". Without it the language toggles.
func SetLang(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())
		raw := r.PostFormValue("lang")

		c.Lang.Update(r.Context(), func(cur domain.Language) domain.Language {
			if raw == "" {
				return cur.Toggle()
			}
			return i18n.Match(raw, cur)
		})
		redirectHome(w, r)
	}
}

// Contact shows the contact number.
func Contact(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())
		c.UI.SetFlash(i18n.T(c.Lang.Get(), "contact") + ": " + c.Content.Get().ContactViber)
		redirectHome(w, r)
	}
}

// DismissNotification hides the notification banner.
func DismissNotification(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mw.Container(r.Context()).UI.Notifier.Dismiss()
		redirectHome(w, r)
	}
}

// Reset deletes every persisted slice of the profile and drops its cookie.
func Reset(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())
		if err := d.Profiles.Reset(r.Context(), c.ProfileID()); err != nil {
			d.Logger.Warn("profile reset incomplete",
				logger.String("profile", c.ProfileID()),
				logger.Error(err))
		}
		mw.ClearProfileCookie(w, d.CookieSecure)
		redirectHome(w, r)
	}
}
