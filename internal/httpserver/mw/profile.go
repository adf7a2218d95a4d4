package mw

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/pali/internal/i18n"
	"github.com/MrSnakeDoc/pali/internal/logger"
	"github.com/MrSnakeDoc/pali/internal/profile"
	"github.com/MrSnakeDoc/pali/internal/state"
)

// ProfileCookie is the cookie carrying the profile id
const ProfileCookie = "pali_profile"

const profileCookieMaxAge = 400 * 24 * time.Hour

type ctxKey int

const containerKey ctxKey = iota

// Profile resolves the profile of the request from its cookie, issuing a new
// id when the cookie is missing or malformed, and stores the container in the
// request context. A new profile takes its language from Accept-Language.
// Requests that change state, meaning unsafe methods and GETs carrying a page
// query, hold the container lock for their whole duration so that operations
// on one profile never interleave. The container is not evicted while a
// request holds it.
func Profile(reg *profile.Registry, secure bool, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, fresh := "", false
			if ck, err := r.Cookie(ProfileCookie); err == nil && profile.ValidProfileID(ck.Value) {
				id = ck.Value
			}
			if id == "" {
				id, fresh = profile.NewProfileID(), true
				log.Debug("issued new profile", logger.String("profile", id))
			}
			SetProfileCookie(w, id, secure)

			c, release := reg.Acquire(r.Context(), id)
			defer release()
			if al := r.Header.Get("Accept-Language"); fresh && al != "" {
				c.Lang.Set(r.Context(), i18n.Match(al, c.Lang.Get()))
			}
			r = r.WithContext(context.WithValue(r.Context(), containerKey, c))

			if !mutates(r) {
				next.ServeHTTP(w, r)
				return
			}
			_ = c.Exclusive(func() error {
				next.ServeHTTP(w, r)
				return nil
			})
		})
	}
}

// mutates reports whether r may change profile state
func mutates(r *http.Request) bool {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		return r.URL.Query().Has("page")
	case http.MethodOptions:
		return false
	}
	return true
}

// SetProfileCookie (re)issues the profile cookie
func SetProfileCookie(w http.ResponseWriter, id string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     ProfileCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(profileCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearProfileCookie removes the profile cookie
func ClearProfileCookie(w http.ResponseWriter, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     ProfileCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Container returns the profile container stored by Profile
func Container(ctx context.Context) *state.Container {
	c, _ := ctx.Value(containerKey).(*state.Container)
	return c
}

// RequireAdmin rejects requests whose profile is not logged in as admin
func RequireAdmin(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := Container(r.Context())
			if c == nil || !c.IsAdmin.Get() {
				log.Debug("admin route rejected", logger.String("path", r.URL.Path))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
