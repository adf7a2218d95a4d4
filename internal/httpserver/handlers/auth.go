package handlers

import (
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/pali/internal/httpserver/deps"
	"github.com/MrSnakeDoc/pali/internal/httpserver/mw"
	"github.com/MrSnakeDoc/pali/internal/session"
	"github.com/MrSnakeDoc/pali/internal/view"
)

// OpenLogin shows the admin login modal.
func OpenLogin(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Auth.OpenLogin(mw.Container(r.Context()))
		redirectHome(w, r)
	}
}

// CloseLogin hides the admin login modal.
func CloseLogin(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Auth.CloseLogin(mw.Container(r.Context()))
		redirectHome(w, r)
	}
}

// Login checks the passphrase. A wrong passphrase re-renders the page with
// the modal still open.
func Login(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())

		err := d.Auth.SubmitPassword(r.Context(), c, r.PostFormValue("password"))
		if errors.Is(err, session.ErrIncorrectPassword) {
			renderPage(d, w, http.StatusUnauthorized, buildPageData(d, c, view.Filter{}))
			return
		}
		redirectHome(w, r)
	}
}

// Logout ends the admin session and forgets the user name.
func Logout(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d.Auth.Logout(r.Context(), mw.Container(r.Context()))
		redirectHome(w, r)
	}
}
