package handlers

import (
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/pali/internal/httpserver/deps"
	"github.com/MrSnakeDoc/pali/internal/httpserver/mw"
	"github.com/MrSnakeDoc/pali/internal/install"
)

// CaptureInstall records that the browser offered an install prompt.
func CaptureInstall(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mw.Container(r.Context()).UI.Install.Capture(install.BrowserHandle{})
		w.WriteHeader(http.StatusNoContent)
	}
}

// TriggerInstall consumes the captured prompt. The browser shows the
// prompt itself and reports the user's choice in the outcome field.
func TriggerInstall(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())

		ctx := install.WithReportedOutcome(r.Context(), install.Outcome(r.PostFormValue("outcome")))
		if _, err := c.UI.Install.Trigger(ctx); err != nil && !errors.Is(err, install.ErrNoPrompt) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		redirectHome(w, r)
	}
}
