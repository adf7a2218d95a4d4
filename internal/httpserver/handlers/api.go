package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/pali/internal/domain"
	"github.com/MrSnakeDoc/pali/internal/httpserver/deps"
	"github.com/MrSnakeDoc/pali/internal/httpserver/mw"
	"github.com/MrSnakeDoc/pali/internal/logger"
)

type stateResponse struct {
	Profile string          `json:"profile"`
	Theme   domain.Theme    `json:"theme"`
	Lang    domain.Language `json:"lang"`
	User    *string         `json:"user"`
	IsAdmin bool            `json:"isAdmin"`
	Page    domain.Page     `json:"page"`
	AppData domain.Content  `json:"appData"`
}

// State returns the persisted state of the calling profile.
func State(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mw.Container(r.Context())

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		if err := json.NewEncoder(w).Encode(stateResponse{
			Profile: c.ProfileID(),
			Theme:   c.Theme.Get(),
			Lang:    c.Lang.Get(),
			User:    c.User.Get(),
			IsAdmin: c.IsAdmin.Get(),
			Page:    c.UI.ActivePage(),
			AppData: c.Content.Get(),
		}); err != nil {
			d.Logger.Debug("failed to write state", logger.Error(err))
		}
	}
}
