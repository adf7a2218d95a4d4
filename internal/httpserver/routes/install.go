package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/pali/internal/httpserver/deps"
	"github.com/MrSnakeDoc/pali/internal/httpserver/handlers"
)

func init() { Register(registerInstall) }

func registerInstall(r chi.Router, d deps.Deps) {
	s := r.With(site(d)...)
	s.Post("/install/capture", handlers.CaptureInstall(d))
	s.Post("/install", handlers.TriggerInstall(d))
}
