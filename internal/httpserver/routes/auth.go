package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/pali/internal/httpserver/deps"
	"github.com/MrSnakeDoc/pali/internal/httpserver/handlers"
)

func init() { Register(registerAuth) }

func registerAuth(r chi.Router, d deps.Deps) {
	s := r.With(site(d)...)
	s.Post("/login/open", handlers.OpenLogin(d))
	s.Post("/login/close", handlers.CloseLogin(d))
	s.Post("/login", handlers.Login(d))
	s.Post("/logout", handlers.Logout(d))
}
