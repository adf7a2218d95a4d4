package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/pali/internal/httpserver/deps"
	"github.com/MrSnakeDoc/pali/internal/httpserver/handlers"
)

func init() { Register(registerPages) }

func registerPages(r chi.Router, d deps.Deps) {
	s := r.With(site(d)...)
	s.Get("/", handlers.Page(d))
	s.Post("/user", handlers.EnterName(d))
	s.Post("/theme", handlers.ToggleTheme(d))
	s.Post("/lang", handlers.SetLang(d))
	s.Post("/contact", handlers.Contact(d))
	s.Post("/notification/dismiss", handlers.DismissNotification(d))
	s.Post("/reset", handlers.Reset(d))
}
