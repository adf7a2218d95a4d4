package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/pali/internal/httpserver/deps"
	"github.com/MrSnakeDoc/pali/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/pali/internal/httpserver/mw"
)

func init() { Register(registerAdmin) }

func registerAdmin(r chi.Router, d deps.Deps) {
	r.Route("/admin", func(r chi.Router) {
		r.Use(site(d)...)
		r.Use(mw.RequireAdmin(d.Logger))

		r.Post("/commit", handlers.AdminCommit(d))
		r.Post("/scalar", handlers.AdminScalar(d))
		r.Post("/{section}", handlers.AdminAdd(d))
		r.Post("/{section}/{id}", handlers.AdminUpdate(d))
		r.Post("/{section}/{id}/delete", handlers.AdminDelete(d))
	})
}
