package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/pali/internal/httpserver/deps"
	"github.com/MrSnakeDoc/pali/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/pali/internal/httpserver/mw"
)

func init() { Register(registerAPI) }

func registerAPI(r chi.Router, d deps.Deps) {
	r.Route("/api", func(r chi.Router) {
		r.Use(mw.CORS(d.CORSOrigins))
		if d.APIRateLimit > 0 {
			r.Use(mw.RateLimit(mw.RateLimitConfig{
				Burst:             d.APIRateLimit,
				RefillPerIPPerMin: d.APIRateLimit,
				TrustProxy:        d.TrustProxy,
			}))
		}
		r.Use(site(d)...)

		r.Get("/state", handlers.State(d))
	})
}
