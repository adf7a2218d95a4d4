package mw

import (
	"net/http"

	"github.com/MrSnakeDoc/pali/internal/logger"
	"github.com/MrSnakeDoc/pali/internal/utils"
)

// AllowOnlyCIDRS restricts operator endpoints to the given IPs/CIDRs. An
// empty list lets everything through. trustProxy should only be set behind a
// trusted reverse proxy.
func AllowOnlyCIDRS(allowed []string, trustProxy bool, log logger.Logger) func(http.Handler) http.Handler {
	m := utils.NewIPMatcher(allowed)
	if m.IsEmpty() {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r, trustProxy)
			if !m.Allow(ip) {
				log.Warn("operator endpoint rejected",
					logger.String("path", r.URL.Path),
					logger.String("client_ip", ip),
					logger.Bool("trust_proxy", trustProxy))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
