package mw

import (
	"crypto/rand"
	"net/http"

	"filippo.io/csrf/gorilla"

	"github.com/MrSnakeDoc/pali/internal/logger"
)

// CSRF rejects cross-site form posts using the browser's Fetch metadata
// (Sec-Fetch-Site, Origin). Requests carrying neither header, such as
// scripts and probes, pass. trustedOrigins are host[:port] values allowed to
// post across origins.
func CSRF(trustedOrigins []string, log logger.Logger) func(http.Handler) http.Handler {
	// The Fetch metadata check does not use the key.
	key := make([]byte, 32)
	_, _ = rand.Read(key)

	opts := []csrf.Option{
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reason := "unknown"
			if err := csrf.FailureReason(r); err != nil {
				reason = err.Error()
			}
			log.Warn("cross-site request rejected",
				logger.String("reason", reason),
				logger.String("method", r.Method),
				logger.String("path", r.URL.Path),
				logger.String("origin", r.Header.Get("Origin")),
				logger.String("sec_fetch_site", r.Header.Get("Sec-Fetch-Site")))
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})),
	}
	if len(trustedOrigins) > 0 {
		opts = append(opts, csrf.TrustedOrigins(trustedOrigins))
	}
	return csrf.Protect(key, opts...)
}
