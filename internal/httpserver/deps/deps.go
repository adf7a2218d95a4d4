package deps

import (
	"context"
	"time"

	"github.com/MrSnakeDoc/pali/internal/httpserver/render"
	"github.com/MrSnakeDoc/pali/internal/logger"
	"github.com/MrSnakeDoc/pali/internal/profile"
	"github.com/MrSnakeDoc/pali/internal/session"
	"github.com/MrSnakeDoc/pali/internal/store"
	"github.com/MrSnakeDoc/pali/internal/view"
)

// ProfileCounter counts profiles with persisted state
type ProfileCounter interface {
	CountProfiles(ctx context.Context) (int, error)
}

type Deps struct {
	Logger         logger.Logger
	StartTime      time.Time
	Version        string
	Commit         string
	BuildDate      string
	GoVersion      string
	TimeNow        func() time.Time // for testing, defaults to time.Now
	AllowedHosts   []string         // Host headers allowed to access the server
	AllowedCIDRS   []string         // IPs allowed to access /reload, /readyz and /infra
	TrustProxy     bool             // true if running behind a trusted reverse proxy (e.g., cloudflared)
	CORSOrigins    []string         // origins allowed to call /api/*
	TrustedOrigins []string         // host[:port] values allowed to post forms cross-site
	APIRateLimit   int              // requests per minute per client on /api/* (0 = unlimited)
	CookieSecure   bool             // Secure flag on the profile cookie

	Profiles *profile.Registry // open profile containers
	Backend  store.Backend     // persisted state (redis or memory)
	Counter  ProfileCounter    // nil when the backend cannot count profiles
	Mode     string            // "redis" | "memory"

	Auth     *session.Auth
	Selector *view.Selector
	Renderer *render.Renderer

	SeedFile      string        // optional seed content file
	ReloadTrigger chan struct{} // Channel to trigger a manual seed reload (nil without seed file)
}
