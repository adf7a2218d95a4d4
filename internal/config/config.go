package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Site
	AdminPassphrase string        // shared admin passphrase, compared as plaintext
	SeedFile        string        // optional YAML file with first-run content
	SeedReload      time.Duration // interval to reload the seed file (0 = only on start and /reload)
	RawHTML         bool          // true => render schedule/history HTML unsanitised
	NotifyAfter     time.Duration // notification auto-dismiss delay (default: 4s)

	// Profiles
	ProfileIdleTTL       time.Duration // drop in-memory profiles idle this long (default: 30m)
	ProfileSweepInterval time.Duration // how often to look for idle profiles (default: 5m)
	CookieSecure         bool          // set the Secure flag on the profile cookie

	// Redis (empty RedisAddr => in-memory backend)
	RedisAddr             string        // ex: "localhost:6379"
	RedisUser             string        // optional
	RedisPassword         string        // optional
	RedisPasswordRequired bool          // true => require password, false => allow empty password
	RedisDB               int           // Redis DB number
	RedisDT               time.Duration // Redis dial timeout (ex: 5s)
	RedisRT               time.Duration // Redis read timeout (ex: 3s)
	RedisWT               time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait          time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout      time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize         int           // Redis connection pool size
	RedisConnectTimeout   time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval    time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold    int           // warn after this many attempts

	AllowedHosts   []string // optional, restrict access to specific Host headers
	AllowedCIDRS   []string // optional, restrict /reload, /readyz and /infra to specific IPs (e.g. "1.2.3.4, 10.0.0.0/8")
	TrustProxy     bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
	CORSOrigins    []string // origins allowed to call /api/* (empty => same origin only)
	TrustedOrigins []string // host[:port] values allowed to post forms cross-site
	APIRateLimit   int      // requests per minute per client on /api/* (0 = unlimited)
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("PALI_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("PALI_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("PALI_LOG_LEVEL", "info"),
		PrettyLog: mustBool("PALI_PRETTY_LOG", false),

		// Site
		AdminPassphrase: getenv("PALI_ADMIN_PASSPHRASE", "sivali"),
		SeedFile:        getenv("PALI_SEED_FILE", ""),
		SeedReload:      mustDuration("PALI_SEED_RELOAD_INTERVAL", 0),
		RawHTML:         mustBool("PALI_RAW_HTML", false),
		NotifyAfter:     mustDuration("PALI_NOTIFY_AFTER", 4*time.Second),

		// Profiles
		ProfileIdleTTL:       mustDuration("PALI_PROFILE_IDLE_TTL", 30*time.Minute),
		ProfileSweepInterval: mustDuration("PALI_PROFILE_SWEEP_INTERVAL", 5*time.Minute),
		CookieSecure:         mustBool("PALI_COOKIE_SECURE", false),

		// Redis settings
		RedisAddr:             getenv("PALI_REDIS_ADDR", ""),
		RedisUser:             getenv("PALI_REDIS_USERNAME", "default"),
		RedisPasswordRequired: mustBool("PALI_REDIS_PASSWORD_REQUIRED", false),
		RedisPassword:         getenv("PALI_REDIS_PASSWORD", ""),
		RedisDB:               getenvInt("PALI_REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts:   splitAndTrim(getenv("PALI_ALLOWED_HOSTS", "")),
		AllowedCIDRS:   parseAllowedIPs(getenv("PALI_ALLOWED_CIDRS", "")),
		TrustProxy:     mustBool("PALI_TRUST_PROXY", false),
		CORSOrigins:    splitAndTrim(getenv("PALI_CORS_ORIGINS", "")),
		TrustedOrigins: splitAndTrim(getenv("PALI_TRUSTED_ORIGINS", "")),
		APIRateLimit:   getenvInt("PALI_API_RATE_LIMIT", 60),
	}

	// Validate Redis password configuration
	if cfg.RedisAddr != "" && cfg.RedisPasswordRequired {
		cfg.RedisPassword = requireEnv("PALI_REDIS_PASSWORD")
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// UseRedis reports whether profiles are stored in Redis rather than memory
func (c *Config) UseRedis() bool { return c.RedisAddr != "" }

// Redacted returns a copy safe to print
func (c *Config) Redacted() Config {
	cfgCopy := *c
	cfgCopy.AdminPassphrase = "***REDACTED***"
	if c.RedisPassword != "" {
		cfgCopy.RedisPassword = "***REDACTED***"
	}
	if c.RedisUser != "" {
		cfgCopy.RedisUser = "***REDACTED***"
	}
	return cfgCopy
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func parseAllowedIPs(allowed string) []string {
	if allowed == "" {
		return nil
	}
	ips := make([]string, 0, 4)
	for _, ip := range splitAndTrim(allowed) {
		if ip != "" {
			ips = append(ips, ip)
		}
	}
	return ips
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
