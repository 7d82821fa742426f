package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	// StoreRedis persists portals in Redis (the production backend).
	StoreRedis = "redis"
	// StoreMemory keeps portals in process memory (dev and tests).
	StoreMemory = "memory"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	AdminToken string // shared admin secret; every mutating call presents it as a bearer token

	StoreBackend string   // "redis" | "memory"
	SeedFile     string   // path to a seed catalog YAML (optional, empty = seeding disabled)
	TagOrder     []string // preferred tag ordering for the filter vocabulary (optional)

	// Redis (only validated when StoreBackend == "redis")
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

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict mutations to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)

	// Rate limiting for mutating endpoints
	RateLimitBurst  int // token bucket capacity per IP
	RateLimitPerMin int // refill rate per IP per minute
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("HUB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("HUB_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("HUB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("HUB_PRETTY_LOG", true),

		// Admin secret
		AdminToken: requireEnv("HUB_ADMIN_TOKEN"),

		// Catalog
		StoreBackend: getenv("HUB_STORE", StoreRedis),
		SeedFile:     getenv("HUB_SEED_FILE", ""), // Optional, empty = seeding disabled
		TagOrder:     splitAndTrim(getenv("HUB_TAG_ORDER", "")),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("HUB_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("HUB_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("HUB_TRUST_PROXY", true),

		// Rate limiting
		RateLimitBurst:  getenvInt("HUB_RATE_LIMIT_BURST", 10),
		RateLimitPerMin: getenvInt("HUB_RATE_LIMIT_PER_MIN", 30),
	}

	switch cfg.StoreBackend {
	case StoreRedis:
		cfg.RedisAddr = requireEnv("HUB_REDIS_ADDR")
		cfg.RedisUser = getenv("HUB_REDIS_USERNAME", "default")
		cfg.RedisPasswordRequired = mustBool("HUB_REDIS_PASSWORD_REQUIRED", true)
		cfg.RedisPassword = getenv("HUB_REDIS_PASSWORD", "")
		cfg.RedisDB = requireEnvInt("HUB_REDIS_DB")
		cfg.RedisDT = mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
		cfg.RedisRT = mustDuration("REDIS_READ_TIMEOUT", 3*time.Second)
		cfg.RedisWT = mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second)
		cfg.RedisMaxWait = mustDuration("REDIS_MAX_WAIT", 10*time.Second)
		cfg.RedisPingTimeout = mustDuration("REDIS_PING_TIMEOUT", 5*time.Second)
		cfg.RedisPoolSize = getenvInt("REDIS_POOL_SIZE", 10)
		cfg.RedisConnectTimeout = mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second)
		cfg.RedisRetryInterval = mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second)
		cfg.RedisWarnThreshold = getenvInt("REDIS_WARN_THRESHOLD", 3)

		if cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
			panic("❌ FATAL: HUB_REDIS_PASSWORD is required when HUB_REDIS_PASSWORD_REQUIRED=true")
		}
	case StoreMemory:
		// Nothing to validate; the catalog lives and dies with the process.
	default:
		panic(fmt.Sprintf("❌ FATAL: Unknown HUB_STORE backend %q (want %q or %q)", cfg.StoreBackend, StoreRedis, StoreMemory))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.AdminToken = "***REDACTED***"
		cfgCopy.RedisPassword = "***REDACTED***"
		if cfg.RedisUser != "" {
			cfgCopy.RedisUser = "***REDACTED***"
		}
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
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

func requireEnvInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid integer value for %s: %s", key, v))
	}
	return i
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
