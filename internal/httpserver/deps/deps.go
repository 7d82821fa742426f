package deps

import (
	"time"

	"github.com/nexai/hub/internal/catalog"
	"github.com/nexai/hub/internal/logger"
	"github.com/nexai/hub/internal/store"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Catalog      *catalog.Service  // the only externally callable surface
	Store        store.PortalStore // direct access for readiness and infra checks only
	StoreBackend string            // "redis" | "memory"
	TagOrder     []string          // preferred tag ordering for the vocabulary endpoint

	AllowedHosts []string // Host headers allowed on mutating routes
	AllowedCIDRS []string // IPs/CIDRs allowed on mutating routes
	TrustProxy   bool     // true if running behind a trusted reverse proxy (e.g., cloudflared)

	RateLimitBurst  int // token bucket capacity per IP on mutating routes
	RateLimitPerMin int // refill rate per IP per minute
}
