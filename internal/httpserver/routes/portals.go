package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/nexai/hub/internal/httpserver/deps"
	"github.com/nexai/hub/internal/httpserver/handlers"
	"github.com/nexai/hub/internal/httpserver/mw"
)

func init() { Register(registerPortals) }

func registerPortals(r chi.Router, d deps.Deps) {
	// Reads are public.
	r.Get("/portals", handlers.ListPortals(d))
	r.Get("/tags", handlers.Tags(d))

	// Mutations carry the admin credential and sit behind the optional
	// host/CIDR allow-lists plus a per-IP rate limit.
	mutating := r.With(
		mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger),
		mw.EnforceHost(d.AllowedHosts, d.Logger),
		mw.RateLimit(mw.RateLimitConfig{
			Burst:             d.RateLimitBurst,
			RefillPerIPPerMin: d.RateLimitPerMin,
			TrustProxy:        d.TrustProxy,
		}),
	)
	mutating.Post("/portals", handlers.CreatePortal(d))
	mutating.Put("/portals/{id}", handlers.UpdatePortal(d))
	mutating.Patch("/portals/{id}", handlers.UpdatePortal(d))
	mutating.Delete("/portals/{id}", handlers.DeletePortal(d))
}
