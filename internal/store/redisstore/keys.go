package redisstore

const (
	// KeyPrefixPortal is the prefix for per-portal keys
	KeyPrefixPortal = "hub:portal:"
	// KeyAllPortals is the key for the set of all portal IDs
	KeyAllPortals = "hub:portals:all"
)

// PortalKey returns the Redis key for a portal by ID
func PortalKey(id string) string {
	return KeyPrefixPortal + id
}

// AllPortalsKey returns the key for the set of all portal IDs
func AllPortalsKey() string {
	return KeyAllPortals
}
