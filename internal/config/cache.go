package config

import "time"

// CacheConfig defines settings for the available-tables response cache.
// When Enabled is false or no Redis client is configured, caching is
// disabled and GET /tables always hits the database. The cache is a
// lazy read: entries are invalidated on table writes but concurrent
// reservation commits may be served a slightly stale listing within
// the TTL.
type CacheConfig struct {
	Enabled bool          // master switch
	TTL     time.Duration // lifetime of a cached listing
	Prefix  string        // key namespace
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled: envBool("CACHE_ENABLED", true),
		TTL:     envDur("CACHE_TTL", 30*time.Second),
		Prefix:  envStr("CACHE_PREFIX", "cache"),
	}
}
