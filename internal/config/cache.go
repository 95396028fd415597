package config

import "time"

// CacheConfig defines settings for the candle snapshot cache.  When Enabled
// is false or no Redis client is configured, caching is disabled and every
// chart request goes straight to the upstream exchange.  TTL defines the
// lifetime of cached snapshots; Prefix namespaces the keys so the screener
// can share a Redis instance with other services.
type CacheConfig struct {
    Enabled bool
    TTL     time.Duration
    Prefix  string
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled: envBool("CACHE_ENABLED", true),
        TTL:     envDur("CACHE_TTL", 30*time.Second),
        Prefix:  envStr("CACHE_PREFIX", "candles"),
    }
}
