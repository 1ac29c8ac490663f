package config

import (
    "strings"
    "time"
)

// CacheConfig controls the response cache that fronts the catalog
// reads (stations, routes, trains, journeys). Only the methods listed
// in Methods are cached, GET by default. TTL bounds how stale a cached
// journey's tickets_available figure can get; the value is
// display-only, so a short TTL is a latency/staleness trade, not a
// correctness one. MaxBodyBytes keeps an unexpectedly large listing
// from being stored.
type CacheConfig struct {
    Enabled      bool
    Methods      map[string]bool
    TTL          time.Duration
    KeyStrategy  string
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig builds a CacheConfig from environment variables,
// falling back to defaults sized for the catalog endpoints. The
// "route_query" key strategy caches each filter combination of the
// train and journey listings separately.
func LoadCacheConfig() CacheConfig {
    return CacheConfig{
        Enabled:      envBool("CACHE_ENABLED", true),
        Methods:      parseMethods(getenv("CACHE_METHODS", "GET")),
        TTL:          envDur("CACHE_TTL", 15*time.Second),
        KeyStrategy:  getenv("CACHE_KEY_STRATEGY", "route_query"),
        Prefix:       getenv("CACHE_PREFIX", "train-station:cache"),
        MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
    }
}

func parseMethods(s string) map[string]bool {
    m := make(map[string]bool)
    for _, p := range strings.Split(s, ",") {
        if p = strings.TrimSpace(strings.ToUpper(p)); p != "" {
            m[p] = true
        }
    }
    return m
}
