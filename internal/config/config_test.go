package config

import (
    "testing"
    "time"
)

func TestLoadCacheConfigDefaults(t *testing.T) {
    cfg := LoadCacheConfig()
    if !cfg.Enabled {
        t.Error("cache should be enabled by default")
    }
    if !cfg.Methods["GET"] || cfg.Methods["POST"] {
        t.Errorf("Methods = %v, want GET only", cfg.Methods)
    }
    if cfg.TTL != 15*time.Second {
        t.Errorf("TTL = %v, want 15s", cfg.TTL)
    }
    if cfg.Prefix != "train-station:cache" {
        t.Errorf("Prefix = %q, want train-station:cache", cfg.Prefix)
    }
}

func TestLoadRateLimitConfigClampsBadValues(t *testing.T) {
    t.Setenv("RATE_LIMIT_CAPACITY", "0")
    t.Setenv("RATE_LIMIT_REFILL_TOKENS", "-3")
    t.Setenv("RATE_LIMIT_TTL", "1s")
    t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "2s")

    cfg := LoadRateLimitConfig()
    if cfg.Capacity != 1 {
        t.Errorf("Capacity = %d, want clamped to 1", cfg.Capacity)
    }
    if cfg.RefillTokens != 1 {
        t.Errorf("RefillTokens = %d, want clamped to 1", cfg.RefillTokens)
    }
    if want := 10 * time.Second; cfg.TTL != want {
        t.Errorf("TTL = %v, want floor of five refill intervals (%v)", cfg.TTL, want)
    }
}

func TestParseMethods(t *testing.T) {
    m := parseMethods(" get , HEAD ,")
    if !m["GET"] || !m["HEAD"] || len(m) != 2 {
        t.Errorf("parseMethods = %v, want GET and HEAD", m)
    }
}
