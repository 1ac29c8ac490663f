package config

import (
    "context"
    "crypto/tls"
    "time"

    "github.com/redis/go-redis/v9"
)

// NewRedisClient connects to the redis instance backing the response
// cache and the rate limiter. Neither concern is load-bearing for
// bookings — seat conflicts are settled by the tickets unique key in
// MySQL — so when redis is unreachable the function returns nil and
// both middlewares turn themselves off instead of blocking startup.
//
// Environment variables:
//
//	REDIS_ADDR     host:port (default localhost:6379)
//	REDIS_HOST     with REDIS_PORT, overrides REDIS_ADDR
//	REDIS_PASSWORD optional
//	REDIS_DB       database number (default 0)
//	REDIS_TLS      "true"/"1" to dial with TLS
func NewRedisClient() *redis.Client {
    addr := getenv("REDIS_ADDR", "localhost:6379")
    if host, port := getenv("REDIS_HOST", ""), getenv("REDIS_PORT", ""); host != "" && port != "" {
        addr = host + ":" + port
    }

    var tlsConf *tls.Config
    if envBool("REDIS_TLS", false) {
        tlsConf = &tls.Config{InsecureSkipVerify: true}
    }

    client := redis.NewClient(&redis.Options{
        Addr:      addr,
        Password:  getenv("REDIS_PASSWORD", ""),
        DB:        envInt("REDIS_DB", 0),
        TLSConfig: tlsConf,
    })

    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        return nil
    }
    return client
}
