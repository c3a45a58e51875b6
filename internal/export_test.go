package internal

import "github.com/go-redis/redis/v8"

// SetTracingSetup swaps the tracing setup used by NewServer and returns a func restoring it.
func SetTracingSetup(fn func(enabled bool, serviceName string, rdb *redis.Client) (func(), error)) func() {
	prev := setupTracing
	setupTracing = fn
	return func() {
		setupTracing = prev
	}
}
