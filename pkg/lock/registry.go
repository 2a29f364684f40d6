// Package lock serializes wizard turns per session. Two concurrent turns on
// the same session must never interleave their read-modify-write cycles.
package lock

import "context"

// Registry hands out per-key locks. Acquire blocks until the lock is held or
// the context is done, and returns the release function.
type Registry interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}
