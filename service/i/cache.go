package i

import "context"

// ArtifactCache stores rendered mazes.
type ArtifactCache interface {
	// Get returns the cached bytes for key and whether they were present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key.
	Set(ctx context.Context, key string, data []byte) error

	// Lock acquires an exclusive lock on key and returns its release function.
	Lock(ctx context.Context, key string) (func(), error)
}
