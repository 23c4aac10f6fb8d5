package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads declarations from the given paths (files or directories),
	// translates them into the format-agnostic model, and returns the
	// resulting manifest. Discovery is deterministic: the same paths
	// always produce modules in the same order.
	Load(ctx context.Context, paths ...string) (*Manifest, error)
}
