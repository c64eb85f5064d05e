package config

import "context"

// Loader is the interface for a format-specific rule-library loader.
type Loader interface {
	// Load reads rule libraries from the given paths (files or directories),
	// translates them into the format-agnostic model, and returns the merged
	// result. Paths that do not exist are skipped, not errors.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
