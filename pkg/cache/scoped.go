package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// Different users or deployment contexts get separate cache namespaces
// without changing how keys are derived.
//
// Example usage:
//
//	// User-specific keys for private graphs
//	userKeyer := NewScopedKeyer(NewDefaultKeyer(), "user:abc123:")
//
//	// Global keys for shared graphs
//	globalKeyer := NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GraphKey generates a prefixed key for a stored graph document.
func (k *ScopedKeyer) GraphKey(name string) string {
	return k.prefix + k.inner.GraphKey(name)
}

// PathsKey generates a prefixed key for a path enumeration result.
func (k *ScopedKeyer) PathsKey(graphHash string, opts PathsKeyOpts) string {
	return k.prefix + k.inner.PathsKey(graphHash, opts)
}

// ArtifactKey generates a prefixed key for a rendered artifact.
func (k *ScopedKeyer) ArtifactKey(graphHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(graphHash, opts)
}
