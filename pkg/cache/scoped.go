package cache

// ScopedKeyer wraps a Keyer with a prefix so different subscriptions or
// tenants get separate cache namespaces.
//
// Example usage:
//
//	// Per-subscription keys when the server handles multiple tenants
//	subKeyer := NewScopedKeyer(NewDefaultKeyer(), "sub:0000-1111:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every generated
// key. A nil inner keyer falls back to the default.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

func (k *ScopedKeyer) GraphKey(snapshotHash string, opts GraphKeyOpts) string {
	return k.prefix + k.inner.GraphKey(snapshotHash, opts)
}

func (k *ScopedKeyer) DocumentKey(graphHash string, opts DocumentKeyOpts) string {
	return k.prefix + k.inner.DocumentKey(graphHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(documentHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(documentHash, opts)
}
