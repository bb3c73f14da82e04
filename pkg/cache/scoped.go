package cache

// ScopedKeyer wraps a Keyer with a prefix so several runners can share one
// Redis instance without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "ci:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer uses
// [DefaultKeyer].
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ReportKey returns the prefixed report key.
func (k *ScopedKeyer) ReportKey(topologyHash string) string {
	return k.prefix + k.inner.ReportKey(topologyHash)
}

// RenderKey returns the prefixed render key.
func (k *ScopedKeyer) RenderKey(topologyHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(topologyHash, opts)
}
