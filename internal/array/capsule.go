package array

import "sync/atomic"

// Capsule is the opaque owner token the host runtime holds to keep a
// heap allocation alive. The release callback runs exactly once, on the
// host's reclamation path; further Release calls are no-ops.
type Capsule struct {
	release  func()
	released atomic.Bool
}

// NewCapsule wraps a release callback into an owner token.
// A nil callback yields a token that owns nothing but still tracks release.
func NewCapsule(release func()) *Capsule {
	return &Capsule{release: release}
}

// Release runs the callback if it has not run yet.
func (c *Capsule) Release() {
	if c == nil {
		return
	}
	if c.released.CompareAndSwap(false, true) && c.release != nil {
		c.release()
	}
}

// Released reports whether the callback has already run.
func (c *Capsule) Released() bool {
	return c != nil && c.released.Load()
}
