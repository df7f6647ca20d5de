package cast

import (
	"fmt"
	"sort"
	"sync"

	"github.com/matcast-go/matcast/internal/array"
)

// Flags adjust inbound conversion behavior.
type Flags uint8

const (
	// FlagNone requests the default behavior.
	FlagNone Flags = 0
	// FlagRequirePacked additionally requires unit stride on the
	// inner axis. Used by the restricted view marshaller.
	FlagRequirePacked Flags = 1 << 0
)

// InboundCaster is the host-to-native half of the per-type conversion
// contract. TryFromHost never returns an error: a false result leaves
// no partially-constructed native value behind, so a binding layer can
// try several candidate native types in sequence.
type InboundCaster interface {
	TryFromHost(obj *array.Array, flags Flags) bool
}

// OutboundCaster is the native-to-host half of the contract. It either
// produces a valid host array or reports an error; there is no
// fallback target on the outbound path.
type OutboundCaster interface {
	ToHost(policy Policy) (*array.Array, error)
}

// Registry state for binding layers that look casters up by a native
// kind name at dispatch time. Expression kinds register as
// outbound-only and are rejected on the inbound path.
var (
	regMu        sync.RWMutex
	inboundReg   = map[string]func() InboundCaster{}
	outboundOnly = map[string]struct{}{}
)

// Register installs an inbound caster factory under a kind name,
// replacing any previous registration.
func Register(kind string, factory func() InboundCaster) {
	regMu.Lock()
	defer regMu.Unlock()
	inboundReg[kind] = factory
	delete(outboundOnly, kind)
}

// RegisterOutboundOnly records a kind that can never be constructed
// from host data, such as an expression type.
func RegisterOutboundOnly(kind string) {
	regMu.Lock()
	defer regMu.Unlock()
	outboundOnly[kind] = struct{}{}
	delete(inboundReg, kind)
}

// NewInbound returns a fresh inbound caster for the kind, or
// ErrExpressionNotConvertible for outbound-only kinds.
func NewInbound(kind string) (InboundCaster, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	if _, ok := outboundOnly[kind]; ok {
		return nil, fmt.Errorf("%w: kind %q", ErrExpressionNotConvertible, kind)
	}
	factory, ok := inboundReg[kind]
	if !ok {
		return nil, fmt.Errorf("cast: unknown native kind %q", kind)
	}
	return factory(), nil
}

// Kinds returns the registered kind names, sorted, inbound and
// outbound-only alike.
func Kinds() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	kinds := make([]string, 0, len(inboundReg)+len(outboundOnly))
	for k := range inboundReg {
		kinds = append(kinds, k)
	}
	for k := range outboundOnly {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
