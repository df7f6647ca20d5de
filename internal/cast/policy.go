// Package cast converts between the strongly-typed native values in
// package mat and the host runtime's dynamically-typed arrays,
// deciding per call whether the host gets a copy, a zero-copy view, or
// ownership of the native storage.
package cast

// Policy is the requested ownership contract for an outbound
// conversion.
type Policy uint8

const (
	// Automatic resolves to Copy: the safe default for a value whose
	// lifetime the bridge knows nothing about.
	Automatic Policy = iota
	// AutomaticReference resolves to Reference: for data that is
	// already kept alive by its surroundings, such as member storage
	// of a live object.
	AutomaticReference
	// Copy duplicates the elements into host-owned storage.
	Copy
	// Move transfers ownership of the native storage to the host via
	// a capsule. Subject to the size heuristic in Resolve.
	Move
	// Reference shares the caller's storage with no transfer and no
	// capsule. The caller keeps the storage alive.
	Reference
	// ReferenceParent shares the caller's storage and binds the host
	// object's owner to the parent that supplied the data.
	ReferenceParent
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Automatic:
		return "automatic"
	case AutomaticReference:
		return "automatic-reference"
	case Copy:
		return "copy"
	case Move:
		return "move"
	case Reference:
		return "reference"
	case ReferenceParent:
		return "reference-parent"
	default:
		return "unknown"
	}
}

// MoveThresholdBytes is the footprint below which a requested Move is
// downgraded to Copy: under it, allocating a capsule and installing a
// release callback costs more than the copy itself. Tunable heuristic.
const MoveThresholdBytes = 1024

// Resolve turns a requested policy into the effective one, given the
// static facts about the native value: whether its extents were fixed
// at construction and its element footprint. Pure function; evaluated
// once per outbound conversion.
func Resolve(requested Policy, fixedSize bool, elemCount, elemSize int) Policy {
	switch requested {
	case Automatic:
		return Copy
	case AutomaticReference:
		return Reference
	case Move:
		if fixedSize || elemCount*elemSize < MoveThresholdBytes {
			return Copy
		}
		return Move
	default:
		return requested
	}
}
