// Package authz holds the ownership policies applied by the resource usecases.
// Policies are pure: given the caller, the resolved owner of the target resource
// and the requested capability, they return allow/deny. For child records
// (skills, education, certifications, projects) the owner passed in is the owner
// of the parent profile.
package authz

type Capability int

const (
	CapabilityRead Capability = iota
	CapabilityWrite
)

func (c Capability) String() string {
	if c == CapabilityWrite {
		return "write"
	}
	return "read"
}

// Policy decides whether an authenticated caller may exercise a capability on a
// resource owned by ownerID. Unauthenticated callers never reach a policy; the
// auth middleware rejects them first.
type Policy interface {
	Allows(callerID, ownerID int64, cap Capability) bool
}

// OwnerOrReadOnly allows any authenticated caller to read and only the owner to
// write.
type OwnerOrReadOnly struct{}

func (OwnerOrReadOnly) Allows(callerID, ownerID int64, cap Capability) bool {
	if cap == CapabilityRead {
		return true
	}
	return callerID == ownerID
}

// OwnerOnly restricts both capabilities to the owner.
type OwnerOnly struct{}

func (OwnerOnly) Allows(callerID, ownerID int64, _ Capability) bool {
	return callerID == ownerID
}
