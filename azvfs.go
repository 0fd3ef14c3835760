// Package azvfs provides hierarchical virtual-filesystem semantics over a
// flat cloud blob namespace. The root package holds the contract shared
// between the provider and its callers: the FileObject surface, selectors
// for tree operations, the capability set a filesystem advertises and the
// configuration passed into a filesystem at construction.
//
// The azure package implements this contract for Azure Blob Storage; the
// storage package defines the client surface it consumes.
package azvfs

import "slices"

// Capability names one operation class a filesystem supports. Absent
// capabilities are absent deliberately: a flat object store cannot rename
// in place and cannot append to committed content.
type Capability string

const (
	CapabilityRead             Capability = "Read"
	CapabilityWrite            Capability = "Write"
	CapabilityRandomAccessRead Capability = "RandomAccessRead"
	CapabilityListChildren     Capability = "ListChildren"
	CapabilityCreateFolder     Capability = "CreateFolder"
	CapabilityDelete           Capability = "Delete"
	CapabilityGetLastModified  Capability = "GetLastModified"
	// CapabilitySetLastModified is advertised even though the store ignores
	// client-set modification times; the call is accepted and succeeds.
	CapabilitySetLastModified Capability = "SetLastModified"
	CapabilityCopy            Capability = "Copy"
	CapabilitySignedURL       Capability = "SignedURL"
)

// Capabilities is the advertised capability set of a filesystem.
type Capabilities struct {
	Capabilities []Capability `json:"capabilities"`
}

// Contains checks if a capability is supported.
func (c *Capabilities) Contains(cap Capability) bool {
	return slices.Contains(c.Capabilities, cap)
}
