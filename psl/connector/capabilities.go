// Package connector describes what each database connector supports and how
// it scopes constraint names.
package connector

import (
	"math/bits"
	"strings"
)

// Capability is a single feature a connector may support.
type Capability uint32

const (
	CapabilityFullTextIndex Capability = 1 << iota
	CapabilitySortOrderInFullTextIndex
	CapabilityIndexColumnLengthPrefixing
	CapabilityUsingHashIndex
	CapabilityMultipleFullTextAttributesPerModel
	CapabilityNamedPrimaryKeys
	CapabilityNamedForeignKeys
	CapabilityNamedDefaultValues
	CapabilityClusteringSetting
	CapabilityCompoundIds
)

var capabilityNames = map[Capability]string{
	CapabilityFullTextIndex:                      "FullTextIndex",
	CapabilitySortOrderInFullTextIndex:           "SortOrderInFullTextIndex",
	CapabilityIndexColumnLengthPrefixing:         "IndexColumnLengthPrefixing",
	CapabilityUsingHashIndex:                     "UsingHashIndex",
	CapabilityMultipleFullTextAttributesPerModel: "MultipleFullTextAttributesPerModel",
	CapabilityNamedPrimaryKeys:                   "NamedPrimaryKeys",
	CapabilityNamedForeignKeys:                   "NamedForeignKeys",
	CapabilityNamedDefaultValues:                 "NamedDefaultValues",
	CapabilityClusteringSetting:                  "ClusteringSetting",
	CapabilityCompoundIds:                        "CompoundIds",
}

// IndexCapabilities are the capabilities consulted by index validation, in
// display order.
var IndexCapabilities = []Capability{
	CapabilityFullTextIndex,
	CapabilitySortOrderInFullTextIndex,
	CapabilityIndexColumnLengthPrefixing,
	CapabilityUsingHashIndex,
	CapabilityMultipleFullTextAttributesPerModel,
}

// String returns the capability name.
func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return "Unknown"
}

// ParseCapability looks a capability up by name, ignoring case.
func ParseCapability(name string) (Capability, bool) {
	for c, n := range capabilityNames {
		if strings.EqualFold(n, name) {
			return c, true
		}
	}
	return 0, false
}

// Capabilities is a set of capabilities.
type Capabilities uint32

// NewCapabilities builds a set from the given capabilities.
func NewCapabilities(caps ...Capability) Capabilities {
	var set Capabilities
	for _, c := range caps {
		set |= Capabilities(c)
	}
	return set
}

// Has reports whether c is in the set.
func (s Capabilities) Has(c Capability) bool {
	return uint32(s)&uint32(c) != 0
}

// With returns the set with c added.
func (s Capabilities) With(c Capability) Capabilities {
	return s | Capabilities(c)
}

// Without returns the set with c removed.
func (s Capabilities) Without(c Capability) Capabilities {
	return s &^ Capabilities(c)
}

// Iter returns the capabilities in the set in declaration order.
func (s Capabilities) Iter() []Capability {
	out := make([]Capability, 0, bits.OnesCount32(uint32(s)))
	for rest := uint32(s); rest != 0; rest &= rest - 1 {
		out = append(out, Capability(rest&-rest))
	}
	return out
}

// String returns the comma separated capability names.
func (s Capabilities) String() string {
	names := make([]string, 0, bits.OnesCount32(uint32(s)))
	for _, c := range s.Iter() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
