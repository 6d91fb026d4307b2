package binding

import "strings"

// AllLayers matches every layer.
const AllLayers uint32 = ^uint32(0)

// Filter decides which colliders a batch bind may touch.
type Filter struct {
	// ExcludeNameContains lists case-insensitive substrings that protect
	// primary collision volumes from being re-bound.
	ExcludeNameContains []string
	// OnlyTriggers restricts binding to non-solid volumes.
	OnlyTriggers bool
	// LayerMask is a bitmask over collider layers 0..31.
	LayerMask uint32
}

// Eligible reports whether a collider passes the filter.
func (f Filter) Eligible(name string, layer int, isTrigger bool) bool {
	lower := strings.ToLower(name)
	for _, key := range f.ExcludeNameContains {
		if key == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(key)) {
			return false
		}
	}
	if f.OnlyTriggers && !isTrigger {
		return false
	}
	if layer < 0 || layer > 31 {
		return false
	}
	return (uint32(1)<<uint(layer))&f.LayerMask != 0
}
