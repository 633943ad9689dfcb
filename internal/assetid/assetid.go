// Package assetid derives stable resource identifiers from resource names.
//
// The identifiers match the ones the host's streaming subsystem computes for
// its own resources, so a resource shipped by a content package under the same
// name as a host resource resolves to the same ID.
package assetid

import (
	"fmt"
	"unicode/utf16"
)

// ID is a fixed-width resource identifier. The zero value is invalid.
type ID struct {
	A, B, C, D uint32
}

// IsValid reports whether any field of the ID is set.
func (id ID) IsValid() bool {
	return id.A != 0 || id.B != 0 || id.C != 0 || id.D != 0
}

// String renders the ID as 32 lowercase hex digits.
func (id ID) String() string {
	return fmt.Sprintf("%08x%08x%08x%08x", id.A, id.B, id.C, id.D)
}

// Generate returns the ID for a resource name. It replicates the stable hash
// of the name into all four fields and has no side effects.
func Generate(name string) ID {
	u := uint32(StableHash(name))
	return ID{A: u, B: u, C: u, D: u}
}

// StableHash is the host's process-independent string hash. It walks the
// UTF-16 code units of s in pairs, feeding even positions into one djb2-xor
// accumulator and odd positions into another, and stops at the first NUL.
func StableHash(s string) int32 {
	units := utf16.Encode([]rune(s))

	var h1, h2 int32 = 5381, 5381
	for i := 0; i < len(units) && units[i] != 0; i += 2 {
		h1 = ((h1 << 5) + h1) ^ int32(units[i])
		if i == len(units)-1 || units[i+1] == 0 {
			break
		}
		h2 = ((h2 << 5) + h2) ^ int32(units[i+1])
	}
	return h1 + h2*1566083941
}
