package airwar

import (
	"math/bits"
)

// Bitmask is a 256-bit set of component IDs.
// An entity's mask records which components (and therefore which tags) it
// carries; systems and queries match entities by comparing masks.
type Bitmask [4]uint64

// Set marks the component as present.
func (m *Bitmask) Set(id ComponentID) {
	m[id/64] |= 1 << (id % 64)
}

// Clear marks the component as absent.
func (m *Bitmask) Clear(id ComponentID) {
	m[id/64] &^= 1 << (id % 64)
}

// Has reports whether the component is present.
func (m *Bitmask) Has(id ComponentID) bool {
	return m[id/64]&(1<<(id%64)) != 0
}

// ContainsAll reports whether every bit of other is set in m.
func (m *Bitmask) ContainsAll(other Bitmask) bool {
	for i := range m {
		if m[i]&other[i] != other[i] {
			return false
		}
	}
	return true
}

// ContainsAny reports whether m and other share at least one bit.
func (m *Bitmask) ContainsAny(other Bitmask) bool {
	for i := range m {
		if m[i]&other[i] != 0 {
			return true
		}
	}
	return false
}

// IsZero reports whether no bits are set.
func (m *Bitmask) IsZero() bool {
	return *m == Bitmask{}
}

// Or returns the union of m and other.
func (m Bitmask) Or(other Bitmask) Bitmask {
	for i := range m {
		m[i] |= other[i]
	}
	return m
}

// Count returns the number of bits set.
func (m *Bitmask) Count() int {
	n := 0
	for _, w := range m {
		n += bits.OnesCount64(w)
	}
	return n
}

// Matches reports whether m carries all of require and none of exclude.
func (m *Bitmask) Matches(require, exclude Bitmask) bool {
	return m.ContainsAll(require) && !m.ContainsAny(exclude)
}
