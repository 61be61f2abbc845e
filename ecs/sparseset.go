package ecs

import "github.com/l1jgo/ecsengine/internal/assert"

// Unsigned is the set of integer types usable as a SparseSet's dense index.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// SparseSet maps arbitrary uint32 keys to dense-vector positions without
// hashing. The sparse array is grown lazily to accommodate the largest key
// seen so far; unused sparse slots hold the sentinel value (the all-ones
// value of I). values() iteration order is insertion order and is stable
// across inserts, since elements are only ever appended to the dense
// vector.
type SparseSet[V any, I Unsigned] struct {
	dense  []V
	sparse []I
}

// NewSparseSet creates an empty SparseSet.
func NewSparseSet[V any, I Unsigned]() *SparseSet[V, I] {
	return &SparseSet[V, I]{}
}

func sentinel[I Unsigned]() I {
	return I(^I(0))
}

// ReserveKey grows the sparse array so that key k is addressable, filling
// any newly created slots with the sentinel value.
func (s *SparseSet[V, I]) ReserveKey(k uint32) {
	if int(k) < len(s.sparse) {
		return
	}
	grown := make([]I, k+1)
	copy(grown, s.sparse)
	sent := sentinel[I]()
	for i := len(s.sparse); i < len(grown); i++ {
		grown[i] = sent
	}
	s.sparse = grown
}

// InsertUnique inserts v under key k. The slot for k must currently be
// empty; inserting into an occupied slot is a programmer error and panics.
func (s *SparseSet[V, I]) InsertUnique(k uint32, v V) {
	s.ReserveKey(k)
	assert.That(s.sparse[k] == sentinel[I](), "sparse set: key %d already occupied", k)

	idx := len(s.dense)
	s.dense = append(s.dense, v)
	s.sparse[k] = I(idx)
}

// Get returns the value stored under key k, if any.
func (s *SparseSet[V, I]) Get(k uint32) (V, bool) {
	if int(k) >= len(s.sparse) {
		var zero V
		return zero, false
	}
	idx := s.sparse[k]
	if idx == sentinel[I]() {
		var zero V
		return zero, false
	}
	return s.dense[idx], true
}

// Contains reports whether key k has been inserted.
func (s *SparseSet[V, I]) Contains(k uint32) bool {
	_, ok := s.Get(k)
	return ok
}

// Values returns the dense vector in insertion order. The caller must not
// retain the slice across further inserts.
func (s *SparseSet[V, I]) Values() []V {
	return s.dense
}

// Len returns the number of values stored in the set.
func (s *SparseSet[V, I]) Len() int {
	return len(s.dense)
}
