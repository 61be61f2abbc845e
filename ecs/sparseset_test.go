package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparseSetInsertGet(t *testing.T) {
	s := NewSparseSet[string, uint32]()

	_, ok := s.Get(5)
	assert.False(t, ok)

	s.InsertUnique(5, "five")
	s.InsertUnique(1, "one")

	v, ok := s.Get(5)
	assert.True(t, ok)
	assert.Equal(t, "five", v)

	v, ok = s.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "one", v)

	assert.True(t, s.Contains(5))
	assert.False(t, s.Contains(2))
	assert.Equal(t, 2, s.Len())
}

func TestSparseSetValuesInsertionOrder(t *testing.T) {
	s := NewSparseSet[int, uint32]()
	s.InsertUnique(10, 100)
	s.InsertUnique(0, 200)
	s.InsertUnique(3, 300)

	assert.Equal(t, []int{100, 200, 300}, s.Values())
}

func TestSparseSetInsertUniquePanicsOnDuplicate(t *testing.T) {
	s := NewSparseSet[int, uint32]()
	s.InsertUnique(2, 1)

	assert.Panics(t, func() {
		s.InsertUnique(2, 2)
	})
}

func TestSparseSetReserveKeyFillsSentinel(t *testing.T) {
	s := NewSparseSet[int, uint8]()
	s.ReserveKey(3)

	for k := uint32(0); k <= 3; k++ {
		_, ok := s.Get(k)
		assert.False(t, ok)
	}
}
