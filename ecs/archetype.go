package ecs

import (
	"sort"
	"unsafe"
)

// archetypeKey is a sorted, duplicate-free list of ComponentIds describing
// the shape of every row in one Table, interned as an immutable byte
// string so it can serve directly as a map key.
type archetypeKey string

// componentIdSize is the byte width of one ComponentId when treated as a
// raw key fragment.
const componentIdSize = int(unsafe.Sizeof(ComponentId(0)))

// newArchetypeKey sorts and deduplicates ids, then copies the result into
// an interned string. Go's string([]byte) conversion always copies the
// source bytes, so the returned key owns its storage independently of
// ids — no separate arena or interning table is needed.
func newArchetypeKey(ids []ComponentId) archetypeKey {
	sorted := append([]ComponentId(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	deduped := sorted[:0]
	for i, id := range sorted {
		if i == 0 || id != deduped[len(deduped)-1] {
			deduped = append(deduped, id)
		}
	}

	buf := make([]byte, len(deduped)*componentIdSize)
	for i, id := range deduped {
		off := i * componentIdSize
		for b := 0; b < componentIdSize; b++ {
			buf[off+b] = byte(id >> (8 * b))
		}
	}
	return archetypeKey(buf)
}

// components decodes a key back into its sorted ComponentId slice. Used
// by newTable to build one column per component, and by hash.
func (k archetypeKey) components() []ComponentId {
	n := len(k) / componentIdSize
	out := make([]ComponentId, n)
	for i := 0; i < n; i++ {
		off := i * componentIdSize
		var id ComponentId
		for b := 0; b < componentIdSize; b++ {
			id |= ComponentId(k[off+b]) << (8 * b)
		}
		out[i] = id
	}
	return out
}

// hash mixes the key's ComponentIds with the same rotate-xor-multiply
// construction Identifier.Hash uses, so archetype identity and component
// identity share one hashing idiom across the engine.
func (k archetypeKey) hash() uint64 {
	var h uint64
	ids := k.components()
	for _, id := range ids {
		h = fxMix(h, uint64(id))
	}
	return h
}
