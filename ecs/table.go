package ecs

import "github.com/l1jgo/ecsengine/internal/assert"

// Table stores every entity sharing one archetype, column-major: each
// component type in the archetype gets its own contiguous column, and row
// i of every column belongs to the same entity. Rows are removed by
// swapping the last row into the vacated slot, so row indices are stable
// only until the next removal.
type Table struct {
	key      archetypeKey
	columns  *SparseSet[*column, ComponentId]
	entities []uint32 // slot index of the entity occupying each row
}

func newTable(key archetypeKey, reg *ComponentRegistry) *Table {
	ids := key.components()
	columns := NewSparseSet[*column, ComponentId]()
	for _, id := range ids {
		columns.ReserveKey(uint32(id))
		columns.InsertUnique(uint32(id), newColumn(reg.Info(id)))
	}
	return &Table{key: key, columns: columns}
}

// Len returns the number of rows currently stored.
func (t *Table) Len() int { return len(t.entities) }

// GetColumn returns the column backing component id, if this table's
// archetype includes it.
func (t *Table) GetColumn(id ComponentId) (*column, bool) {
	return t.columns.Get(uint32(id))
}

// AddRow appends one uninitialized row for slotIndex and returns its row
// index. The caller must write every column's value before the row is
// reachable by any query (Engine.Spawn does so immediately after calling
// this).
func (t *Table) AddRow(slotIndex uint32) int {
	for _, col := range t.columns.Values() {
		col.pushZero()
	}
	t.entities = append(t.entities, slotIndex)
	return len(t.entities) - 1
}

// Remove swaps row out of every column and out of the entities slice. If
// a different row was moved into row's place, Remove returns that row's
// slot index and moved=true, so the caller (the engine, which alone knows
// how to translate a slot index back into an EntityLocation) can fix up
// its bookkeeping.
func (t *Table) Remove(row int) (movedSlot uint32, moved bool) {
	assert.That(row < len(t.entities), "table: remove row %d out of range (len %d)", row, len(t.entities))

	for _, col := range t.columns.Values() {
		col.swapRemove(row)
	}

	last := len(t.entities) - 1
	if row != last {
		t.entities[row] = t.entities[last]
		moved = true
		movedSlot = t.entities[row]
	}
	t.entities = t.entities[:last]
	return movedSlot, moved
}

// Destroy runs every remaining row's destructors. Called when an engine
// is discarded wholesale.
func (t *Table) Destroy() {
	for _, col := range t.columns.Values() {
		col.destroyAll()
	}
}
