package ecs

import (
	"unsafe"

	"github.com/l1jgo/ecsengine/internal/assert"
)

// column is a type-erased, contiguous store for one component's values
// across every row of a table. It is backed by a plain []byte; component
// values are read and written through unsafe.Pointer arithmetic using the
// stride recorded in info.
//
// Go's allocator does not expose Rust-style explicit-alignment allocation,
// but the runtime already aligns slice backing arrays to at least the
// size of the largest scalar it contains up to a machine word, which
// covers every alignment this engine's components realistically need
// (structs of ints, floats, pointers, and slices). See DESIGN.md for the
// justification of this simplification.
type column struct {
	info ComponentInfo
	buf  []byte
	len  int
}

func newColumn(info ComponentInfo) *column {
	return &column{info: info}
}

func (c *column) stride() uintptr { return c.info.Size }

func (c *column) cap() int {
	if c.stride() == 0 {
		return c.len
	}
	return len(c.buf) / int(c.stride())
}

// ptrAt returns a pointer to row's component storage. row must be less
// than c.len.
func (c *column) ptrAt(row int) unsafe.Pointer {
	assert.That(row < c.len, "column %s: row %d out of range (len %d)", c.info.Name, row, c.len)
	if c.stride() == 0 {
		return unsafe.Pointer(&c.buf)
	}
	return unsafe.Add(unsafe.Pointer(&c.buf[0]), uintptr(row)*c.stride())
}

// ensureCapacity grows the backing buffer, if needed, so that at least n
// more rows can be appended without another allocation.
func (c *column) ensureCapacity(n int) {
	want := c.len + n
	if want <= c.cap() {
		return
	}
	newCap := c.cap()
	if newCap == 0 {
		newCap = 4
	}
	for newCap < want {
		newCap *= 2
	}

	stride := int(c.stride())
	grown := make([]byte, newCap*stride)
	copy(grown, c.buf[:c.len*stride])
	c.buf = grown
}

// pushZero appends one zero-valued row and returns a pointer the caller
// must initialize before the row is observed by any query.
func (c *column) pushZero() unsafe.Pointer {
	c.ensureCapacity(1)
	c.len++
	stride := int(c.stride())
	clear(c.buf[(c.len-1)*stride : c.len*stride])
	return c.ptrAt(c.len - 1)
}

// destroyRow invokes the component's destructor, if any, on row without
// removing it from the column. Used by swapRemove before the row is
// overwritten.
func (c *column) destroyRow(row int) {
	if c.info.Destructor != nil {
		c.info.Destructor(c.ptrAt(row))
	}
}

// swapRemove destroys row's current value, then moves the last row into
// its place (unless row is already last) and shrinks len by one. It
// reports whether a move happened, mirroring Table.Remove's contract so
// callers can decide whether to fix up a moved entity's location.
func (c *column) swapRemove(row int) (moved bool) {
	c.destroyRow(row)
	last := c.len - 1
	if row != last {
		stride := int(c.stride())
		copy(c.buf[row*stride:(row+1)*stride], c.buf[last*stride:(last+1)*stride])
		moved = true
	}
	c.len--
	return moved
}

// destroyAll runs every row's destructor. Used when a table is torn down.
func (c *column) destroyAll() {
	if c.info.Destructor == nil {
		return
	}
	for row := 0; row < c.len; row++ {
		c.info.Destructor(c.ptrAt(row))
	}
}
