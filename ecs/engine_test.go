package ecs

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ePos struct{ X, Y float64 }

func (ePos) ComponentIdentifier() Identifier {
	return mustID("55555555-5555-5555-5555-555555555555")
}

type eVel struct{ DX, DY float64 }

func (eVel) ComponentIdentifier() Identifier {
	return mustID("66666666-6666-6666-6666-666666666666")
}

func newTestEngine() *Engine {
	return NewEngine(DefaultConfig(), nil)
}

func TestSpawnThenGetComponent(t *testing.T) {
	e := newTestEngine()
	handle := e.Spawn(Bundle1[ePos]{A: ePos{X: 3, Y: 4}})

	posID := RegisterComponent[ePos](e.Registry())
	pos, ok := GetComponent[ePos](e, handle.ID(), posID)
	require.True(t, ok)
	assert.Equal(t, ePos{X: 3, Y: 4}, *pos)
}

func TestSpawnDespawnRecyclesWithNewGeneration(t *testing.T) {
	e := newTestEngine()
	h1 := e.Spawn(Bundle1[ePos]{A: ePos{X: 1, Y: 1}})

	assert.True(t, h1.Despawn())
	assert.False(t, h1.IsAlive())

	h2 := e.Spawn(Bundle1[ePos]{A: ePos{X: 2, Y: 2}})
	assert.Equal(t, h1.ID().Index(), h2.ID().Index())
	assert.Equal(t, h1.ID().Generation()+1, h2.ID().Generation())
}

func TestDespawnMiddleFixesUpMovedEntityLocation(t *testing.T) {
	e := newTestEngine()
	h1 := e.Spawn(Bundle2[ePos, eVel]{A: ePos{X: 1, Y: 1}, B: eVel{DX: 0, DY: 0}})
	h2 := e.Spawn(Bundle2[ePos, eVel]{A: ePos{X: 2, Y: 2}, B: eVel{DX: 0, DY: 0}})
	h3 := e.Spawn(Bundle2[ePos, eVel]{A: ePos{X: 3, Y: 3}, B: eVel{DX: 0, DY: 0}})

	h1.Despawn()

	posID := RegisterComponent[ePos](e.Registry())

	assert.False(t, h1.IsAlive())
	assert.True(t, h2.IsAlive())
	assert.True(t, h3.IsAlive())

	pos2, ok := GetComponent[ePos](e, h2.ID(), posID)
	require.True(t, ok)
	assert.Equal(t, ePos{X: 2, Y: 2}, *pos2)

	pos3, ok := GetComponent[ePos](e, h3.ID(), posID)
	require.True(t, ok)
	assert.Equal(t, ePos{X: 3, Y: 3}, *pos3)
}

func TestDespawnUnknownEntityReturnsFalse(t *testing.T) {
	e := newTestEngine()
	assert.False(t, e.Despawn(NewEntity(99, 0)))
}

func TestSpawnBatchWritesEveryRow(t *testing.T) {
	e := newTestEngine()
	posID := RegisterComponent[ePos](e.Registry())

	entities := e.SpawnBatch([]ComponentId{posID}, 5, func(i int, write func(ComponentId) unsafe.Pointer) {
		*(*ePos)(write(posID)) = ePos{X: float64(i), Y: float64(i) * 2}
	})
	require.Len(t, entities, 5)

	for i, ent := range entities {
		pos, ok := GetComponent[ePos](e, ent, posID)
		require.True(t, ok)
		assert.Equal(t, ePos{X: float64(i), Y: float64(i) * 2}, *pos)
	}
}

func TestGetComponentMissingColumnReturnsFalse(t *testing.T) {
	e := newTestEngine()
	h := e.Spawn(Bundle1[ePos]{A: ePos{X: 0, Y: 0}})
	velID := RegisterComponent[eVel](e.Registry())

	_, ok := GetComponent[eVel](e, h.ID(), velID)
	assert.False(t, ok)
}
