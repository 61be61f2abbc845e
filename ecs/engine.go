package ecs

import (
	"unsafe"

	"github.com/l1jgo/ecsengine/internal/assert"
	"go.uber.org/zap"
)

// EntityLocation records where one entity's row lives: which table, and
// which row within it. It is the metadata type the Engine's
// EntityAllocator is instantiated with.
type EntityLocation struct {
	TableIndex int
	Row        int
}

// Config tunes engine-internal parameters that have no bearing on
// correctness, only on how eagerly memory is pre-allocated.
type Config struct {
	// InitialTableCapacity is the row count a newly created table's
	// columns are pre-sized for, to cut down on early reallocations.
	InitialTableCapacity int
}

// DefaultConfig returns the configuration new engines use when none is
// supplied explicitly.
func DefaultConfig() Config {
	return Config{InitialTableCapacity: 8}
}

// Engine owns a ComponentRegistry, an EntityAllocator, and the set of
// Tables holding every live entity's components. It is the single
// embedding surface spec.md §6 describes.
type Engine struct {
	cfg        Config
	log        *zap.Logger
	registry   *ComponentRegistry
	entities   *EntityAllocator[EntityLocation]
	archetypes map[archetypeKey]int
	tables     []*Table
}

// NewEngine creates an empty engine. logger may be nil, in which case a
// no-op logger is used.
func NewEngine(cfg Config, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:        cfg,
		log:        logger,
		registry:   NewComponentRegistry(logger),
		entities:   NewEntityAllocator[EntityLocation](),
		archetypes: make(map[archetypeKey]int),
	}
}

// Registry exposes the engine's component registry, for callers that
// register components ahead of spawning (e.g. to discover a
// ComponentId for GetComponent).
func (e *Engine) Registry() *ComponentRegistry { return e.registry }

// tableForKey returns the table for the given archetype key, creating it
// (and interning the key) if this is the first entity with that shape.
func (e *Engine) tableForKey(key archetypeKey) *Table {
	if idx, ok := e.archetypes[key]; ok {
		return e.tables[idx]
	}
	t := newTable(key, e.registry)
	for _, col := range t.columns.Values() {
		col.ensureCapacity(e.cfg.InitialTableCapacity)
	}
	idx := len(e.tables)
	e.tables = append(e.tables, t)
	e.archetypes[key] = idx
	return t
}

// EntityHandle is a convenience wrapper pairing an Engine with one of its
// entities, so callers can despawn/query without repeating the engine
// argument.
type EntityHandle struct {
	engine *Engine
	id     Entity
}

// ID returns the underlying Entity.
func (h EntityHandle) ID() Entity { return h.id }

// Despawn removes the handle's entity from its engine. It reports
// whether the entity was alive immediately before the call.
func (h EntityHandle) Despawn() bool { return h.engine.Despawn(h.id) }

// IsAlive reports whether the handle's entity is still alive.
func (h EntityHandle) IsAlive() bool { return h.engine.IsAlive(h.id) }

// Spawn allocates a new entity, computes its archetype from bundle's
// component set, and writes bundle's values into a freshly appended row.
// The entity allocator must not have pending reservations.
func (e *Engine) Spawn(bundle Bundle) EntityHandle {
	writes := bundle.components(e.registry)

	ids := make([]ComponentId, len(writes))
	for i, w := range writes {
		ids[i] = w.id
	}
	key := newArchetypeKey(ids)
	table := e.tableForKey(key)

	entity := e.entities.AllocateOne()
	row := table.AddRow(entity.Index())

	for _, w := range writes {
		col, ok := table.GetColumn(w.id)
		assert.That(ok, "engine: spawn: archetype missing column for component %d", w.id)
		w.write(col.ptrAt(row))
	}

	tableIdx := e.archetypes[key]
	*e.entities.LocationMut(entity.Index()) = EntityLocation{TableIndex: tableIdx, Row: row}

	return EntityHandle{engine: e, id: entity}
}

// Despawn removes entity's row from its table (destroying its components)
// and recycles its slot. It reports whether entity was alive.
func (e *Engine) Despawn(entity Entity) bool {
	if !e.IsAlive(entity) {
		return false
	}

	loc := e.entities.Location(entity.Index())
	table := e.tables[loc.TableIndex]

	movedSlot, moved := table.Remove(loc.Row)
	if moved {
		*e.entities.LocationMut(movedSlot) = EntityLocation{TableIndex: loc.TableIndex, Row: loc.Row}
	}

	e.entities.Deallocate(entity.Index())
	return true
}

// IsAlive reports whether entity names a currently live row.
func (e *Engine) IsAlive(entity Entity) bool {
	return e.entities.Contains(entity)
}

// GetComponent returns a pointer to entity's component of the type that
// produced id, if entity is alive and its archetype includes id. The
// pointer is valid until the next structural change (spawn/despawn of
// any entity sharing entity's table) — callers must not retain it across
// such a change.
func GetComponent[T any](e *Engine, entity Entity, id ComponentId) (*T, bool) {
	if !e.IsAlive(entity) {
		return nil, false
	}
	loc := e.entities.Location(entity.Index())
	table := e.tables[loc.TableIndex]
	col, ok := table.GetColumn(id)
	if !ok {
		return nil, false
	}
	return (*T)(col.ptrAt(loc.Row)), true
}

// SpawnBatch reserves n entities, flushes them, and invokes fill once per
// entity so the caller can write each of the archetype named by ids into
// the row the engine has already allocated. This is the engine's answer
// to spec.md §9's open "spawn_batch" question: reserve, then flush, then
// write components row-by-row.
func (e *Engine) SpawnBatch(ids []ComponentId, n int, fill func(i int, write func(ComponentId) unsafe.Pointer)) []Entity {
	if n <= 0 {
		return nil
	}

	key := newArchetypeKey(ids)
	table := e.tableForKey(key)
	tableIdx := e.archetypes[key]

	e.entities.ReserveMany(n)
	entities := e.entities.Flush()
	assert.That(len(entities) == n, "engine: spawn_batch: flush returned %d entities, wanted %d", len(entities), n)

	for i, entity := range entities {
		row := table.AddRow(entity.Index())
		fill(i, func(id ComponentId) unsafe.Pointer {
			col, ok := table.GetColumn(id)
			assert.That(ok, "engine: spawn_batch: archetype missing column for component %d", id)
			return col.ptrAt(row)
		})
		*e.entities.LocationMut(entity.Index()) = EntityLocation{TableIndex: tableIdx, Row: row}
	}

	return entities
}

// Destroy tears down every table, running every remaining component's
// destructor. The engine must not be used afterward.
func (e *Engine) Destroy() {
	for _, t := range e.tables {
		t.Destroy()
	}
}
