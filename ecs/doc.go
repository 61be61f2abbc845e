// Package ecs is the data-oriented core of an entity-component-system:
// stable entity identity with generational reuse, lock-free entity
// reservation, a type-erased component registry keyed by 128-bit
// identifiers, and an archetype-indexed column-major table store.
//
// Query planning, system scheduling, parallel iteration, and persistence
// are layered on top by an embedding host; this package only spawns,
// despawns, and looks up.
package ecs
