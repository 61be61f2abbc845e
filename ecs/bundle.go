package ecs

import "unsafe"

// componentWrite pairs a component id with a closure that writes that
// component's value into a destination slot the table has already
// allocated.
type componentWrite struct {
	id    ComponentId
	write func(dst unsafe.Pointer)
}

// Bundle is a heterogeneous, fixed-arity group of component values to
// spawn together as a single entity. BundleN types below cover arities 1
// through 4; no larger arity is provided, and the engine has no operation
// for adding components to an entity after it is spawned.
type Bundle interface {
	components(reg *ComponentRegistry) []componentWrite
}

func registerAndWrite[T Component](reg *ComponentRegistry, value T) componentWrite {
	id := RegisterComponent[T](reg)
	return componentWrite{
		id: id,
		write: func(dst unsafe.Pointer) {
			*(*T)(dst) = value
		},
	}
}

// Bundle1 spawns an entity with a single component.
type Bundle1[A Component] struct {
	A A
}

func (b Bundle1[A]) components(reg *ComponentRegistry) []componentWrite {
	return []componentWrite{registerAndWrite(reg, b.A)}
}

// Bundle2 spawns an entity with two components.
type Bundle2[A, B Component] struct {
	A A
	B B
}

func (b Bundle2[A, B]) components(reg *ComponentRegistry) []componentWrite {
	return []componentWrite{
		registerAndWrite(reg, b.A),
		registerAndWrite(reg, b.B),
	}
}

// Bundle3 spawns an entity with three components.
type Bundle3[A, B, C Component] struct {
	A A
	B B
	C C
}

func (b Bundle3[A, B, C]) components(reg *ComponentRegistry) []componentWrite {
	return []componentWrite{
		registerAndWrite(reg, b.A),
		registerAndWrite(reg, b.B),
		registerAndWrite(reg, b.C),
	}
}

// Bundle4 spawns an entity with four components.
type Bundle4[A, B, C, D Component] struct {
	A A
	B B
	C C
	D D
}

func (b Bundle4[A, B, C, D]) components(reg *ComponentRegistry) []componentWrite {
	return []componentWrite{
		registerAndWrite(reg, b.A),
		registerAndWrite(reg, b.B),
		registerAndWrite(reg, b.C),
		registerAndWrite(reg, b.D),
	}
}
