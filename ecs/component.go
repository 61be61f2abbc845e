package ecs

import (
	"reflect"
	"unsafe"

	"github.com/l1jgo/ecsengine/internal/assert"
	"go.uber.org/zap"
)

// ComponentId is a dense, process-local index assigned by a
// ComponentRegistry in registration order. It is never stable across
// processes and is never exposed outside the engine that allocated it.
type ComponentId uint32

// Destructor releases resources owned by a single component value. dst
// points at a live, initialized instance of the component; after the
// destructor returns, that memory is considered uninitialized.
type Destructor func(dst unsafe.Pointer)

// ComponentInfo records the static metadata a ComponentRegistry keeps for
// every registered component type: its debug name, memory layout, and
// optional destructor.
type ComponentInfo struct {
	Name       string
	Size       uintptr
	Align      uintptr
	Destructor Destructor
}

// Component is implemented by types that declare themselves as ECS
// components by supplying a stable, globally unique identifier.
type Component interface {
	ComponentIdentifier() Identifier
}

// Named is optionally implemented by a Component to override the debug
// name the registry records (the Go type name is used otherwise).
type Named interface {
	ComponentName() string
}

// Destroyer is optionally implemented by a Component's pointer type to
// register a destructor, invoked when a row holding the component is
// removed or when its table is torn down.
type Destroyer interface {
	Destroy()
}

var destroyerType = reflect.TypeOf((*Destroyer)(nil)).Elem()

// ComponentRegistry assigns dense ComponentIds to component types and
// stores their metadata. It does not own component values, only the
// metadata describing them.
type ComponentRegistry struct {
	infos   []ComponentInfo
	byIdent map[Identifier]ComponentId
	log     *zap.Logger
}

// NewComponentRegistry creates an empty registry. logger may be nil, in
// which case a no-op logger is used.
func NewComponentRegistry(logger *zap.Logger) *ComponentRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComponentRegistry{
		byIdent: make(map[Identifier]ComponentId),
		log:     logger,
	}
}

// Register assigns (or looks up) the ComponentId for identifier, recording
// info as its metadata. Re-registering an identifier that was registered
// with a different debug name is a fatal, unrecoverable error: it means
// two distinct component types are claiming the same identifier.
func (r *ComponentRegistry) Register(identifier Identifier, info ComponentInfo) ComponentId {
	if existing, ok := r.byIdent[identifier]; ok {
		existingInfo := r.infos[existing]
		if existingInfo.Name != info.Name {
			r.log.Panic("component identifier collision",
				zap.Stringer("identifier", identifier),
				zap.String("existing_name", existingInfo.Name),
				zap.String("new_name", info.Name),
			)
		}
		return existing
	}

	id := r.registerInfo(info)
	r.byIdent[identifier] = id
	return id
}

// RegisterAnonymous registers metadata for an ephemeral, local-only
// component that is not discoverable by identifier.
func (r *ComponentRegistry) RegisterAnonymous(info ComponentInfo) ComponentId {
	return r.registerInfo(info)
}

func (r *ComponentRegistry) registerInfo(info ComponentInfo) ComponentId {
	id := ComponentId(len(r.infos))
	r.infos = append(r.infos, info)
	return id
}

// Lookup returns the ComponentId previously registered under identifier,
// if any.
func (r *ComponentRegistry) Lookup(identifier Identifier) (ComponentId, bool) {
	id, ok := r.byIdent[identifier]
	return id, ok
}

// Info returns the metadata for id. id must have been returned by Register
// or RegisterAnonymous on this registry; passing any other value is a
// programmer error.
func (r *ComponentRegistry) Info(id ComponentId) ComponentInfo {
	assert.That(int(id) < len(r.infos), "component registry: id %d out of range", id)
	return r.infos[id]
}

// Len returns the number of components registered so far.
func (r *ComponentRegistry) Len() int {
	return len(r.infos)
}

// componentInfoOf derives a ComponentInfo for T by reflecting on its
// static type: the Go-native realization of spec.md's "some mechanism of
// the target language furnishes a (identifier, size, alignment,
// destructor?) record".
func componentInfoOf[T Component]() (Identifier, ComponentInfo) {
	var zero T
	t := reflect.TypeOf(zero)

	name := t.String()
	if n, ok := any(zero).(Named); ok {
		name = n.ComponentName()
	}

	var destructor Destructor
	if reflect.PointerTo(t).Implements(destroyerType) {
		destructor = func(dst unsafe.Pointer) {
			any((*T)(dst)).(Destroyer).Destroy() //nolint:forcetypeassert
		}
	}

	info := ComponentInfo{
		Name:  name,
		Size:  t.Size(),
		Align: uintptr(t.Align()),
	}
	info.Destructor = destructor

	return zero.ComponentIdentifier(), info
}

// RegisterComponent registers T's identifier and metadata with reg,
// returning its ComponentId. Calling this twice for the same T returns
// the same id.
func RegisterComponent[T Component](reg *ComponentRegistry) ComponentId {
	identifier, info := componentInfoOf[T]()
	return reg.Register(identifier, info)
}
