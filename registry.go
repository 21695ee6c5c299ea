package depot

import (
	"reflect"

	"github.com/TheBitDrifter/table"
)

// ComponentRegistry assigns a dense ComponentId to every component type a
// world has seen, keyed by reflect.Type the way the rest of this package
// indexes resources and events. It also owns the table.Schema and
// table.EntryIndex every archetype's table.Table shares, so a component's
// row index is consistent across every archetype that carries it.
type ComponentRegistry struct {
	ids        map[reflect.Type]ComponentId
	meta       []ComponentMetadata
	schema     table.Schema
	entryIndex table.EntryIndex
}

func newComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		ids:        make(map[reflect.Type]ComponentId, Config.componentCapacityHint),
		schema:     table.Factory.NewSchema(),
		entryIndex: table.Factory.NewEntryIndex(),
	}
}

// registerComponent returns the type's ComponentId, assigning the next free
// id on first use. Registration is idempotent: calling it again for an
// already-known type just returns the existing id. The id is the type's row
// index in the shared schema, mirroring warehouse's own
// `schema.Register(component); bit := schema.RowIndexFor(component)` idiom.
func registerComponent[T any](r *ComponentRegistry) ComponentId {
	t := reflect.TypeFor[T]()
	if id, ok := r.ids[t]; ok {
		return id
	}
	identity := table.FactoryNewElementType[T]()
	r.schema.Register(identity)
	id := ComponentId(r.schema.RowIndexFor(identity))
	if int(id) >= len(r.meta) {
		grown := make([]ComponentMetadata, id+1)
		copy(grown, r.meta)
		r.meta = grown
	}
	r.meta[id] = ComponentMetadata{Type: t, Identity: identity}
	r.ids[t] = id
	return id
}

// idOf looks up a previously-registered type's ComponentId, failing with
// UnknownTypeError if RegisterComponent was never called for T.
func idOf[T any](r *ComponentRegistry) (ComponentId, error) {
	t := reflect.TypeFor[T]()
	id, ok := r.ids[t]
	if !ok {
		return 0, UnknownTypeError{Type: t}
	}
	return id, nil
}

// Metadata returns the registered metadata for a ComponentId.
func (r *ComponentRegistry) Metadata(id ComponentId) ComponentMetadata {
	return r.meta[id]
}

// Len reports how many distinct component types have been registered.
func (r *ComponentRegistry) Len() int {
	return len(r.meta)
}

// registerAccessor registers T if needed and returns both its ComponentId
// and a typed table.Accessor[T] for fetching it out of any archetype's
// table.Table, mirroring warehouse's FactoryNewComponent[T]() pairing of a
// table.ElementType identity with its table.Accessor[T].
func registerAccessor[T any](w *World) (ComponentId, table.Accessor[T]) {
	id := registerComponent[T](w.registry)
	identity := w.registry.Metadata(id).Identity
	return id, table.FactoryNewAccessor[T](identity)
}
