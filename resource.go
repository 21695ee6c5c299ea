package depot

import (
	"fmt"
	"reflect"

	"github.com/TheBitDrifter/bark"
)

// ResourceId identifies a world-singleton value added via AddResource.
type ResourceId uint32

// ResourceManager is a reflect.Type-keyed slab of world-singleton values,
// one per type, with a free list so a removed resource's slot can be reused.
// Each slot stores a *T rather than a T so that a fetched pointer keeps
// pointing at live storage no matter how many times it's fetched.
type ResourceManager struct {
	items   []any
	types   map[reflect.Type]ResourceId
	freeIDs []ResourceId
}

func newResourceManager() *ResourceManager {
	return &ResourceManager{types: make(map[reflect.Type]ResourceId)}
}

// AddResource installs value as the world's singleton instance of T,
// panicking if one has already been added.
func AddResource[T any](w *World, value T) ResourceId {
	return w.resources.add(reflect.TypeFor[T](), &value)
}

func (m *ResourceManager) add(t reflect.Type, boxed any) ResourceId {
	if _, exists := m.types[t]; exists {
		panic(bark.AddTrace(fmt.Errorf("depot: resource %s already added", t)))
	}
	var id ResourceId
	if n := len(m.freeIDs); n > 0 {
		id = m.freeIDs[n-1]
		m.freeIDs = m.freeIDs[:n-1]
		m.items[id] = boxed
	} else {
		id = ResourceId(len(m.items))
		m.items = append(m.items, boxed)
	}
	m.types[t] = id
	return id
}

// GetResource returns the world's singleton instance of T, if one has been
// added.
func GetResource[T any](w *World) (*T, bool) { return getResource[T](w.resources) }

func getResource[T any](m *ResourceManager) (*T, bool) {
	t := reflect.TypeFor[T]()
	id, ok := m.types[t]
	if !ok {
		return nil, false
	}
	v := m.items[id]
	if v == nil {
		return nil, false
	}
	return v.(*T), true
}

// RemoveResource removes the world's singleton instance of T, if present,
// freeing its slot for reuse by a later resource type.
func RemoveResource[T any](w *World) {
	t := reflect.TypeFor[T]()
	m := w.resources
	id, ok := m.types[t]
	if !ok {
		return
	}
	delete(m.types, t)
	m.items[id] = nil
	m.freeIDs = append(m.freeIDs, id)
}

// ResRead is a read-access specifier for resource type T, fetched directly
// from a *ResourceManager — the handle a SystemFunc receives in place of a
// full *World — rather than through a BundleIter.
type ResRead[T any] struct{}

// NewResRead declares a resource read accessor for T.
func NewResRead[T any](w *World) ResRead[T] { return ResRead[T]{} }

// Get fetches res's singleton instance of T.
func (ResRead[T]) Get(res *ResourceManager) (*T, bool) { return getResource[T](res) }

// ResWrite is the write-access counterpart of ResRead.
type ResWrite[T any] struct{}

// NewResWrite declares a resource write accessor for T.
func NewResWrite[T any](w *World) ResWrite[T] { return ResWrite[T]{} }

// Get fetches res's singleton instance of T.
func (ResWrite[T]) Get(res *ResourceManager) (*T, bool) { return getResource[T](res) }
