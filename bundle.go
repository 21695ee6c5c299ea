package depot

import "github.com/TheBitDrifter/table"

// filterTerm is implemented by every component specifier (Read, Write,
// Optional, Tracked, With, Without) so a slice of them, of mixed concrete
// type, can each contribute to a query's compiled Filter.
type filterTerm interface {
	filterTerm(b *FilterBuilder)
}

// Read is a mandatory, by-reference accessor for component type T: the
// query's filter requires T, and Get fetches the current row's value.
type Read[T any] struct {
	id  ComponentId
	acc table.Accessor[T]
}

// NewRead declares a mandatory read accessor for T, registering T if this is
// the first time the world has seen it.
func NewRead[T any](w *World) Read[T] {
	id, acc := registerAccessor[T](w)
	return Read[T]{id: id, acc: acc}
}

func (r Read[T]) filterTerm(b *FilterBuilder) { b.Include(r.id) }

// Get fetches T for the iterator's current row. Go has no read/write
// reference distinction, so Read and Write both return a mutable pointer;
// the split exists for documentation symmetry with the specifier table.
func (r Read[T]) Get(it *BundleIter) *T { return fetch(it, r.acc) }

// Write is a mandatory, by-reference accessor for component type T.
type Write[T any] struct {
	id  ComponentId
	acc table.Accessor[T]
}

// NewWrite declares a mandatory write accessor for T.
func NewWrite[T any](w *World) Write[T] {
	id, acc := registerAccessor[T](w)
	return Write[T]{id: id, acc: acc}
}

func (wr Write[T]) filterTerm(b *FilterBuilder) { b.Include(wr.id) }

// Get fetches T for the current row.
func (wr Write[T]) Get(it *BundleIter) *T { return fetch(it, wr.acc) }

// OptionalRead is a by-reference accessor for T that does not constrain the
// filter: archetypes without T still match, and Get reports ok=false there.
type OptionalRead[T any] struct {
	id  ComponentId
	acc table.Accessor[T]
}

// NewOptionalRead declares an optional read accessor for T.
func NewOptionalRead[T any](w *World) OptionalRead[T] {
	id, acc := registerAccessor[T](w)
	return OptionalRead[T]{id: id, acc: acc}
}

func (OptionalRead[T]) filterTerm(*FilterBuilder) {}

// Get fetches T for the current row, if the row's archetype carries it.
func (o OptionalRead[T]) Get(it *BundleIter) (*T, bool) { return fetchOptional(it, o.id, o.acc) }

// OptionalWrite is the write-access counterpart of OptionalRead.
type OptionalWrite[T any] struct {
	id  ComponentId
	acc table.Accessor[T]
}

// NewOptionalWrite declares an optional write accessor for T.
func NewOptionalWrite[T any](w *World) OptionalWrite[T] {
	id, acc := registerAccessor[T](w)
	return OptionalWrite[T]{id: id, acc: acc}
}

func (OptionalWrite[T]) filterTerm(*FilterBuilder) {}

// Get fetches T for the current row, if the row's archetype carries it.
func (o OptionalWrite[T]) Get(it *BundleIter) (*T, bool) { return fetchOptional(it, o.id, o.acc) }

// Tracked wraps a fetched component pointer with whether it has been
// written since the query's last sync.
type Tracked[T any] struct {
	Value    *T
	Modified bool
}

// TrackedRead is a mandatory, by-reference, change-tracked accessor.
type TrackedRead[T any] struct {
	id  ComponentId
	acc table.Accessor[T]
}

// NewTrackedRead declares a mandatory tracked read accessor for T.
func NewTrackedRead[T any](w *World) TrackedRead[T] {
	id, acc := registerAccessor[T](w)
	return TrackedRead[T]{id: id, acc: acc}
}

func (t TrackedRead[T]) filterTerm(b *FilterBuilder) { b.Track(t.id) }

// Get fetches T along with whether it was modified since the last sync.
func (t TrackedRead[T]) Get(it *BundleIter) Tracked[T] { return fetchTracked(it, t.id, t.acc) }

// TrackedWrite is the write-access counterpart of TrackedRead.
type TrackedWrite[T any] struct {
	id  ComponentId
	acc table.Accessor[T]
}

// NewTrackedWrite declares a mandatory tracked write accessor for T.
func NewTrackedWrite[T any](w *World) TrackedWrite[T] {
	id, acc := registerAccessor[T](w)
	return TrackedWrite[T]{id: id, acc: acc}
}

func (t TrackedWrite[T]) filterTerm(b *FilterBuilder) { b.Track(t.id) }

// Get fetches T along with whether it was modified since the last sync.
func (t TrackedWrite[T]) Get(it *BundleIter) Tracked[T] { return fetchTracked(it, t.id, t.acc) }

// With requires T in the filter without fetching it; use when a system only
// needs to discriminate archetypes by a tag component's presence.
type With[T any] struct{ id ComponentId }

// NewWith declares a tag-presence requirement for T.
func NewWith[T any](w *World) With[T] { return With[T]{id: RegisterComponent[T](w)} }

func (wi With[T]) filterTerm(b *FilterBuilder) { b.Include(wi.id) }

// Without excludes any archetype carrying T.
type Without[T any] struct{ id ComponentId }

// NewWithout declares an exclusion requirement for T.
func NewWithout[T any](w *World) Without[T] { return Without[T]{id: RegisterComponent[T](w)} }

func (wo Without[T]) filterTerm(b *FilterBuilder) { b.Exclude(wo.id) }

// EntityParam fetches the current row's owning entity handle; it never
// constrains the filter.
type EntityParam struct{}

func (EntityParam) filterTerm(*FilterBuilder) {}

// Get returns the iterator's current row's entity handle.
func (EntityParam) Get(it *BundleIter) Entity { return it.CurrentEntity() }

// fetch is used by the mandatory (non-optional) specifiers, whose presence
// the compiled Filter already guarantees for every archetype a query
// matches — mirroring warehouse's AccessibleComponent.GetFromCursor, which
// likewise skips the Check warehouse's GetFromCursorSafe performs for the
// optional case below.
func fetch[T any](it *BundleIter, acc table.Accessor[T]) *T {
	return acc.Get(it.row, it.cur.Table())
}

func fetchOptional[T any](it *BundleIter, id ComponentId, acc table.Accessor[T]) (*T, bool) {
	if !it.cur.HasComponent(id) {
		return nil, false
	}
	return acc.Get(it.row, it.cur.Table()), true
}

func fetchTracked[T any](it *BundleIter, id ComponentId, acc table.Accessor[T]) Tracked[T] {
	if !it.cur.HasComponent(id) {
		return Tracked[T]{}
	}
	value := acc.Get(it.row, it.cur.Table())
	modified := it.cur.RowModified(id, it.row)
	return Tracked[T]{Value: value, Modified: modified}
}
