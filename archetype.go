package depot

import (
	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/mask"
	"github.com/TheBitDrifter/table"
)

// ArchetypeID identifies an archetype within a single world. Ids are never
// reused; deleting the last entity in an archetype does not free its id.
type ArchetypeID uint32

// Archetype stores every entity that currently carries exactly one
// component set, backed by a single table.Table spanning every component
// column at once (rather than one column per component type), so that
// moving a row between archetypes of differing shape is one
// table.Table.TransferEntries call regardless of which component types
// differ. The dense entity list gives each table row its owning handle.
type Archetype struct {
	id       ArchetypeID
	set      mask.Mask
	ids      []ComponentId
	entities []Entity
	tbl      table.Table
	trackers map[ComponentId]*ChangeTracker
	edges    *edgeMap
	queued   bool
}

// newArchetype builds an archetype for set, given the explicit list of
// component ids set contains (the graph always has this list on hand when
// it creates an archetype, from either the root's empty set or a single-id
// extension/reduction of an existing one). The backing table.Table is built
// once, up front, with every column it will ever need — table.Table's
// element types are fixed at Build() time, exactly like warehouse's own
// archetype.go does it.
func newArchetype(id ArchetypeID, set mask.Mask, ids []ComponentId, reg *ComponentRegistry) *Archetype {
	elementTypes := make([]table.ElementType, len(ids))
	for i, cid := range ids {
		elementTypes[i] = reg.Metadata(cid).Identity
	}
	tbl, err := table.NewTableBuilder().
		WithSchema(reg.schema).
		WithEntryIndex(reg.entryIndex).
		WithElementTypes(elementTypes...).
		WithEvents(Config.tableEvents).
		Build()
	if err != nil {
		panic(bark.AddTrace(err))
	}
	return &Archetype{
		id:       id,
		set:      set,
		ids:      append([]ComponentId(nil), ids...),
		tbl:      tbl,
		trackers: make(map[ComponentId]*ChangeTracker),
		edges:    newEdgeMap(),
	}
}

// ComponentIds returns the archetype's component ids (order not significant).
func (a *Archetype) ComponentIds() []ComponentId {
	return append([]ComponentId(nil), a.ids...)
}

// ID returns the archetype's id.
func (a *Archetype) ID() ArchetypeID { return a.id }

// Set returns the archetype's component set.
func (a *Archetype) Set() mask.Mask { return a.set }

// Len returns the number of entities currently stored in this archetype.
func (a *Archetype) Len() int { return len(a.entities) }

// Table returns the archetype's backing table.Table, for typed
// table.Accessor[T] reads and writes.
func (a *Archetype) Table() table.Table { return a.tbl }

// HasComponent reports whether this archetype carries component id.
func (a *Archetype) HasComponent(id ComponentId) bool {
	for _, cid := range a.ids {
		if cid == id {
			return true
		}
	}
	return false
}

// Entity returns the entity handle occupying row.
func (a *Archetype) Entity(row int) Entity { return a.entities[row] }

// Tracked reports whether change tracking has been enabled for id on this
// archetype.
func (a *Archetype) Tracked(id ComponentId) bool {
	_, ok := a.trackers[id]
	return ok
}

// EnableTracking turns on change tracking for id, backfilling every
// existing row's modified tick to tick; those rows read as modified until
// a sync at a later tick. No-op if already enabled.
func (a *Archetype) EnableTracking(id ComponentId, tick uint32) {
	if _, ok := a.trackers[id]; ok {
		return
	}
	a.trackers[id] = newChangeTracker(len(a.entities), tick)
}

// FlagModifiedRow marks row as written at tick for component id. Tracking
// must already be enabled.
func (a *Archetype) FlagModifiedRow(id ComponentId, row int, tick uint32) {
	a.trackers[id].FlagModified(row, tick)
}

// RowModified reports whether row has been written since the last sync for
// component id. False if tracking isn't enabled for id.
func (a *Archetype) RowModified(id ComponentId, row int) bool {
	tr, ok := a.trackers[id]
	return ok && tr.Modified(row)
}

// onQuerySync advances last_read to tick for component id's tracker, if
// tracking is enabled for it. Called once per sync, per tracked specifier a
// query declares, for every archetype that query matches — a query must
// never advance last_read for a component it doesn't itself track, since a
// sibling query tracking a different component on the same archetype has no
// bearing on this one's change-detection window.
func (a *Archetype) onQuerySync(id ComponentId, tick uint32) {
	if tr, ok := a.trackers[id]; ok {
		tr.onQuerySync(tick)
	}
}

// pushEntity appends e as a brand-new row with every column's zero value.
func (a *Archetype) pushEntity(e Entity, dir *EntityDirectory, tick uint32) {
	row := len(a.entities)
	if _, err := a.tbl.NewEntries(1); err != nil {
		panic(bark.AddTrace(err))
	}
	a.entities = append(a.entities, e)
	for _, tr := range a.trackers {
		tr.push(tick)
	}
	dir.setRecord(e, EntityRecord{Archetype: a.id, Row: row})
}

// deleteEntity removes row's entity from the table and fixes up the handle
// that was swapped into its place, if any.
func (a *Archetype) deleteEntity(e Entity, dir *EntityDirectory) {
	rec, _ := dir.Record(e)
	row := rec.Row
	last := len(a.entities) - 1
	if _, err := a.tbl.DeleteEntries(row); err != nil {
		panic(bark.AddTrace(err))
	}
	for _, tr := range a.trackers {
		tr.onSwapRemove(row)
	}
	if row != last {
		moved := a.entities[last]
		a.entities[row] = moved
		dir.setRecord(moved, EntityRecord{Archetype: a.id, Row: row})
	}
	a.entities = a.entities[:last]
}

// transferEntity moves e's row from a into dst via the underlying
// table.Table's TransferEntries — the same single call warehouse's own
// entity.go AddComponent/RemoveComponent use to move a row between two
// already-built tables of differing ElementType sets. Columns a and dst
// don't share are simply absent from the moved row (extension: dst's extra
// columns start at their zero value; reduction: a's extra columns are
// dropped). The row swapped into e's old slot in a is fixed up in dir.
func (a *Archetype) transferEntity(e Entity, dst *Archetype, dir *EntityDirectory, tick uint32) {
	rec, _ := dir.Record(e)
	row := rec.Row
	last := len(a.entities) - 1

	if err := a.tbl.TransferEntries(dst.tbl, row); err != nil {
		panic(bark.AddTrace(err))
	}
	for _, tr := range a.trackers {
		tr.onSwapRemove(row)
	}
	for _, tr := range dst.trackers {
		tr.push(tick)
	}

	if row != last {
		moved := a.entities[last]
		a.entities[row] = moved
		dir.setRecord(moved, EntityRecord{Archetype: a.id, Row: row})
	}
	a.entities = a.entities[:last]

	dstRow := len(dst.entities)
	dst.entities = append(dst.entities, e)
	dir.setRecord(e, EntityRecord{Archetype: dst.id, Row: dstRow})
}
