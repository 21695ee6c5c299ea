package depot

import (
	"github.com/TheBitDrifter/mask"
	"github.com/kamstrup/intmap"
)

// edgeMap caches an archetype's single-component-difference transitions: for
// a given component id, which archetype you land in by adding (or removing)
// just that component. Kept as an intmap for its comparison-free integer
// probing, cheaper than the plain map used for the graph's own id index.
type edgeMap struct {
	m *intmap.Map[ComponentId, ArchetypeID]
}

func newEdgeMap() *edgeMap {
	return &edgeMap{m: intmap.New[ComponentId, ArchetypeID](4)}
}

func (e *edgeMap) get(id ComponentId) (ArchetypeID, bool) { return e.m.Get(id) }
func (e *edgeMap) put(id ComponentId, arche ArchetypeID)  { e.m.Put(id, arche) }

// ArchetypeGraph owns every archetype in a world and the cached
// single-component-difference edges between them, so that repeatedly adding
// or removing the same component type never re-derives the destination
// archetype from scratch.
type ArchetypeGraph struct {
	reg        *ComponentRegistry
	archetypes []*Archetype
	byMask     map[mask.Mask]ArchetypeID
	newQueue   []ArchetypeID
	root       ArchetypeID
}

func newArchetypeGraph(reg *ComponentRegistry) *ArchetypeGraph {
	g := &ArchetypeGraph{
		reg:    reg,
		byMask: make(map[mask.Mask]ArchetypeID),
	}
	root := newArchetype(0, mask.Mask{}, nil, reg)
	g.archetypes = append(g.archetypes, root)
	g.byMask[root.set] = root.id
	return g
}

// Root returns the empty-component-set archetype every new entity starts in.
func (g *ArchetypeGraph) Root() *Archetype { return g.archetypes[g.root] }

// Archetype returns the archetype for id.
func (g *ArchetypeGraph) Archetype(id ArchetypeID) *Archetype { return g.archetypes[id] }

// Archetypes returns every archetype currently in the graph.
func (g *ArchetypeGraph) Archetypes() []*Archetype { return g.archetypes }

// PendingNew returns the archetypes created since the last ClearPendingNew,
// for queries to test against without having to rescan the whole graph.
func (g *ArchetypeGraph) PendingNew() []ArchetypeID { return g.newQueue }

// ClearPendingNew drains the new-archetype queue; called once per world tick
// after every system has had a chance to sync against it.
func (g *ArchetypeGraph) ClearPendingNew() {
	for _, id := range g.newQueue {
		g.archetypes[id].queued = false
	}
	g.newQueue = g.newQueue[:0]
}

func (g *ArchetypeGraph) queueNew(a *Archetype) {
	if a.queued {
		return
	}
	a.queued = true
	g.newQueue = append(g.newQueue, a.id)
}

// findOrCreateExtension returns the archetype reached from src by adding id,
// creating it (and queuing it as new) the first time this exact transition
// is requested.
func (g *ArchetypeGraph) findOrCreateExtension(src *Archetype, id ComponentId) *Archetype {
	if dstID, ok := src.edges.get(id); ok {
		return g.archetypes[dstID]
	}
	var set mask.Mask
	set.Mark(uint32(id))
	for _, existing := range src.ComponentIds() {
		set.Mark(uint32(existing))
	}
	dst := g.findOrCreateBySet(set)
	src.edges.put(id, dst.id)
	dst.edges.put(id, src.id)
	return dst
}

// findOrCreateReduction returns the archetype reached from src by removing
// id, symmetric to findOrCreateExtension.
func (g *ArchetypeGraph) findOrCreateReduction(src *Archetype, id ComponentId) *Archetype {
	if dstID, ok := src.edges.get(id); ok {
		return g.archetypes[dstID]
	}
	var set mask.Mask
	for _, existing := range src.ComponentIds() {
		if existing != id {
			set.Mark(uint32(existing))
		}
	}
	dst := g.findOrCreateBySet(set)
	src.edges.put(id, dst.id)
	dst.edges.put(id, src.id)
	return dst
}

func (g *ArchetypeGraph) findOrCreateBySet(set mask.Mask) *Archetype {
	if id, ok := g.byMask[set]; ok {
		return g.archetypes[id]
	}
	id := ArchetypeID(len(g.archetypes))
	ids := setComponentIds(set, g.reg)
	a := newArchetype(id, set, ids, g.reg)
	g.archetypes = append(g.archetypes, a)
	g.byMask[set] = id
	g.queueNew(a)
	return a
}

func setComponentIds(set mask.Mask, reg *ComponentRegistry) []ComponentId {
	ids := make([]ComponentId, 0)
	for cid := ComponentId(0); int(cid) < reg.Len(); cid++ {
		var bit mask.Mask
		bit.Mark(uint32(cid))
		if set.ContainsAll(bit) {
			ids = append(ids, cid)
		}
	}
	return ids
}

// AddComponent moves e from its current archetype to the extension carrying
// id too. No-op if e already has id. The moved row's new column starts at
// its zero value; callers that have a static T on hand (world.go's
// AddComponent[T]) set the actual value afterwards via a typed
// table.Accessor[T], since this non-generic entry point only knows id as an
// erased ComponentId and has no way to place a typed value itself.
func (g *ArchetypeGraph) AddComponent(e Entity, dir *EntityDirectory, id ComponentId, tick uint32) {
	rec, _ := dir.Record(e)
	src := g.archetypes[rec.Archetype]
	if src.HasComponent(id) {
		return
	}
	dst := g.findOrCreateExtension(src, id)
	src.transferEntity(e, dst, dir, tick)
}

// RemoveComponent moves e from its current archetype to the reduction
// lacking id. No-op if e doesn't have id.
func (g *ArchetypeGraph) RemoveComponent(e Entity, dir *EntityDirectory, id ComponentId, tick uint32) {
	rec, _ := dir.Record(e)
	src := g.archetypes[rec.Archetype]
	if !src.HasComponent(id) {
		return
	}
	dst := g.findOrCreateReduction(src, id)
	src.transferEntity(e, dst, dir, tick)
}
