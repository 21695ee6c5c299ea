package depot

// Query is a compiled filter plus the archetype ids it currently matches.
// Systems own their Query and call sync once per tick to absorb archetypes
// created since the last sync.
type Query struct {
	world      *World
	filter     Filter
	archetypes []ArchetypeID
}

// Query builds a query from a set of component specifiers (Read, Write,
// Optional*, Tracked*, With, Without); each specifier contributes to the
// compiled filter, and is later used directly to fetch its component from a
// BundleIter inside a system function.
func (w *World) Query(terms ...filterTerm) *Query {
	fb := NewFilterBuilder()
	for _, t := range terms {
		t.filterTerm(fb)
	}
	filter := fb.Build()

	q := &Query{world: w, filter: filter}
	for _, a := range w.graph.Archetypes() {
		if !filter.Matches(a.set) {
			continue
		}
		q.archetypes = append(q.archetypes, a.id)
		enableTracking(a, filter.track, w.tick)
	}
	return q
}

func enableTracking(a *Archetype, track []ComponentId, tick uint32) {
	for _, id := range track {
		if a.HasComponent(id) {
			a.EnableTracking(id, tick)
		}
	}
}

// sync absorbs archetypes created since the last sync that now match this
// query's filter, then advances last_read for every tracked column of every
// archetype the query currently matches. Run once per tick, after every
// system's run phase and the schedule's command flush.
func (q *Query) sync(w *World) {
	for _, id := range w.graph.PendingNew() {
		a := w.graph.Archetype(id)
		if !q.filter.Matches(a.set) {
			continue
		}
		q.archetypes = append(q.archetypes, id)
		enableTracking(a, q.filter.track, w.tick)
	}
	for _, id := range q.archetypes {
		a := w.graph.Archetype(id)
		for _, tid := range q.filter.track {
			a.onQuerySync(tid, w.tick)
		}
	}
}

// Iter returns a fresh iterator over every row this query currently matches.
func (q *Query) Iter() *BundleIter {
	return newBundleIter(q.world.graph, q.archetypes)
}

// Archetypes returns the archetype ids this query currently matches.
func (q *Query) Archetypes() []ArchetypeID {
	return append([]ArchetypeID(nil), q.archetypes...)
}
