package depot

import "testing"

func TestQueryMatchesExistingArchetypesAtBuildTime(t *testing.T) {
	w := NewWorld()
	pos := NewRead[testPosition](w)
	e := w.CreateEntity()
	AddComponent(w, e, testPosition{X: 1})

	q := w.Query(pos)
	if len(q.Archetypes()) != 1 {
		t.Fatalf("expected the query to match the archetype that already exists, got %d", len(q.Archetypes()))
	}

	count := 0
	it := q.Iter()
	for it.Next() {
		count++
		if pos.Get(it).X != 1 {
			t.Fatalf("expected to fetch the component value")
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one matching row, got %d", count)
	}
}

func TestQuerySyncAbsorbsNewArchetypes(t *testing.T) {
	w := NewWorld()
	pos := NewRead[testPosition](w)

	// Built before any entity carries Position: matches nothing yet.
	q := w.Query(pos)
	if len(q.Archetypes()) != 0 {
		t.Fatalf("expected no matches before any matching archetype exists")
	}

	e := w.CreateEntity()
	AddComponent(w, e, testPosition{})
	// The new {Position} archetype is queued, but not yet synced in.
	if len(q.Archetypes()) != 0 {
		t.Fatalf("query must not see new archetypes before a sync")
	}

	q.sync(w)
	if len(q.Archetypes()) != 1 {
		t.Fatalf("expected sync to absorb the new archetype, got %d matches", len(q.Archetypes()))
	}
}

func TestQueryWithoutExcludesArchetype(t *testing.T) {
	w := NewWorld()
	pos := NewRead[testPosition](w)
	dead := NewWithout[testVelocity](w)

	e1 := w.CreateEntity()
	AddComponent(w, e1, testPosition{})
	e2 := w.CreateEntity()
	AddComponent(w, e2, testPosition{})
	AddComponent(w, e2, testVelocity{})

	q := w.Query(pos, dead)
	count := 0
	it := q.Iter()
	for it.Next() {
		count++
		if it.CurrentEntity() != e1 {
			t.Fatalf("expected only the entity without Velocity to match")
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly 1 match, got %d", count)
	}
}

func TestQueryOptionalDoesNotConstrainFilter(t *testing.T) {
	w := NewWorld()
	pos := NewRead[testPosition](w)
	opt := NewOptionalRead[testVelocity](w)

	withVel := w.CreateEntity()
	AddComponent(w, withVel, testPosition{})
	AddComponent(w, withVel, testVelocity{X: 9})

	withoutVel := w.CreateEntity()
	AddComponent(w, withoutVel, testPosition{})

	q := w.Query(pos, opt)
	if len(q.Archetypes()) != 2 {
		t.Fatalf("an optional accessor must not exclude archetypes lacking it, got %d archetypes", len(q.Archetypes()))
	}

	found := map[Entity]bool{}
	it := q.Iter()
	for it.Next() {
		v, ok := opt.Get(it)
		e := it.CurrentEntity()
		found[e] = true
		if e == withVel && (!ok || v.X != 9) {
			t.Fatalf("expected to fetch the present optional component")
		}
		if e == withoutVel && ok {
			t.Fatalf("expected ok=false for the entity lacking the optional component")
		}
	}
	if !found[withVel] || !found[withoutVel] {
		t.Fatalf("expected both entities visited")
	}
}
