package depot

import "testing"

func TestWorldCreateAddGetComponent(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition](w)

	e := w.CreateEntity()
	if HasComponent[testPosition](w, e) {
		t.Fatalf("freshly created entity should have no components")
	}

	AddComponent(w, e, testPosition{X: 1, Y: 2})
	if !HasComponent[testPosition](w, e) {
		t.Fatalf("expected HasComponent to report true after AddComponent")
	}

	pos, ok := GetComponent[testPosition](w, e)
	if !ok || pos.X != 1 || pos.Y != 2 {
		t.Fatalf("expected to fetch the added component, got %+v (ok=%v)", pos, ok)
	}

	pos.X = 99
	pos2, _ := GetComponent[testPosition](w, e)
	if pos2.X != 99 {
		t.Fatalf("expected GetComponent to return a live pointer into storage, got %+v", pos2)
	}
}

func TestWorldAddComponentIsNoOpWhenAlreadyPresent(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition](w)
	e := w.CreateEntity()

	AddComponent(w, e, testPosition{X: 1})
	AddComponent(w, e, testPosition{X: 2})

	pos, _ := GetComponent[testPosition](w, e)
	if pos.X != 1 {
		t.Fatalf("second AddComponent call should be a no-op, got %+v", pos)
	}
}

func TestWorldRemoveComponent(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition](w)
	RegisterComponent[testVelocity](w)
	e := w.CreateEntity()
	AddComponent(w, e, testPosition{})
	AddComponent(w, e, testVelocity{X: 1})

	RemoveComponent[testVelocity](w, e)
	if HasComponent[testVelocity](w, e) {
		t.Fatalf("expected velocity removed")
	}
	if !HasComponent[testPosition](w, e) {
		t.Fatalf("expected position to survive removing an unrelated component")
	}
}

func TestWorldRemoveComponentNoOpWhenAbsent(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition](w)
	RegisterComponent[testVelocity](w)
	e := w.CreateEntity()
	AddComponent(w, e, testPosition{})

	RemoveComponent[testVelocity](w, e) // never added; must not panic
	if !HasComponent[testPosition](w, e) {
		t.Fatalf("unrelated component removal must not disturb existing components")
	}
}

func TestWorldDeleteEntity(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition](w)
	e := w.CreateEntity()
	AddComponent(w, e, testPosition{})

	w.DeleteEntity(e)
	if w.IsAlive(e) {
		t.Fatalf("expected entity to be dead after DeleteEntity")
	}
	if HasComponent[testPosition](w, e) {
		t.Fatalf("dead entities must report false for HasComponent")
	}

	w.DeleteEntity(e) // must be a no-op, not a panic
}

func TestWorldHasComponentUnregisteredType(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	if HasComponent[testPosition](w, e) {
		t.Fatalf("an unregistered component type can never be present")
	}
}

func TestWorldFlagModifiedAutoEnablesTracking(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition](w)
	e := w.CreateEntity()
	AddComponent(w, e, testPosition{})

	// No query has requested tracking on this column yet.
	FlagModified[testPosition](w, e)

	rec, _ := w.directory.Record(e)
	arch := w.graph.Archetype(rec.Archetype)
	if !arch.Tracked(RegisterComponent[testPosition](w)) {
		t.Fatalf("FlagModified should auto-enable tracking rather than silently doing nothing")
	}
}

func TestWorldResources(t *testing.T) {
	w := NewWorld()
	type globals struct{ Score int }
	AddResource(w, globals{Score: 3})

	g, ok := GetResource[globals](w)
	if !ok || g.Score != 3 {
		t.Fatalf("expected to fetch the added resource, got %+v (ok=%v)", g, ok)
	}

	g.Score = 7
	g2, _ := GetResource[globals](w)
	if g2.Score != 7 {
		t.Fatalf("expected GetResource to return a live pointer, got %+v", g2)
	}

	RemoveResource[globals](w)
	if _, ok := GetResource[globals](w); ok {
		t.Fatalf("expected resource gone after RemoveResource")
	}
}
