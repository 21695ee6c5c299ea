package depot

import "testing"

func TestCommandQueueDeferredAddComponent(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition](w)
	e := w.CreateEntity()

	var q CommandQueue
	AddComponentCommand(&q, e, testPosition{X: 3})

	if HasComponent[testPosition](w, e) {
		t.Fatalf("enqueuing a command must not mutate the world before flush")
	}

	q.Flush(w)
	pos, ok := GetComponent[testPosition](w, e)
	if !ok || pos.X != 3 {
		t.Fatalf("expected the queued AddComponent to apply on flush, got %+v (ok=%v)", pos, ok)
	}
	if len(q.commands) != 0 {
		t.Fatalf("flush should empty the queue")
	}
}

func TestCommandQueueDeferredRemoveAndDelete(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition](w)
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	AddComponent(w, e1, testPosition{})

	var q CommandQueue
	RemoveComponentCommand[testPosition](&q, e1)
	q.DeleteEntity(e2)
	q.Flush(w)

	if HasComponent[testPosition](w, e1) {
		t.Fatalf("expected deferred RemoveComponent to have applied")
	}
	if w.IsAlive(e2) {
		t.Fatalf("expected deferred DeleteEntity to have applied")
	}
}

func TestCommandQueueDeferredCreateEntity(t *testing.T) {
	w := NewWorld()
	var q CommandQueue
	q.CreateEntity()
	q.Flush(w)

	if w.graph.Root().Len() != 1 {
		t.Fatalf("expected the deferred CreateEntity to have applied, root holds %d entities", w.graph.Root().Len())
	}
	if w.Tick() != 0 {
		t.Fatalf("flushing commands must not itself advance the tick")
	}
}

func TestCommandQueueDeferredFlagModified(t *testing.T) {
	w := NewWorld()
	RegisterComponent[testPosition](w)
	e := w.CreateEntity()
	AddComponent(w, e, testPosition{})

	var q CommandQueue
	FlagModifiedCommand[testPosition](&q, e)
	q.Flush(w)

	rec, _ := w.directory.Record(e)
	posID := RegisterComponent[testPosition](w)
	arch := w.graph.Archetype(rec.Archetype)
	if !arch.Tracked(posID) || !arch.RowModified(posID, rec.Row) {
		t.Fatalf("expected the deferred FlagModified to mark the row modified")
	}
}
