package depot

import (
	"github.com/TheBitDrifter/bark"
	"github.com/TheBitDrifter/table"
)

// World owns every entity, archetype, resource, event queue, and schedule in
// one ECS instance. It is not safe for concurrent use from multiple
// goroutines; all mutation happens on the goroutine that calls Update.
type World struct {
	registry  *ComponentRegistry
	directory *EntityDirectory
	graph     *ArchetypeGraph
	resources *ResourceManager
	events    *EventBus
	schedules []*Schedule
	tick      uint32
	locked    bool
}

// NewWorld returns an empty world, ready for component registration.
func NewWorld() *World {
	reg := newComponentRegistry()
	return &World{
		registry:  reg,
		directory: newEntityDirectory(),
		graph:     newArchetypeGraph(reg),
		resources: newResourceManager(),
		events:    newEventBus(),
	}
}

// Tick returns the world's current tick counter.
func (w *World) Tick() uint32 { return w.tick }

// Events returns the world's event bus.
func (w *World) Events() *EventBus { return w.events }

// lock marks the world as mid-iteration, for the duration of a System's call
// into user code. unlock clears it. Mirrors warehouse's
// storage.AddLock()/PopLock() bracketing Cursor.Initialize()/Reset().
func (w *World) lock()   { w.locked = true }
func (w *World) unlock() { w.locked = false }

// checkUnlocked panics with an InvariantViolationError when a structural
// mutation is attempted while a System is mid-iteration and debug
// assertions are enabled. A SystemFunc itself has no *World parameter to
// call these through (see SystemFunc), so tripping this guard means a
// system closure captured an outer *World variable instead of routing the
// mutation through its CommandQueue — exactly what spec.md forbids.
func (w *World) checkUnlocked() {
	if w.locked && Config.debugAssertions {
		panic(bark.AddTrace(InvariantViolationError{
			Detail: "structural mutation attempted while a system is mid-iteration; route it through a CommandQueue instead",
		}))
	}
}

// RegisterComponent assigns T a ComponentId, if it doesn't have one
// already. Registration is idempotent.
func RegisterComponent[T any](w *World) ComponentId {
	return registerComponent[T](w.registry)
}

// CreateEntity allocates a new entity with no components, placed in the
// root archetype.
func (w *World) CreateEntity() Entity {
	w.checkUnlocked()
	return w.createEntity()
}

func (w *World) createEntity() Entity {
	e := w.directory.Create()
	w.graph.Root().pushEntity(e, w.directory, w.tick)
	return e
}

// DeleteEntity removes e and all of its components. No-op if e isn't alive.
func (w *World) DeleteEntity(e Entity) {
	w.checkUnlocked()
	w.deleteEntity(e)
}

func (w *World) deleteEntity(e Entity) {
	if !w.directory.IsAlive(e) {
		return
	}
	rec, _ := w.directory.Record(e)
	w.graph.Archetype(rec.Archetype).deleteEntity(e, w.directory)
	w.directory.Delete(e)
}

// IsAlive reports whether e names a currently-live entity.
func (w *World) IsAlive(e Entity) bool { return w.directory.IsAlive(e) }

// HasComponent reports whether e carries a component of type T. Reports
// false (rather than panicking) if T has never been registered, since an
// entity can never carry an unregistered type.
func HasComponent[T any](w *World, e Entity) bool {
	if !w.directory.IsAlive(e) {
		return false
	}
	id, err := idOf[T](w.registry)
	if err != nil {
		return false
	}
	rec, _ := w.directory.Record(e)
	return w.graph.Archetype(rec.Archetype).HasComponent(id)
}

// AddComponent attaches value to e. No-op if e is dead or already has a
// component of type T. Panics (via UnknownTypeError) if T was never
// registered, since there would be no column layout to create.
func AddComponent[T any](w *World, e Entity, value T) {
	w.checkUnlocked()
	addComponent(w, e, value)
}

func addComponent[T any](w *World, e Entity, value T) {
	if !w.directory.IsAlive(e) {
		return
	}
	id, err := idOf[T](w.registry)
	if err != nil {
		panic(bark.AddTrace(err))
	}
	if HasComponent[T](w, e) {
		return
	}
	w.graph.AddComponent(e, w.directory, id, w.tick)
	// The structural move above leaves the new column at its zero value;
	// graph.AddComponent only knows id as an erased ComponentId, so this
	// generic entry point — the only place T is statically known — places
	// the real value afterwards through a typed accessor.
	if ptr, ok := GetComponent[T](w, e); ok {
		*ptr = value
	}
}

// RemoveComponent detaches T from e. No-op if e is dead, T was never
// registered, or e doesn't currently carry T.
func RemoveComponent[T any](w *World, e Entity) {
	w.checkUnlocked()
	removeComponent[T](w, e)
}

func removeComponent[T any](w *World, e Entity) {
	if !w.directory.IsAlive(e) {
		return
	}
	id, err := idOf[T](w.registry)
	if err != nil {
		return
	}
	w.graph.RemoveComponent(e, w.directory, id, w.tick)
}

// GetComponent returns a pointer to e's T component, and whether it exists.
func GetComponent[T any](w *World, e Entity) (*T, bool) {
	if !w.directory.IsAlive(e) {
		return nil, false
	}
	id, err := idOf[T](w.registry)
	if err != nil {
		return nil, false
	}
	rec, _ := w.directory.Record(e)
	arch := w.graph.Archetype(rec.Archetype)
	if !arch.HasComponent(id) {
		return nil, false
	}
	identity := w.registry.Metadata(id).Identity
	acc := table.FactoryNewAccessor[T](identity)
	return acc.Get(rec.Row, arch.Table()), true
}

// GetComponentMut is GetComponent; the separate name exists only to mirror
// the original API's read/write-named accessor pair, since Go has no
// separate mutable-reference type to justify two implementations.
func GetComponentMut[T any](w *World, e Entity) (*T, bool) { return GetComponent[T](w, e) }

// FlagModified marks e's T component as written at the current tick. If the
// component's column does not yet have change tracking enabled, tracking is
// enabled first (backfilling every existing row to the current tick) rather
// than rejecting the call.
func FlagModified[T any](w *World, e Entity) {
	w.checkUnlocked()
	flagModified[T](w, e)
}

func flagModified[T any](w *World, e Entity) {
	if !w.directory.IsAlive(e) {
		return
	}
	id, err := idOf[T](w.registry)
	if err != nil {
		return
	}
	rec, _ := w.directory.Record(e)
	arch := w.graph.Archetype(rec.Archetype)
	if !arch.HasComponent(id) {
		return
	}
	arch.EnableTracking(id, w.tick)
	arch.FlagModifiedRow(id, rec.Row, w.tick)
}

// AddSchedule registers a schedule to run on every subsequent Update.
func (w *World) AddSchedule(s *Schedule) {
	w.schedules = append(w.schedules, s)
}

// Update runs one full tick: every schedule's systems, then every
// schedule's command flush, then every schedule's query sync, then advances
// the tick counter.
func (w *World) Update() {
	for _, s := range w.schedules {
		s.runAll(w)
	}
	for _, s := range w.schedules {
		s.flush(w)
	}
	for _, s := range w.schedules {
		s.sync(w)
	}
	w.graph.ClearPendingNew()
	w.tick++
}
