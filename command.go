package depot

// command is a deferred structural mutation, applied to the world during a
// schedule's flush. The original implementation packed these into a raw
// byte buffer with function-pointer dispatch; this package instead boxes
// each command as an interface value, since Go has no manual-layout
// primitive to exploit without unsafe.
type command interface {
	apply(w *World)
}

// CommandQueue buffers structural mutations issued from inside a system,
// deferring them until the owning schedule's flush so a system never
// invalidates the archetype it's mid-iteration over.
type CommandQueue struct {
	commands []command
}

// CreateEntity enqueues the creation of a new, componentless entity.
func (q *CommandQueue) CreateEntity() {
	q.commands = append(q.commands, createEntityCommand{})
}

// DeleteEntity enqueues the deletion of e.
func (q *CommandQueue) DeleteEntity(e Entity) {
	q.commands = append(q.commands, deleteEntityCommand{entity: e})
}

// AddComponentCommand enqueues adding value's component type to e.
func AddComponentCommand[T any](q *CommandQueue, e Entity, value T) {
	q.commands = append(q.commands, addComponentCommand[T]{entity: e, value: value})
}

// RemoveComponentCommand enqueues removing T from e.
func RemoveComponentCommand[T any](q *CommandQueue, e Entity) {
	q.commands = append(q.commands, removeComponentCommand[T]{entity: e})
}

// FlagModifiedCommand enqueues flagging e's T component as modified at
// flush time.
func FlagModifiedCommand[T any](q *CommandQueue, e Entity) {
	q.commands = append(q.commands, flagModifiedCommand[T]{entity: e})
}

// Flush applies every queued command to w, in order, then empties the queue.
func (q *CommandQueue) Flush(w *World) {
	for _, c := range q.commands {
		c.apply(w)
	}
	q.commands = q.commands[:0]
}

// Every command's apply calls the unexported, unguarded mutation function
// rather than its public World/AddComponent/etc. counterpart: a flush is the
// one sanctioned path for structural mutation, so it must never trip the
// mid-iteration guard those public entry points carry (see world.go's
// checkUnlocked).

type createEntityCommand struct{}

func (createEntityCommand) apply(w *World) { w.createEntity() }

type deleteEntityCommand struct{ entity Entity }

func (c deleteEntityCommand) apply(w *World) { w.deleteEntity(c.entity) }

type addComponentCommand[T any] struct {
	entity Entity
	value  T
}

func (c addComponentCommand[T]) apply(w *World) { addComponent(w, c.entity, c.value) }

type removeComponentCommand[T any] struct{ entity Entity }

func (c removeComponentCommand[T]) apply(w *World) { removeComponent[T](w, c.entity) }

type flagModifiedCommand[T any] struct{ entity Entity }

func (c flagModifiedCommand[T]) apply(w *World) { flagModified[T](w, c.entity) }
