/*
Package depot provides an archetype-based Entity-Component-System (ECS) runtime core.

Entities with the same set of component types live packed together in an
archetype, so systems iterate dense columns rather than chasing pointers.
Structural changes (adding or removing a component, creating or deleting an
entity) move a row between archetypes along a cached transition graph.

Core Concepts:

  - Entity: a generational handle naming a row in some archetype.
  - Component: a registered Go type stored in a per-archetype column.
  - Archetype: the set of entities sharing an exact component-type set.
  - Query: a compiled filter plus the matching archetype list it caches.
  - System: a query bound to a function, run once per schedule per tick.

Basic Usage:

	world := depot.NewWorld()
	type Position struct{ X, Y float64 }
	type Velocity struct{ X, Y float64 }
	depot.RegisterComponent[Position](world)
	depot.RegisterComponent[Velocity](world)

	e := world.CreateEntity()
	depot.AddComponent(world, e, Position{})
	depot.AddComponent(world, e, Velocity{X: 1})

	pos := depot.NewWrite[Position](world)
	vel := depot.NewRead[Velocity](world)
	query := world.Query(pos, vel)

	move := depot.NewSystem(query, func(res *depot.ResourceManager, it *depot.BundleIter, cmd *depot.CommandQueue) {
		for it.Next() {
			p, v := pos.Get(it), vel.Get(it)
			p.X += v.X
			p.Y += v.Y
		}
	})

	schedule := depot.NewSchedule().Add(move)
	world.AddSchedule(schedule)
	world.Update()

Depot is a standalone library; it has no rendering, windowing, or networking
concerns of its own.
*/
package depot
