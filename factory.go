package depot

// factory implements the factory pattern for depot's top-level types.
type factory struct{}

// Factory is the global factory instance for constructing worlds, schedules,
// and systems.
var Factory factory

// NewWorld creates a new, empty World.
func (f factory) NewWorld() *World {
	return NewWorld()
}

// NewSchedule creates a new, empty Schedule.
func (f factory) NewSchedule() *Schedule {
	return NewSchedule()
}

// NewSystem creates a new System from a query and its run function.
func (f factory) NewSystem(query *Query, fn SystemFunc) *System {
	return NewSystem(query, fn)
}
