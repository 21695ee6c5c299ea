package depot

import "github.com/TheBitDrifter/table"

// Config holds global configuration for the ECS runtime.
var Config config = config{
	componentCapacityHint: 32,
}

type config struct {
	// componentCapacityHint sizes the initial component registry's type map;
	// it is a hint, not a hard limit. Archetype edge maps do not use it.
	componentCapacityHint int

	// debugAssertions, when enabled, turns a System mutating the world
	// directly mid-iteration (bypassing its CommandQueue) into a panic
	// instead of an otherwise-silent structural race. Off by default,
	// matching the original's release-mode behavior.
	debugAssertions bool

	// tableEvents is passed to every archetype's table.NewTableBuilder, per
	// warehouse's own config.go. Zero-value table.TableEvents by default.
	tableEvents table.TableEvents
}

// SetComponentCapacityHint sizes the initial component registry's type map
// for worlds created afterwards.
func (c *config) SetComponentCapacityHint(n int) {
	c.componentCapacityHint = n
}

// SetDebugAssertions toggles strict-mode panics for mid-iteration structural
// mutation that should otherwise only be possible through a CommandQueue.
func (c *config) SetDebugAssertions(on bool) {
	c.debugAssertions = on
}

// SetTableEvents installs the table.TableEvents every archetype's backing
// table.Table is built with.
func (c *config) SetTableEvents(events table.TableEvents) {
	c.tableEvents = events
}
