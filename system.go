package depot

// SystemFunc is the per-tick work a System performs: iterate it, fetching
// components via the same specifiers used to build the system's query,
// reading/writing resources through res, and enqueueing any structural
// change into commands. It deliberately has no *World parameter — mirroring
// the original's SystemFn<C,R>, which takes no world reference at all —
// since handing a system body the whole World would let it call
// AddComponent/RemoveComponent/DeleteEntity directly mid-iteration, which
// spec.md forbids. Structural mutation during iteration must go through
// commands.
type SystemFunc func(res *ResourceManager, it *BundleIter, commands *CommandQueue)

// System binds a Query to a function, run once per schedule per tick.
type System struct {
	query   *Query
	fn      SystemFunc
	lastRun uint32
}

// NewSystem builds a System from a query and the function to run over it.
func NewSystem(query *Query, fn SystemFunc) *System {
	return &System{query: query, fn: fn}
}

func (s *System) run(w *World, commands *CommandQueue) {
	w.lock()
	defer w.unlock()
	s.fn(w.resources, s.query.Iter(), commands)
	s.lastRun = w.tick
}

func (s *System) sync(w *World) {
	s.query.sync(w)
}

// LastRun returns the tick at which this system last ran.
func (s *System) LastRun() uint32 { return s.lastRun }
