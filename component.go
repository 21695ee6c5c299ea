package depot

import (
	"reflect"

	"github.com/TheBitDrifter/table"
)

// ComponentId is a dense, per-world integer identifying a registered
// component type. It doubles as the bit index into a component set mask,
// which caps the number of distinct component types a world can register.
type ComponentId uint16

// ComponentMetadata describes a registered component type: its reflect.Type
// (for diagnostics) and the table.ElementType identity every archetype's
// table.Table is built and queried against.
type ComponentMetadata struct {
	Type     reflect.Type
	Identity table.ElementType
}
