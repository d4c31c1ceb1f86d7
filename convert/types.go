package convert

import "go.dw1.io/checked/kind"

// Type is a constraint that matches all target types supported by [To].
type Type interface {
	kind.Integer | string
}
