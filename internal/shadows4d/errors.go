package shadows4d

import "errors"

var (
	ErrNoVertices   = errors.New("shape has no vertices")
	ErrEdgeIndex    = errors.New("edge index out of range")
	ErrEdgeShape    = errors.New("edge must connect exactly two distinct vertices")
	ErrScale        = errors.New("scale must be > 0")
	ErrNoLight      = errors.New("shape needs a light")
	ErrUnknownKind  = errors.New("unknown shape kind")
	ErrConfigFormat = errors.New("unsupported config format")
	ErrNoShapes     = errors.New("config has no shapes")
)
