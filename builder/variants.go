// SPDX-License-Identifier: MIT

package builder

import "fmt"

// Kind names a topology for ByName.
type Kind string

// Supported topology kinds.
const (
	KindPath     Kind = "path"
	KindParallel Kind = "parallel"
	KindLayered  Kind = "layered"
	KindRandom   Kind = "random"
)

// Kinds lists every Kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindPath, KindParallel, KindLayered, KindRandom}
}

// Params carries the size knobs of every topology; each Kind reads only its own.
//
//	path:     Vertices
//	parallel: Routes, Hops
//	layered:  Layers, Width
//	random:   Vertices, P
type Params struct {
	Vertices int
	Routes   int
	Hops     int
	Layers   int
	Width    int
	P        float64
}

// ByName resolves a Kind and its Params into the vertex count the topology
// needs and the Constructor that fills it.
//
// Errors: ErrUnknownKind. Parameter validation happens when the Constructor runs.
func ByName(kind Kind, p Params) (int, Constructor, error) {
	switch kind {
	case KindPath:
		return p.Vertices, Path(p.Vertices), nil
	case KindParallel:
		return p.Routes*p.Hops + 2, Parallel(p.Routes, p.Hops), nil
	case KindLayered:
		return p.Layers*p.Width + 2, Layered(p.Layers, p.Width), nil
	case KindRandom:
		return p.Vertices, RandomSparse(p.P), nil
	default:
		return 0, nil, fmt.Errorf("ByName(%q): %w", kind, ErrUnknownKind)
	}
}
