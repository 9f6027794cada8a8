// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"
	"strings"

	charmlog "github.com/charmbracelet/log"

	"github.com/katalvlaran/costflow/matrix"
)

// Sentinel errors returned by MinCostMaxFlow.
var (
	// ErrNilNetwork is returned when a nil *core.Network is passed in.
	ErrNilNetwork = errors.New("flow: network is nil")

	// ErrSourceOutOfRange is returned when the source is outside [0, n).
	ErrSourceOutOfRange = errors.New("flow: source vertex out of range")

	// ErrSinkOutOfRange is returned when the sink is outside [0, n).
	ErrSinkOutOfRange = errors.New("flow: sink vertex out of range")

	// ErrSourceIsSink is returned when source and sink coincide.
	ErrSourceIsSink = errors.New("flow: source and sink must differ")

	// ErrBrokenPath is returned when the augmenter is handed a predecessor
	// chain that does not lead from the sink back to the source.
	ErrBrokenPath = errors.New("flow: predecessor chain does not reach source")
)

// DefaultSink selects vertex n-1 as the sink.
const DefaultSink = -1

// Path is one augmentation record: the source→sink vertex sequence, the
// bottleneck pushed along it and the sum of the arc costs traversed (reverse
// arcs contribute negated costs). Records are immutable once logged.
type Path struct {
	Vertices []int `json:"vertices" yaml:"vertices"`
	Flow     int64 `json:"flow" yaml:"flow"`
	Cost     int64 `json:"cost" yaml:"cost"`
}

// String renders the path as "[0, 2, 3](3) $1".
func (p Path) String() string {
	parts := make([]string, len(p.Vertices))
	for i, v := range p.Vertices {
		parts[i] = fmt.Sprint(v)
	}

	return fmt.Sprintf("[%s](%d) $%d", strings.Join(parts, ", "), p.Flow, p.Cost)
}

// Result is the terminal state of one solve.
//
//	TotalFlow  - Σ bottleneck over augmentations
//	TotalCost  - Σ path cost over augmentations, not scaled by bottleneck
//	ScaledCost - Σ path cost · bottleneck, the cost of every unit pushed
//	Paths      - augmentations in discovery order
//	Flow       - per-edge flow, non-zero only on declared forward edges
//	Residual   - final residual matrix
type Result struct {
	Source     int
	Sink       int
	TotalFlow  int64
	TotalCost  int64
	ScaledCost int64
	Paths      []Path
	Flow       *matrix.Dense
	Residual   *matrix.Dense
	Iterations int
}

// Step is the engine state right after one augmentation, handed to the
// WithOnAugment hook. Flow and Residual are snapshots owned by the hook.
type Step struct {
	Iteration int
	Path      Path
	TotalFlow int64
	TotalCost int64
	Flow      *matrix.Dense
	Residual  *matrix.Dense
}

// Option configures MinCostMaxFlow.
type Option func(*options)

type options struct {
	sink       int
	logger     *charmlog.Logger
	cycleCheck bool
	onAugment  func(Step)
}

func defaultOptions() options {
	return options{sink: DefaultSink}
}

// WithSink selects the sink vertex. DefaultSink (-1) means n-1.
func WithSink(v int) Option {
	return func(o *options) { o.sink = v }
}

// WithLogger routes per-augmentation debug lines to l. A nil logger keeps the
// engine silent.
func WithLogger(l *charmlog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCycleCheck runs the negative-cycle guard on the residual graph after
// every search. A detected cycle aborts the solve with an error matching
// bellmanford.ErrNegativeCycle.
func WithCycleCheck() Option {
	return func(o *options) { o.cycleCheck = true }
}

// WithOnAugment installs a hook called after each augmentation.
// Panics if fn is nil.
func WithOnAugment(fn func(Step)) Option {
	if fn == nil {
		panic("flow: WithOnAugment(nil)")
	}

	return func(o *options) { o.onAugment = fn }
}
