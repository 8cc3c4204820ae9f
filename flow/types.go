package flow

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNilNetwork is returned when the network argument is nil.
	ErrNilNetwork = errors.New("flow: network is nil")

	// ErrNilGraph is returned by FromGraph when the graph is nil.
	ErrNilGraph = errors.New("flow: graph is nil")

	// ErrVertexOutOfRange is returned for a vertex outside [0, n).
	ErrVertexOutOfRange = errors.New("flow: vertex out of range")

	// ErrSourceIsSink is returned when source and sink coincide; the
	// problem is degenerate and almost always a caller bug.
	ErrSourceIsSink = errors.New("flow: source equals sink")

	// ErrNegativeCount is returned for a negative vertex or partition
	// size.
	ErrNegativeCount = errors.New("flow: negative count")

	// ErrNotComputed is returned by MinCut when the Result carries no
	// residual state.
	ErrNotComputed = errors.New("flow: result not computed")
)

// ArcError reports a rejected arc insertion: negative capacity or an
// endpoint outside the network.
type ArcError struct {
	From, To int
	Cap      float64
	Reason   error
}

func (e *ArcError) Error() string {
	return fmt.Sprintf("flow: arc %d→%d (cap %g): %v", e.From, e.To, e.Cap, e.Reason)
}

func (e *ArcError) Unwrap() error { return e.Reason }

// ErrNegativeCapacity is the Reason carried by an ArcError for a
// negative-capacity arc.
var ErrNegativeCapacity = errors.New("negative capacity")

// Option adjusts a MaxFlow run.
type Option func(*options)

type options struct {
	ctx       context.Context
	epsilon   float64
	dfs       bool
	onAugment func(path []int, bottleneck float64)
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		epsilon: 1e-9,
	}
}

// WithContext makes the run cancelable: the augmenting-path search
// polls ctx and aborts with ctx.Err() once it is done.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithEpsilon sets the threshold below which residual capacities count
// as exhausted. The default is 1e-9; non-positive values are ignored.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		if eps > 0 {
			o.epsilon = eps
		}
	}
}

// WithFordFulkerson switches augmenting-path selection from BFS
// (Edmonds–Karp, the default) to depth-first search.
func WithFordFulkerson() Option {
	return func(o *options) { o.dfs = true }
}

// WithOnAugment registers a hook invoked after each augmentation with
// the chosen path and its bottleneck capacity. The path slice is
// reused between calls; copy it to retain it.
func WithOnAugment(fn func(path []int, bottleneck float64)) Option {
	return func(o *options) { o.onAugment = fn }
}
