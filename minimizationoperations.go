package dfamin

import (
	"cmp"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type minimizeOptions struct {
	logger      *zap.Logger
	parallelism int
	// passHook holds a func(int, *Partition[S, L]) for the S, L of the call.
	passHook any
}

// Option configures Minimize.
type Option func(*minimizeOptions)

// WithLogger logs every refinement pass at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *minimizeOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithParallelism splits the blocks of a pass on up to n goroutines. n <= 1 keeps the
// computation on the calling goroutine. The result does not depend on n.
func WithParallelism(n int) Option {
	return func(o *minimizeOptions) {
		o.parallelism = n
	}
}

// WithPassHook calls fn with the partition produced by every pass. Pass 0 is the initial
// accepting/non-accepting partition and the last call receives the fixpoint. A hook whose
// type parameters differ from those of the minimised automaton is never called; Minimize
// logs that at debug level.
func WithPassHook[S, L cmp.Ordered](fn func(pass int, p *Partition[S, L])) Option {
	return func(o *minimizeOptions) {
		o.passHook = fn
	}
}

func newMinimizeOptions(opts ...Option) *minimizeOptions {
	o := &minimizeOptions{
		logger:      zap.NewNop(),
		parallelism: 1,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Minimize returns the minimal DFA equivalent to d, computed by Moore-style partition
// refinement: starting from the accepting/non-accepting split, every pass re-splits every
// block by the blocks its members' transitions lead to, until a pass changes nothing.
//
// d is validated first; a *ValidationError is returned before any refinement work if it
// is not a complete DFA. Each pass costs O(|states|·|alphabet|) and there are at most
// |states| passes.
func Minimize[S, L cmp.Ordered](d *DFA[S, L], opts ...Option) (*Minimized[S, L], error) {
	if err := Validate(d); err != nil {
		return nil, err
	}
	o := newMinimizeOptions(opts...)

	idx := newStateIndex(d)
	if idx.numStates() == 0 {
		// Fastmatch for the empty automaton
		return build(idx, newPartition(idx, nil), 0)
	}

	final, passes, err := refine(idx, o)
	if err != nil {
		return nil, err
	}
	return build(idx, final, passes)
}

// refine runs passes until the fixpoint and returns it together with the number of
// passes it took, the last (confirming) pass included.
func refine[S, L cmp.Ordered](idx *stateIndex[S, L], o *minimizeOptions) (*Partition[S, L], int, error) {
	hook, ok := o.passHook.(func(int, *Partition[S, L]))
	if o.passHook != nil && !ok {
		o.logger.Debug("pass hook ignored, type parameters do not match",
			zap.String("hook", fmt.Sprintf("%T", o.passHook)),
		)
	}

	current := initialPartition(idx)
	if hook != nil {
		hook(0, current)
	}

	// Every pass that changes the partition adds at least one block.
	maxPasses := idx.numStates() + 1
	for pass := 1; pass <= maxPasses; pass++ {
		next, err := refinePass(current, o.parallelism)
		if err != nil {
			return nil, pass, err
		}

		o.logger.Debug("refinement pass",
			zap.Int("pass", pass),
			zap.Int("blocks", next.Len()),
			zap.Int("states", idx.numStates()),
		)
		if hook != nil {
			hook(pass, next)
		}

		if next.Equal(current) {
			o.logger.Debug("refinement reached fixpoint",
				zap.Int("passes", pass),
				zap.Int("blocks", next.Len()),
			)
			return next, pass, nil
		}
		current = next
	}

	return nil, maxPasses, fmt.Errorf("%w after %d passes", ErrNoFixpoint, maxPasses)
}

// refinePass builds the next partition from p. p is only read.
func refinePass[S, L cmp.Ordered](p *Partition[S, L], parallelism int) (*Partition[S, L], error) {
	results := make([][]Block, len(p.blocks))

	if parallelism <= 1 {
		r := newBlockResolver(p)
		for i, b := range p.blocks {
			if b.Size() == 1 {
				results[i] = []Block{b}
				continue
			}
			parts, err := split(b, r)
			if err != nil {
				return nil, err
			}
			results[i] = parts
		}
	} else {
		var g errgroup.Group
		g.SetLimit(parallelism)
		for i, b := range p.blocks {
			if b.Size() == 1 {
				results[i] = []Block{b}
				continue
			}
			g.Go(func() error {
				// The memo is not shared between goroutines.
				parts, err := split(b, newBlockResolver(p))
				if err != nil {
					return err
				}
				results[i] = parts
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	blocks := make([]Block, 0, len(p.blocks))
	for _, r := range results {
		blocks = append(blocks, r...)
	}
	return newPartition(p.idx, blocks), nil
}
