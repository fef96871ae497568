package pipeline

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/textpipe"
	"github.com/npillmayer/textpipe/shaping"
	"github.com/npillmayer/textpipe/ucd"
)

// Pool hands out Processors to concurrent clients. All processors of
// a pool share the same Unicode property provider and settings, but own
// their buffers and their shaper.
type Pool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

// NewPool creates a pool of processors. newShaper is called once for every
// processor the pool creates. The pool grows as needed and never blocks.
func NewPool(ctx context.Context, p ucd.Provider, newShaper func() shaping.Shaper, opts ...Option) (*Pool, error) {
	if p == nil {
		return nil, fmt.Errorf("pipeline: cannot create pool: %w", textpipe.ErrNoProvider)
	}
	if newShaper == nil {
		return nil, fmt.Errorf("pipeline: cannot create pool: %w", ErrNoShaper)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return New(p, newShaper(), opts...)
		})
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	return &Pool{
		opool: pool.NewObjectPool(ctx, factory, config),
		ctx:   ctx,
	}, nil
}

// Borrow returns a processor from the pool, creating one if none is idle.
// Clients must give it back with Return when done.
func (pl *Pool) Borrow(ctx context.Context) (*Processor, error) {
	if ctx == nil {
		ctx = pl.ctx
	}
	o, err := pl.opool.BorrowObject(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeline: cannot borrow processor: %w", err)
	}
	tracer().Debugf("pipeline: borrowed processor, %d active", pl.opool.GetNumActive())
	return o.(*Processor), nil
}

// Return puts a borrowed processor back into the pool. Results from proc
// become invalid.
func (pl *Pool) Return(ctx context.Context, proc *Processor) error {
	if proc == nil {
		return nil
	}
	if ctx == nil {
		ctx = pl.ctx
	}
	proc.result = Result{}
	return pl.opool.ReturnObject(ctx, proc)
}

// Process borrows a processor, runs text through it and returns the processor
// to the pool. As the processor is given back, the result is detached from
// the processor's buffers.
func (pl *Pool) Process(ctx context.Context, text string, fonts shaping.FontSource) (*Result, error) {
	proc, err := pl.Borrow(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = pl.Return(ctx, proc) }()
	res, err := proc.Process(text, fonts)
	if err != nil {
		return nil, err
	}
	return res.detach(), nil
}

// Active returns the number of processors currently borrowed.
func (pl *Pool) Active() int {
	return pl.opool.GetNumActive()
}

// Idle returns the number of processors waiting in the pool.
func (pl *Pool) Idle() int {
	return pl.opool.GetNumIdle()
}

// Close closes the pool and drops all idle processors.
func (pl *Pool) Close(ctx context.Context) {
	if ctx == nil {
		ctx = pl.ctx
	}
	pl.opool.Close(ctx)
}
