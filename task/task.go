// Package task provides the execution context long-running computations
// run under: a time-budgeted cooperative yield gate, a progress observer
// and cancellation.
//
// The intended call pattern at every loop checkpoint is
//
//	if err := tc.Err(); err != nil {
//		return err
//	}
//	if tc.ShouldYield() {
//		if err := tc.Yield(task.Progress{...}); err != nil {
//			return err
//		}
//	}
//
// ShouldYield is a pure predicate and Yield always suspends. Checking
// before yielding decouples suspension frequency from iteration cost:
// cheap iterations batch more work per suspension, expensive ones yield
// sooner, and the scheduling overhead of a suspension is only paid when
// the budget has actually elapsed.
package task

import (
	"context"
	"runtime"
	"time"
)

// DefaultBudget is the wall-clock time a computation may run between
// suspensions before ShouldYield reports true.
const DefaultBudget = 250 * time.Millisecond

// Progress describes how far a long-running phase has advanced.
type Progress struct {
	Current int64
	Max     int64
	Message string
}

// Observer receives progress reports at each yield.
type Observer func(Progress)

// Context is the execution context of one long-running computation.
// It is single-threaded by design: the computation, the yield gate and the
// observer all run on one goroutine, mirroring a cooperative scheduler.
type Context struct {
	parent   context.Context
	budget   time.Duration
	observer Observer
	last     time.Time
	checks   int64
	yields   int64
}

// Option configures a Context.
type Option func(*Context)

// WithBudget sets the yield time budget. A zero budget makes every
// ShouldYield report true; useful for tests and overhead measurement.
func WithBudget(d time.Duration) Option {
	return func(c *Context) { c.budget = d }
}

// WithObserver sets the progress observer invoked on every yield.
func WithObserver(fn Observer) Option {
	return func(c *Context) { c.observer = fn }
}

// NewContext creates an execution context. parent carries cancellation;
// the yield clock starts now.
func NewContext(parent context.Context, opts ...Option) *Context {
	if parent == nil {
		parent = context.Background()
	}
	c := &Context{
		parent: parent,
		budget: DefaultBudget,
		last:   time.Now(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Err returns the parent context's cancellation error, if any. It never
// suspends; consumers probe it at every checkpoint.
func (c *Context) Err() error { return c.parent.Err() }

// ShouldYield reports whether the time budget has elapsed since the last
// yield. It is a pure predicate with no suspension cost.
func (c *Context) ShouldYield() bool {
	c.checks++
	return time.Since(c.last) >= c.budget
}

// Yield reports progress and performs exactly one suspension, handing
// control to the scheduler and resuming at the next opportunity. It resets
// the budget clock. When the parent context is done it returns its error
// instead of suspending.
func (c *Context) Yield(p Progress) error {
	if err := c.parent.Err(); err != nil {
		return err
	}
	if c.observer != nil {
		c.observer(p)
	}
	runtime.Gosched()
	c.yields++
	c.last = time.Now()
	return nil
}

// Checks returns how many times ShouldYield was evaluated.
func (c *Context) Checks() int64 { return c.checks }

// Yields returns how many suspensions Yield performed.
func (c *Context) Yields() int64 { return c.yields }
