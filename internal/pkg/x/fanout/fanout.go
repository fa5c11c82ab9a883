// Package fanout runs a batch of independent tasks concurrently on a
// bounded worker pool and joins the results in input order. Per-task
// errors are captured alongside their results instead of aborting the
// batch, which keeps partial-failure semantics explicit at the call site.
package fanout

import (
	"context"

	"github.com/alitto/pond/v2"
)

// defaultConcurrency bounds the pool when the caller passes a
// non-positive limit.
const defaultConcurrency = 8

// Result pairs the output of one task with the error it produced, if any.
type Result[T any] struct {
	Value T
	Err   error
}

// Run executes fn once per input on a worker pool bounded by limit and
// returns one Result per input, re-associated by index regardless of
// completion order. It blocks until every task has finished or the
// context is canceled; canceled tasks report the context error.
func Run[I, O any](ctx context.Context, limit int, inputs []I, fn func(ctx context.Context, index int, input I) (O, error)) []Result[O] {
	if limit <= 0 {
		limit = defaultConcurrency
	}

	results := make([]Result[O], len(inputs))

	// The pool runs every submitted task even if ctx is canceled midway;
	// the per-task check below turns the remainder into context errors
	// instead of leaving silent zero-valued results.
	pool := pond.NewPool(limit)
	for i, input := range inputs {
		pool.Submit(func() {
			if err := ctx.Err(); err != nil {
				results[i] = Result[O]{Err: err}
				return
			}

			value, err := fn(ctx, i, input)
			results[i] = Result[O]{Value: value, Err: err}
		})
	}
	pool.StopAndWait()

	return results
}
