// Package fanout runs a function across a slice of items on a small worker
// pool, preserving input order in the results. The notification dispatcher
// uses it to deliver one assignment to every sink at once.
package fanout

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
)

// Result is the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// PanicError is the Err of an item whose fn panicked.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Run hands items to at most maxWorkers workers (at least one) and returns
// the results in item order once every item is accounted for.
//
// A worker that picks up an item after ctx ended records ctx.Err() without
// calling fn. Calls already running are left to honor ctx themselves.
// No items yields an empty non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	next := make(chan int)
	var wg sync.WaitGroup
	for range min(max(maxWorkers, 1), len(items)) {
		wg.Go(func() {
			for i := range next {
				if err := ctx.Err(); err != nil {
					results[i].Err = err
					continue
				}
				results[i] = call(ctx, fn, items[i])
			}
		})
	}

	for i := range items {
		next <- i
	}
	close(next)
	wg.Wait()
	return results
}

func call[T, R any](ctx context.Context, fn func(context.Context, T) (R, error), item T) (res Result[R]) {
	defer func() {
		if v := recover(); v != nil {
			res = Result[R]{Err: &PanicError{Value: v, Stack: debug.Stack()}}
		}
	}()
	v, err := fn(ctx, item)
	return Result[R]{Value: v, Err: err}
}
