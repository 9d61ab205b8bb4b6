// Package appctx provides request-scoped context for orchestration services.
//
// A RequestContext memoizes entity lookups for the lifetime of one request
// and stages writes so they run, in order, on Commit:
//
//	rc := appctx.From(ctx)
//
//	// Lookups are fetched once per request.
//	b, err := appctx.GetOrFetch(rc, "board:7", fetchBoard)
//
//	// Writes are staged and later lookups for the key see the new value.
//	err = rc.Stage("task:12", updated, saveAction)
//
//	// Staged writes execute; a failure rolls back earlier steps.
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/kanban-service/internal/domain"
)

// Compile-time check that RequestContext implements domain.WriteStager.
var _ domain.WriteStager = (*RequestContext)(nil)

// ErrAlreadyCommitted is returned when Stage, AddAction, or Commit is called
// on a RequestContext that has already been committed.
var ErrAlreadyCommitted = errors.New("appctx: request context already committed")

// ErrNilAction is returned when a nil Action is staged.
var ErrNilAction = errors.New("appctx: nil action")

// ErrTypeMismatch is returned by GetOrFetch when the same key was cached with
// a different type.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// RequestContext wraps a context.Context with a lookup cache and a queue of
// staged actions. It belongs to a single request; the cache is not safe for
// concurrent use.
type RequestContext struct {
	context.Context
	cache map[string]cacheEntry

	queueMu   sync.Mutex
	items     []domain.Action
	committed bool
}

// cacheEntry stores the result of a fetch. Errors are cached too, so a
// missing entity is looked up once per request.
type cacheEntry struct {
	value any
	err   error
}

// New creates an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

type contextKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, or nil.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(contextKey{}).(*RequestContext); ok {
		return rc
	}
	return nil
}

// From returns the RequestContext stored in ctx, or a fresh one wrapping ctx
// when none is present (background jobs, tests).
func From(ctx context.Context) *RequestContext {
	if rc := FromContext(ctx); rc != nil {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns the cached value for key, calling fetchFn on a miss.
// The same key must always be used with the same type T.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		if entry.err != nil {
			var zero T
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			var zero T
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Forget drops key from the cache so the next GetOrFetch refetches it.
func (rc *RequestContext) Forget(key string) {
	delete(rc.cache, key)
}

// DataProvider binds a cache key to its fetch function.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider for key.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Get is GetOrFetch with the provider's key and fetch function.
func (p *DataProvider[T]) Get(rc *RequestContext) (T, error) {
	return GetOrFetch(rc, p.key, p.fetchFn)
}

// Stage records entity under key and queues action for Commit, so later
// lookups in the request read the staged value.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if err := rc.AddAction(action); err != nil {
		return err
	}
	rc.cache[key] = cacheEntry{value: entity}
	return nil
}
