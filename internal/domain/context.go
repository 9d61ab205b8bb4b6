package domain

import "context"

// Action is a single staged write with a compensating rollback.
//
// Action lives in the domain layer so services can build write steps without
// importing the application-layer request context.
type Action interface {
	// Execute performs the write. Implementations must respect ctx
	// cancellation.
	Execute(ctx context.Context) error

	// Rollback reverses a successful Execute. It is never called when
	// Execute failed.
	Rollback(ctx context.Context) error

	// Description is used in logs (e.g., "save task 12").
	Description() string
}

// WriteStager is the domain's view of the request context: it records staged
// entities so later reads in the same request see the write.
type WriteStager interface {
	Stage(key string, entity any, action Action) error
}
