// Package domain contains shared domain types used across entity sub-packages.
// Entity-specific types live in sub-packages (domain/board, domain/task,
// domain/user). This root package holds sentinel errors, validation types, and
// the Action contract used to stage writes within a request.
package domain
