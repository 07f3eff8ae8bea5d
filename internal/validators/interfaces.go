// Package validators enforces the journal entry schema before remote data is
// merged into the local store.
//
// The sync engine treats validation as a safety gate: a record that arrives
// from another device (possibly a newer or older client) is checked against
// the schema this client understands, and a single corrupt or foreign-schema
// record is skipped with a warning rather than aborting the whole batch.
package validators

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/entry_validator_mock.go -package=mock

// Validator defines a generic validation interface for arbitrary input
// values. Implementations perform structural validation, semantic checks,
// and cross-field rules.
type Validator interface {
	// Validate validates the provided input. Returns an error wrapping
	// [ErrInvalidEntry] when the value fails the schema.
	Validate(context.Context, any) error
}
