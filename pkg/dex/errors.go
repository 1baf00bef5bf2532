package dex

import "errors"

var (
	// ErrEmptyQuery means the user asked for a lookup without typing anything.
	// It is raised before any remote call.
	ErrEmptyQuery = errors.New("empty lookup key")

	// ErrMalformedPayload means the catalog answered but the payload cannot
	// satisfy the entity construction invariants (missing hp stat, no types).
	ErrMalformedPayload = errors.New("malformed catalog payload")

	// ErrBatchFailure means the index or membership fetch behind a batch
	// failed outright. It is distinct from a batch that found zero matches.
	ErrBatchFailure = errors.New("batch source fetch failed")

	// ErrUnknownType means the requested category label is not part of the
	// recognized set.
	ErrUnknownType = errors.New("unknown type label")
)
