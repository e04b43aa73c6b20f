package repositories

import "errors"

// Sentinel errors shared by all state backends.
var (
	ErrStateNotFound          = errors.New("ledger state not persisted yet")
	ErrConcurrentModification = errors.New("concurrent modification detected")
)
