package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-invest-ledger/internal/models"
)

// LedgerStore persists the ledger state.
//
// Update runs fn against a private working copy and commits it atomically
// when fn returns nil; any error discards the copy. fn may be invoked more
// than once by optimistic backends, so it must not have side effects outside
// the state it receives. View runs fn against the last committed state.
type LedgerStore interface {
	Update(ctx context.Context, fn func(*models.State) error) error
	View(ctx context.Context, fn func(*models.State) error) error
}

// IDGenerator produces collision-resistant entity ids.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random UUIDv4 ids.
type UUIDGenerator struct{}

// NewID returns a new random UUID string.
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

func utcNow() time.Time {
	return time.Now().UTC()
}
