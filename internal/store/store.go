package store

import (
	"context"

	"github.com/ross/mindnotes/internal/live"
	"github.com/ross/mindnotes/internal/models"
)

// Store defines the note persistence operations. Consumers should depend on
// this interface rather than the concrete *DB type to facilitate testing
// with mocks.
type Store interface {
	// All returns every persisted note in insertion order. Ordering for
	// display is a service responsibility.
	All(ctx context.Context) ([]models.Note, error)
	// Get returns the note with the given id, or nil when absent.
	// Absence is not an error.
	Get(ctx context.Context, id int64) (*models.Note, error)
	// Upsert inserts n when n.ID is zero (assigning the new id into n) and
	// replaces the stored record in place otherwise.
	Upsert(ctx context.Context, n *models.Note) error
	// Delete removes the note with the given id; a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
	// Observe subscribes to the live feed. Every successful mutation pushes
	// a fresh full snapshot to all subscribers.
	Observe() chan live.Event
	// Unobserve cancels a subscription made with Observe.
	Unobserve(ch chan live.Event)
	Close() error
}

// Verify *DB satisfies Store at compile time.
var _ Store = (*DB)(nil)
