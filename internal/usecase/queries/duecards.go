package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ScheduleReadStore is the read-side port for due-card lookups.
type ScheduleReadStore interface {
	ListDueCardIDs(ctx context.Context, userID uuid.UUID, until time.Time) ([]uuid.UUID, error)
}

type DueCardQueries interface {
	// ListDue returns the IDs of cards whose next review instant is at
	// or before until. A user with no schedule rows gets an empty list.
	ListDue(ctx context.Context, userID uuid.UUID, until time.Time) ([]uuid.UUID, error)
}

type dueCardQueriesImpl struct {
	store ScheduleReadStore
}

func NewDueCardQueries(store ScheduleReadStore) DueCardQueries {
	return &dueCardQueriesImpl{store: store}
}

func (q *dueCardQueriesImpl) ListDue(ctx context.Context, userID uuid.UUID, until time.Time) ([]uuid.UUID, error) {
	return q.store.ListDueCardIDs(ctx, userID, until.UTC())
}
