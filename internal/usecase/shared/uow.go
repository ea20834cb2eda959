package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UnitOfWork runs command-side work in a single serializable scope.
type UnitOfWork interface {
	// Within executes fn inside a transaction. The transaction commits
	// when fn returns nil and rolls back otherwise. Serialization
	// failures are retried with a fresh transaction.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error

	// CommandReads exposes read access outside any transaction, for
	// idempotency checks that must see committed state.
	CommandReads() CommandReads
}

// Tx is the set of repositories bound to one open transaction.
type Tx interface {
	Schedules() ScheduleRepository
	ReviewLogs() ReviewLogRepository
	Reads() CommandReads
}

type ScheduleRepository interface {
	// GetOrCreateForUpdate returns the schedule row locked FOR UPDATE,
	// creating an unreviewed row first when none exists. The lock
	// serializes all writers for the same (user, card).
	GetOrCreateForUpdate(ctx context.Context, userID, cardID uuid.UUID, now time.Time) (*CardSchedule, error)

	// Save persists the scheduling columns of an existing row.
	Save(ctx context.Context, sched *CardSchedule) error
}

type ReviewLogRepository interface {
	// Append inserts a new log row. A row with the same
	// (user_id, card_id, idempotency_key) already present yields a
	// DUPLICATE_KEY repository error and inserts nothing.
	Append(ctx context.Context, log *ReviewLog) error
}

type CommandReads interface {
	// ReviewLogByKey returns the committed log row for the key, or
	// (nil, nil) when no such row exists.
	ReviewLogByKey(ctx context.Context, userID, cardID uuid.UUID, idempotencyKey string) (*ReviewLog, error)
}
