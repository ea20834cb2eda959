package shared

import (
	"time"

	"github.com/google/uuid"
)

// CardSchedule is the single current-state row per (user, card).
// LastIntervalSeconds == 0 means the card has never been reviewed.
type CardSchedule struct {
	UserID              uuid.UUID
	CardID              uuid.UUID
	Streak              int32
	LastIntervalSeconds int64
	NextReviewAt        time.Time
}

// ReviewLog is one immutable history row per accepted review.
type ReviewLog struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	CardID              uuid.UUID
	Rating              int16
	IdempotencyKey      string
	CreatedAt           time.Time
	NextReviewAt        time.Time
	NextIntervalSeconds int64
}
