package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"srs-scheduler/internal/infra"
	"srs-scheduler/internal/infra/db"
	"srs-scheduler/internal/usecase/shared"
)

const findLogByKeySQL = `
SELECT id, user_id, card_id, rating, idempotency_key, created_at, next_review_at, next_interval_seconds
FROM review_logs
WHERE user_id = $1 AND card_id = $2 AND idempotency_key = $3`

type ReviewLogReadStore struct {
	db db.DBTX
}

func NewReviewLogReadStore(dbtx db.DBTX) *ReviewLogReadStore {
	return &ReviewLogReadStore{db: dbtx}
}

// ReviewLogByKey returns (nil, nil) when no row matches the key.
func (r *ReviewLogReadStore) ReviewLogByKey(ctx context.Context, userID, cardID uuid.UUID, idempotencyKey string) (*shared.ReviewLog, error) {
	var log shared.ReviewLog
	err := r.db.QueryRow(ctx, findLogByKeySQL, userID, cardID, idempotencyKey).Scan(
		&log.ID, &log.UserID, &log.CardID,
		&log.Rating, &log.IdempotencyKey,
		&log.CreatedAt, &log.NextReviewAt, &log.NextIntervalSeconds,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find review log by idempotency key", err)
	}
	return &log, nil
}
