package repository

import (
	"context"

	"srs-scheduler/internal/infra"
	"srs-scheduler/internal/infra/db"
	"srs-scheduler/internal/usecase/shared"
)

const appendReviewLogSQL = `
INSERT INTO review_logs (id, user_id, card_id, rating, idempotency_key, created_at, next_review_at, next_interval_seconds)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (user_id, card_id, idempotency_key) DO NOTHING`

type ReviewLogRepository struct {
	db db.DBTX
}

func NewReviewLogRepository(dbtx db.DBTX) *ReviewLogRepository {
	return &ReviewLogRepository{db: dbtx}
}

func (r *ReviewLogRepository) Append(ctx context.Context, log *shared.ReviewLog) error {
	tag, err := r.db.Exec(ctx, appendReviewLogSQL,
		log.ID, log.UserID, log.CardID,
		log.Rating, log.IdempotencyKey,
		log.CreatedAt, log.NextReviewAt, log.NextIntervalSeconds,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append review log", err)
	}
	if tag.RowsAffected() == 0 {
		// Another writer committed the same idempotency key first.
		return infra.WrapRepoErr("review log already exists for idempotency key", nil, infra.KindDuplicateKey)
	}
	return nil
}
