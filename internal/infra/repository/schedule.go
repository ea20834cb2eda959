package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"srs-scheduler/internal/infra"
	"srs-scheduler/internal/infra/db"
	"srs-scheduler/internal/usecase/shared"
)

const lockScheduleSQL = `
SELECT user_id, card_id, streak, last_interval_seconds, next_review_at
FROM card_schedules
WHERE user_id = $1 AND card_id = $2
FOR UPDATE`

const insertScheduleSQL = `
INSERT INTO card_schedules (user_id, card_id, streak, last_interval_seconds, next_review_at)
VALUES ($1, $2, 0, 0, $3)
ON CONFLICT (user_id, card_id) DO NOTHING`

const updateScheduleSQL = `
UPDATE card_schedules
SET streak = $3, last_interval_seconds = $4, next_review_at = $5
WHERE user_id = $1 AND card_id = $2`

type ScheduleRepository struct {
	db db.DBTX
}

func NewScheduleRepository(dbtx db.DBTX) *ScheduleRepository {
	return &ScheduleRepository{db: dbtx}
}

func (r *ScheduleRepository) GetOrCreateForUpdate(ctx context.Context, userID, cardID uuid.UUID, now time.Time) (*shared.CardSchedule, error) {
	sched, err := r.lockRow(ctx, userID, cardID)
	if err == nil {
		return sched, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("failed to lock card schedule", err)
	}

	// No row yet. ON CONFLICT DO NOTHING tolerates a concurrent insert
	// of the same key; the re-fetch below blocks on that writer's lock.
	if _, err := r.db.Exec(ctx, insertScheduleSQL, userID, cardID, now); err != nil {
		return nil, infra.WrapRepoErr("failed to create card schedule", err)
	}

	sched, err = r.lockRow(ctx, userID, cardID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock created card schedule", err)
	}
	return sched, nil
}

func (r *ScheduleRepository) Save(ctx context.Context, sched *shared.CardSchedule) error {
	tag, err := r.db.Exec(ctx, updateScheduleSQL,
		sched.UserID, sched.CardID,
		sched.Streak, sched.LastIntervalSeconds, sched.NextReviewAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save card schedule", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("card schedule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ScheduleRepository) lockRow(ctx context.Context, userID, cardID uuid.UUID) (*shared.CardSchedule, error) {
	var sched shared.CardSchedule
	err := r.db.QueryRow(ctx, lockScheduleSQL, userID, cardID).Scan(
		&sched.UserID, &sched.CardID,
		&sched.Streak, &sched.LastIntervalSeconds, &sched.NextReviewAt,
	)
	if err != nil {
		return nil, err
	}
	return &sched, nil
}
