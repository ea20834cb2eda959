package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"srs-scheduler/internal/domain/scheduling"
	"srs-scheduler/internal/infra"
	"srs-scheduler/internal/pkg/clock"
	"srs-scheduler/internal/pkg/errs"
	"srs-scheduler/internal/usecase/shared"
)

type RecordReviewInput struct {
	UserID         uuid.UUID
	CardID         uuid.UUID
	Rating         scheduling.Rating
	IdempotencyKey scheduling.IdempotencyKey
}

type RecordReviewResult struct {
	NextReviewAt    time.Time
	IntervalSeconds int64
	Idempotent      bool
}

type ReviewCommands interface {
	Record(ctx context.Context, in RecordReviewInput) (*RecordReviewResult, error)
}

type reviewCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	policy scheduling.Policy
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock, policy scheduling.Policy) ReviewCommands {
	return &reviewCommandsImpl{
		uow:    uow,
		clock:  clk,
		policy: policy,
	}
}

// Record applies one review. Replays of an already-committed
// idempotency key return the stored outcome without touching the
// schedule, regardless of the rating sent with the replay.
func (uc *reviewCommandsImpl) Record(ctx context.Context, in RecordReviewInput) (*RecordReviewResult, error) {
	slog.Info("review_received",
		"user_id", in.UserID,
		"card_id", in.CardID,
		"rating", in.Rating.Value(),
		"idempotency_key", in.IdempotencyKey.String(),
	)

	// Fast path: a committed log row already holds the answer.
	existing, err := uc.uow.CommandReads().ReviewLogByKey(ctx, in.UserID, in.CardID, in.IdempotencyKey.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return uc.reuse(in, existing), nil
	}

	var result *RecordReviewResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()

		sched, err := tx.Schedules().GetOrCreateForUpdate(ctx, in.UserID, in.CardID, now)
		if err != nil {
			return err
		}

		// Re-check under the row lock. A concurrent request with the
		// same key may have committed between the fast path and here.
		replay, err := tx.Reads().ReviewLogByKey(ctx, in.UserID, in.CardID, in.IdempotencyKey.String())
		if err != nil {
			return err
		}
		if replay != nil {
			result = uc.reuse(in, replay)
			return nil
		}

		isFirst := sched.LastIntervalSeconds == 0
		interval := uc.policy.NextInterval(in.Rating, sched.LastIntervalSeconds, isFirst)
		nextReviewAt := now.Add(time.Duration(interval) * time.Second)

		if in.Rating == scheduling.RatingDontRemember {
			sched.Streak = 0
		} else {
			sched.Streak++
		}
		sched.LastIntervalSeconds = interval
		sched.NextReviewAt = nextReviewAt

		if err := tx.Schedules().Save(ctx, sched); err != nil {
			return err
		}

		if err := tx.ReviewLogs().Append(ctx, &shared.ReviewLog{
			ID:                  uuid.New(),
			UserID:              in.UserID,
			CardID:              in.CardID,
			Rating:              int16(in.Rating.Value()),
			IdempotencyKey:      in.IdempotencyKey.String(),
			CreatedAt:           now,
			NextReviewAt:        nextReviewAt,
			NextIntervalSeconds: interval,
		}); err != nil {
			// DUPLICATE_KEY here aborts the whole transaction, so the
			// schedule mutation above is discarded with it.
			return err
		}

		result = &RecordReviewResult{
			NextReviewAt:    nextReviewAt,
			IntervalSeconds: interval,
			Idempotent:      false,
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			// A writer with the same key won the race. Its committed
			// row is the canonical outcome.
			winner, rerr := uc.uow.CommandReads().ReviewLogByKey(ctx, in.UserID, in.CardID, in.IdempotencyKey.String())
			if rerr != nil {
				return nil, rerr
			}
			if winner != nil {
				return uc.reuse(in, winner), nil
			}
			return nil, errs.Mark(err, errs.ErrIdempotencyConflict)
		}
		return nil, err
	}

	if !result.Idempotent {
		slog.Info("review_scheduled",
			"user_id", in.UserID,
			"card_id", in.CardID,
			"interval_seconds", result.IntervalSeconds,
			"next_review_at", result.NextReviewAt,
		)
	}
	return result, nil
}

func (uc *reviewCommandsImpl) reuse(in RecordReviewInput, log *shared.ReviewLog) *RecordReviewResult {
	slog.Info("idempotent_reuse",
		"user_id", in.UserID,
		"card_id", in.CardID,
		"idempotency_key", in.IdempotencyKey.String(),
	)
	return &RecordReviewResult{
		NextReviewAt:    log.NextReviewAt,
		IntervalSeconds: log.NextIntervalSeconds,
		Idempotent:      true,
	}
}
