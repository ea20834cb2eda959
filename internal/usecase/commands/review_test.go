//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"srs-scheduler/internal/domain/scheduling"
	"srs-scheduler/internal/infra"
	"srs-scheduler/internal/pkg/clock"
	"srs-scheduler/internal/usecase/commands"
	"srs-scheduler/internal/usecase/shared"
)

// fakeState backs all fake ports so a test can observe every side effect.
type fakeState struct {
	sched *shared.CardSchedule
	logs  map[string]*shared.ReviewLog

	// plantOnLock simulates a concurrent writer committing between the
	// fast-path read and the row lock.
	plantOnLock *shared.ReviewLog

	// raceWinner simulates losing the append race: Append fails with
	// DUPLICATE_KEY and the winner's row becomes visible.
	raceWinner *shared.ReviewLog

	saveCalls   int
	appendCalls int
}

func newFakeState() *fakeState {
	return &fakeState{logs: map[string]*shared.ReviewLog{}}
}

type fakeUoW struct{ st *fakeState }

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{st: u.st})
}

func (u *fakeUoW) CommandReads() shared.CommandReads { return &fakeReads{st: u.st} }

type fakeTx struct{ st *fakeState }

func (t *fakeTx) Schedules() shared.ScheduleRepository { return &fakeScheduleRepo{st: t.st} }
func (t *fakeTx) ReviewLogs() shared.ReviewLogRepository {
	return &fakeReviewLogRepo{st: t.st}
}
func (t *fakeTx) Reads() shared.CommandReads { return &fakeReads{st: t.st} }

type fakeScheduleRepo struct{ st *fakeState }

func (r *fakeScheduleRepo) GetOrCreateForUpdate(_ context.Context, userID, cardID uuid.UUID, now time.Time) (*shared.CardSchedule, error) {
	if r.st.plantOnLock != nil {
		r.st.logs[r.st.plantOnLock.IdempotencyKey] = r.st.plantOnLock
		r.st.plantOnLock = nil
	}
	if r.st.sched == nil {
		r.st.sched = &shared.CardSchedule{
			UserID:       userID,
			CardID:       cardID,
			NextReviewAt: now,
		}
	}
	cp := *r.st.sched
	return &cp, nil
}

func (r *fakeScheduleRepo) Save(_ context.Context, sched *shared.CardSchedule) error {
	r.st.saveCalls++
	cp := *sched
	r.st.sched = &cp
	return nil
}

type fakeReviewLogRepo struct{ st *fakeState }

func (r *fakeReviewLogRepo) Append(_ context.Context, log *shared.ReviewLog) error {
	r.st.appendCalls++
	if r.st.raceWinner != nil {
		r.st.logs[r.st.raceWinner.IdempotencyKey] = r.st.raceWinner
		r.st.raceWinner = nil
		return infra.WrapRepoErr("review log already exists for idempotency key", nil, infra.KindDuplicateKey)
	}
	if _, ok := r.st.logs[log.IdempotencyKey]; ok {
		return infra.WrapRepoErr("review log already exists for idempotency key", nil, infra.KindDuplicateKey)
	}
	cp := *log
	r.st.logs[log.IdempotencyKey] = &cp
	return nil
}

type fakeReads struct{ st *fakeState }

func (r *fakeReads) ReviewLogByKey(_ context.Context, _, _ uuid.UUID, idempotencyKey string) (*shared.ReviewLog, error) {
	if log, ok := r.st.logs[idempotencyKey]; ok {
		cp := *log
		return &cp, nil
	}
	return nil, nil
}

func newInput(rating int, key string) commands.RecordReviewInput {
	r, _ := scheduling.NewRating(rating)
	k, _ := scheduling.NewIdempotencyKey(key)
	return commands.RecordReviewInput{
		UserID:         uuid.New(),
		CardID:         uuid.New(),
		Rating:         r,
		IdempotencyKey: k,
	}
}

func TestRecord_FirstReview(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		rating       int
		wantInterval int64
		wantStreak   int32
	}{
		{"remembered schedules one day out", 1, 86400, 1},
		{"instant recall schedules four days out", 2, 345600, 1},
		{"dont remember retries in a minute", 0, 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newFakeState()
			uc := commands.NewReviewCommands(&fakeUoW{st: st}, clock.NewMockClock(now), scheduling.DefaultPolicy())

			res, err := uc.Record(context.Background(), newInput(tt.rating, "key-1"))
			require.NoError(t, err)

			assert.False(t, res.Idempotent)
			assert.Equal(t, tt.wantInterval, res.IntervalSeconds)
			assert.True(t, res.NextReviewAt.Equal(now.Add(time.Duration(tt.wantInterval)*time.Second)))

			require.NotNil(t, st.sched)
			assert.Equal(t, tt.wantStreak, st.sched.Streak)
			assert.Equal(t, tt.wantInterval, st.sched.LastIntervalSeconds)
			assert.Len(t, st.logs, 1)
		})
	}
}

func TestRecord_GrowthFromExistingInterval(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	in := newInput(2, "key-growth")

	st := newFakeState()
	st.sched = &shared.CardSchedule{
		UserID:              in.UserID,
		CardID:              in.CardID,
		Streak:              3,
		LastIntervalSeconds: 86400,
		NextReviewAt:        now.Add(-time.Hour),
	}
	uc := commands.NewReviewCommands(&fakeUoW{st: st}, clock.NewMockClock(now), scheduling.DefaultPolicy())

	res, err := uc.Record(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(216000), res.IntervalSeconds) // 86400 * 2.5
	assert.Equal(t, int32(4), st.sched.Streak)
}

func TestRecord_DontRememberResetsStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	in := newInput(0, "key-reset")

	st := newFakeState()
	st.sched = &shared.CardSchedule{
		UserID:              in.UserID,
		CardID:              in.CardID,
		Streak:              7,
		LastIntervalSeconds: 345600,
		NextReviewAt:        now,
	}
	uc := commands.NewReviewCommands(&fakeUoW{st: st}, clock.NewMockClock(now), scheduling.DefaultPolicy())

	res, err := uc.Record(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, int64(60), res.IntervalSeconds)
	assert.Equal(t, int32(0), st.sched.Streak)
	// last interval now reflects the retry, not the old progress
	assert.Equal(t, int64(60), st.sched.LastIntervalSeconds)
}

func TestRecord_IdempotentReplayFastPath(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	in := newInput(1, "key-replay")

	committedAt := now.Add(-time.Minute)
	st := newFakeState()
	st.logs["key-replay"] = &shared.ReviewLog{
		ID:                  uuid.New(),
		UserID:              in.UserID,
		CardID:              in.CardID,
		Rating:              1,
		IdempotencyKey:      "key-replay",
		CreatedAt:           committedAt,
		NextReviewAt:        committedAt.Add(24 * time.Hour),
		NextIntervalSeconds: 86400,
	}
	uc := commands.NewReviewCommands(&fakeUoW{st: st}, clock.NewMockClock(now), scheduling.DefaultPolicy())

	res, err := uc.Record(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, res.Idempotent)
	assert.Equal(t, int64(86400), res.IntervalSeconds)
	assert.True(t, res.NextReviewAt.Equal(committedAt.Add(24*time.Hour)))
	assert.Equal(t, 0, st.saveCalls, "replay must not touch the schedule")
	assert.Equal(t, 0, st.appendCalls, "replay must not append a log")
}

func TestRecord_ReplayWithDifferentRatingReturnsStoredOutcome(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	in := newInput(1, "key-dup")

	st := newFakeState()
	uc := commands.NewReviewCommands(&fakeUoW{st: st}, clock.NewMockClock(now), scheduling.DefaultPolicy())

	first, err := uc.Record(context.Background(), in)
	require.NoError(t, err)
	require.False(t, first.Idempotent)

	// Same key, different rating: the stored outcome wins.
	replay := in
	replay.Rating, _ = scheduling.NewRating(2)

	second, err := uc.Record(context.Background(), replay)
	require.NoError(t, err)

	assert.True(t, second.Idempotent)
	assert.Equal(t, first.IntervalSeconds, second.IntervalSeconds)
	assert.True(t, second.NextReviewAt.Equal(first.NextReviewAt))
	assert.Equal(t, 1, st.saveCalls)
}

func TestRecord_ConcurrentCommitSeenUnderLock(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	in := newInput(1, "key-race")

	winner := &shared.ReviewLog{
		ID:                  uuid.New(),
		UserID:              in.UserID,
		CardID:              in.CardID,
		Rating:              1,
		IdempotencyKey:      "key-race",
		CreatedAt:           now,
		NextReviewAt:        now.Add(24 * time.Hour),
		NextIntervalSeconds: 86400,
	}

	st := newFakeState()
	st.plantOnLock = winner
	uc := commands.NewReviewCommands(&fakeUoW{st: st}, clock.NewMockClock(now), scheduling.DefaultPolicy())

	res, err := uc.Record(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, res.Idempotent)
	assert.Equal(t, int64(86400), res.IntervalSeconds)
	assert.Equal(t, 0, st.saveCalls)
	assert.Equal(t, 0, st.appendCalls)
}

func TestRecord_LostAppendRaceReturnsWinner(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	in := newInput(2, "key-lost")

	winner := &shared.ReviewLog{
		ID:                  uuid.New(),
		UserID:              in.UserID,
		CardID:              in.CardID,
		Rating:              1,
		IdempotencyKey:      "key-lost",
		CreatedAt:           now,
		NextReviewAt:        now.Add(24 * time.Hour),
		NextIntervalSeconds: 86400,
	}

	st := newFakeState()
	st.raceWinner = winner
	uc := commands.NewReviewCommands(&fakeUoW{st: st}, clock.NewMockClock(now), scheduling.DefaultPolicy())

	res, err := uc.Record(context.Background(), in)
	require.NoError(t, err)

	assert.True(t, res.Idempotent)
	assert.Equal(t, int64(86400), res.IntervalSeconds, "loser adopts the winner's outcome")
	assert.True(t, res.NextReviewAt.Equal(winner.NextReviewAt))
}
