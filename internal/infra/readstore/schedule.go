package readstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"srs-scheduler/internal/infra"
	"srs-scheduler/internal/infra/db"
)

const listDueCardIDsSQL = `
SELECT card_id
FROM card_schedules
WHERE user_id = $1 AND next_review_at <= $2
ORDER BY next_review_at, card_id`

type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(dbtx db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: dbtx}
}

// ListDueCardIDs returns the cards due at or before until, soonest
// first. Unknown users simply have no rows and yield an empty slice.
func (r *ScheduleReadStore) ListDueCardIDs(ctx context.Context, userID uuid.UUID, until time.Time) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, listDueCardIDsSQL, userID, until)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list due cards", err)
	}
	defer rows.Close()

	cardIDs := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan due card id", err)
		}
		cardIDs = append(cardIDs, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate due cards", err)
	}
	return cardIDs, nil
}
