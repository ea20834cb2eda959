package request

import (
	"github.com/google/uuid"

	"srs-scheduler/internal/domain/scheduling"
	"srs-scheduler/internal/usecase/commands"
)

// Rating is a pointer so binding can tell an explicit 0 from a missing
// field; `required` on a plain int would reject rating 0.
type RecordReviewRequest struct {
	UserID         uuid.UUID `json:"user_id" binding:"required"`
	CardID         uuid.UUID `json:"card_id" binding:"required"`
	Rating         *int      `json:"rating" binding:"required,min=0,max=2"`
	IdempotencyKey string    `json:"idempotency_key" binding:"required,min=1,max=64"`
}

func (r RecordReviewRequest) ToInput() (commands.RecordReviewInput, error) {
	rating, err := scheduling.NewRating(*r.Rating)
	if err != nil {
		return commands.RecordReviewInput{}, err
	}
	key, err := scheduling.NewIdempotencyKey(r.IdempotencyKey)
	if err != nil {
		return commands.RecordReviewInput{}, err
	}
	return commands.RecordReviewInput{
		UserID:         r.UserID,
		CardID:         r.CardID,
		Rating:         rating,
		IdempotencyKey: key,
	}, nil
}
