package response

import (
	"time"

	"github.com/google/uuid"

	"srs-scheduler/internal/domain/scheduling"
	"srs-scheduler/internal/pkg/jst"
	"srs-scheduler/internal/usecase/commands"
)

type ReviewResponse struct {
	NextReviewUTC   string `json:"next_review_utc"`
	NextReviewJST   string `json:"next_review_jst"`
	IntervalSeconds int64  `json:"interval_seconds"`
	RatingLabel     string `json:"rating_label"`
	Idempotent      bool   `json:"idempotent"`
}

func FromRecordResult(res *commands.RecordReviewResult, rating scheduling.Rating) ReviewResponse {
	return ReviewResponse{
		NextReviewUTC:   jst.RenderUTC(res.NextReviewAt),
		NextReviewJST:   jst.Render(res.NextReviewAt),
		IntervalSeconds: res.IntervalSeconds,
		RatingLabel:     rating.Label(),
		Idempotent:      res.Idempotent,
	}
}

type DueCardsResponse struct {
	UserID   string   `json:"user_id"`
	UntilUTC string   `json:"until_utc"`
	UntilJST string   `json:"until_jst"`
	CardIDs  []string `json:"card_ids"`
}

func FromDueCards(userID uuid.UUID, until time.Time, cardIDs []uuid.UUID) DueCardsResponse {
	ids := make([]string, 0, len(cardIDs))
	for _, id := range cardIDs {
		ids = append(ids, id.String())
	}
	return DueCardsResponse{
		UserID:   userID.String(),
		UntilUTC: jst.RenderUTC(until),
		UntilJST: jst.Render(until),
		CardIDs:  ids,
	}
}
