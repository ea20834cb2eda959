//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"srs-scheduler/internal/handler/api"
	"srs-scheduler/internal/usecase/commands"
	"srs-scheduler/tests/common/httptest"
	commandsmock "srs-scheduler/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	handler      *api.ReviewHandler
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands)

	s.router.POST("/reviews", s.handler.Record)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

var errBoom = errors.New("boom")

func validBody() map[string]any {
	return map[string]any{
		"user_id":         uuid.New().String(),
		"card_id":         uuid.New().String(),
		"rating":          1,
		"idempotency_key": "req-001",
	}
}

// ================================================================================
// TestRecord
// ================================================================================

func (s *ReviewHandlerTestSuite) TestRecord() {
	url := "/reviews"
	next := time.Date(2025, 3, 2, 12, 0, 0, 0, time.UTC)

	s.Run("success: returns 201 Created for a new review", func() {
		s.mockCommands.EXPECT().Record(gomock.Any(), gomock.Any()).
			Return(&commands.RecordReviewResult{
				NextReviewAt:    next,
				IntervalSeconds: 86400,
				Idempotent:      false,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("2025-03-02T12:00:00Z", body["next_review_utc"])
		s.Equal("2025-03-02T21:00:00+09:00", body["next_review_jst"])
		s.Equal(float64(86400), body["interval_seconds"])
		s.Equal("分かる", body["rating_label"])
		s.Equal(false, body["idempotent"])
	})

	s.Run("success: returns 200 OK for an idempotent replay", func() {
		s.mockCommands.EXPECT().Record(gomock.Any(), gomock.Any()).
			Return(&commands.RecordReviewResult{
				NextReviewAt:    next,
				IntervalSeconds: 86400,
				Idempotent:      true,
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody())

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(true, body["idempotent"])
	})

	s.Run("success: rating 0 passes binding", func() {
		s.mockCommands.EXPECT().Record(gomock.Any(), gomock.Any()).
			Return(&commands.RecordReviewResult{
				NextReviewAt:    next,
				IntervalSeconds: 60,
				Idempotent:      false,
			}, nil).Times(1)

		req := validBody()
		req["rating"] = 0
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)

		var body map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("分からない", body["rating_label"])
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{"missing user_id", func(m map[string]any) { delete(m, "user_id") }},
			{"malformed user_id", func(m map[string]any) { m["user_id"] = "not-a-uuid" }},
			{"missing card_id", func(m map[string]any) { delete(m, "card_id") }},
			{"missing rating", func(m map[string]any) { delete(m, "rating") }},
			{"rating below range", func(m map[string]any) { m["rating"] = -1 }},
			{"rating above range", func(m map[string]any) { m["rating"] = 3 }},
			{"missing idempotency_key", func(m map[string]any) { delete(m, "idempotency_key") }},
			{"empty idempotency_key", func(m map[string]any) { m["idempotency_key"] = "" }},
			{"idempotency_key too long", func(m map[string]any) { m["idempotency_key"] = strings.Repeat("k", 65) }},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				req := validBody()
				tc.mutate(req)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("success: 64-char idempotency_key is accepted", func() {
		s.mockCommands.EXPECT().Record(gomock.Any(), gomock.Any()).
			Return(&commands.RecordReviewResult{
				NextReviewAt:    next,
				IntervalSeconds: 86400,
				Idempotent:      false,
			}, nil).Times(1)

		req := validBody()
		req["idempotency_key"] = strings.Repeat("k", 64)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, req)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 500 Internal Server Error when the command fails", func() {
		s.mockCommands.EXPECT().Record(gomock.Any(), gomock.Any()).
			Return(nil, errBoom).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validBody())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to record review")
	})
}
