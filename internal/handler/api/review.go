package api

import (
	"net/http"

	reqdto "srs-scheduler/internal/handler/dto/request"
	resdto "srs-scheduler/internal/handler/dto/response"
	"srs-scheduler/internal/handler/httperr"
	"srs-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
}

func NewReviewHandler(cmds commands.ReviewCommands) *ReviewHandler {
	return &ReviewHandler{cmds: cmds}
}

// @Summary Record review
// @Description Record a review result and compute the next review instant
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body reqdto.RecordReviewRequest true "Record review request"
// @Success 201 {object} resdto.ReviewResponse
// @Success 200 {object} resdto.ReviewResponse "Idempotent replay"
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /reviews [post]
func (h *ReviewHandler) Record(c *gin.Context) {
	var req reqdto.RecordReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	result, err := h.cmds.Record(c.Request.Context(), in)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to record review", nil)
		return
	}

	status := http.StatusCreated
	if result.Idempotent {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromRecordResult(result, in.Rating))
}
