package api

import (
	"net/http"
	"time"

	resdto "srs-scheduler/internal/handler/dto/response"
	"srs-scheduler/internal/handler/httperr"
	"srs-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DueCardsHandler struct {
	q queries.DueCardQueries
}

func NewDueCardsHandler(q queries.DueCardQueries) *DueCardsHandler {
	return &DueCardsHandler{q: q}
}

// @Summary List due cards
// @Description List card IDs due for review at or before the given instant
// @Tags reviews
// @Produce json
// @Param user_id path string true "User ID"
// @Param until query string true "Cutoff instant (RFC 3339)"
// @Success 200 {object} resdto.DueCardsResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /users/{user_id}/due-cards [get]
func (h *DueCardsHandler) ListDue(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid user id", nil)
		return
	}

	raw := c.Query("until")
	if raw == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Missing until parameter", nil)
		return
	}
	until, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid until parameter", nil)
		return
	}
	until = until.UTC()

	cardIDs, err := h.q.ListDue(c.Request.Context(), userID, until)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list due cards", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDueCards(userID, until, cardIDs))
}
