package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/models"
)

// QuoteHandler serves quote generation endpoints.
type QuoteHandler struct {
	repo QuoteRepository
	log  *logrus.Logger
}

// NewQuoteHandler creates a QuoteHandler with the given service and logger.
func NewQuoteHandler(repo QuoteRepository, log *logrus.Logger) *QuoteHandler {
	return &QuoteHandler{repo: repo, log: log}
}

// Generate handles POST /api/v1/quotes.
func (h *QuoteHandler) Generate(c *gin.Context) {
	var req models.GenerateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if err := req.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeValidationError, err.Error())

		return
	}

	actor, ok := getActor(c)
	if !ok {
		return
	}

	quote, err := h.repo.GenerateQuote(c.Request.Context(), actor, req)
	if err != nil {
		h.log.WithError(err).Error("generating quote")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "quote.generate", "agent_id": actor.ID, "quote_id": quote.QuoteID}).Info("audit")

	c.JSON(http.StatusCreated, quote)
}
