package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/models"
)

// ProposalHandler serves proposal endpoints.
type ProposalHandler struct {
	repo ProposalRepository
	log  *logrus.Logger
}

// NewProposalHandler creates a ProposalHandler with the given service and logger.
func NewProposalHandler(repo ProposalRepository, log *logrus.Logger) *ProposalHandler {
	return &ProposalHandler{repo: repo, log: log}
}

// Create handles POST /api/v1/proposals.
func (h *ProposalHandler) Create(c *gin.Context) {
	var req models.CreateProposalRequest
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

	proposal, err := h.repo.CreateProposal(c.Request.Context(), actor, req)
	if err != nil {
		h.log.WithError(err).Error("creating proposal")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "proposal.create", "agent_id": actor.ID, "proposal_id": proposal.ProposalID}).Info("audit")

	c.JSON(http.StatusCreated, proposal)
}
