package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/models"
)

// LeadHandler serves lead pipeline endpoints.
type LeadHandler struct {
	repo LeadRepository
	log  *logrus.Logger
}

// NewLeadHandler creates a LeadHandler with the given service and logger.
func NewLeadHandler(repo LeadRepository, log *logrus.Logger) *LeadHandler {
	return &LeadHandler{repo: repo, log: log}
}

// Create handles POST /api/v1/leads.
func (h *LeadHandler) Create(c *gin.Context) {
	var req models.CreateLeadRequest
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

	lead, err := h.repo.CreateLead(c.Request.Context(), actor, req)
	if err != nil {
		h.log.WithError(err).Error("creating lead")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "lead.create", "agent_id": actor.ID, "lead_id": lead.LeadID}).Info("audit")

	c.JSON(http.StatusCreated, lead)
}

// UpdateStage handles PUT /api/v1/leads/:id/stage.
func (h *LeadHandler) UpdateStage(c *gin.Context) {
	leadID := c.Param("id")
	if err := validatePathID(leadID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.UpdateLeadStageRequest
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

	lead, err := h.repo.UpdateLeadStage(c.Request.Context(), actor, leadID, req)
	if err != nil {
		if errors.Is(err, models.ErrLeadNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "lead not found")

			return
		}

		h.log.WithError(err).Error("updating lead stage")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{
		"action": "lead.update_stage", "agent_id": actor.ID,
		"lead_id": leadID, "stage": lead.Stage,
	}).Info("audit")

	c.JSON(http.StatusOK, lead)
}

// List handles GET /api/v1/leads — leads and pipeline summary for the
// authenticated agent.
func (h *LeadHandler) List(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	result, err := h.repo.GetAgentLeads(c.Request.Context(), actor.ID)
	if err != nil {
		h.log.WithError(err).Error("listing agent leads")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, result)
}

// Score handles GET /api/v1/leads/:id/score.
func (h *LeadHandler) Score(c *gin.Context) {
	leadID := c.Param("id")
	if err := validatePathID(leadID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	score, err := h.repo.ScoreLead(c.Request.Context(), leadID)
	if err != nil {
		if errors.Is(err, models.ErrLeadNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "lead not found")

			return
		}

		h.log.WithError(err).Error("scoring lead")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, score)
}
