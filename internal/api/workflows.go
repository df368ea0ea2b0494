package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/models"
)

// WorkflowHandler serves workflow catalog and execution endpoints.
type WorkflowHandler struct {
	repo WorkflowRepository
	log  *logrus.Logger
}

// NewWorkflowHandler creates a WorkflowHandler with the given service and logger.
func NewWorkflowHandler(repo WorkflowRepository, log *logrus.Logger) *WorkflowHandler {
	return &WorkflowHandler{repo: repo, log: log}
}

// List handles GET /api/v1/workflows.
func (h *WorkflowHandler) List(c *gin.Context) {
	workflows, err := h.repo.ListWorkflows(c.Request.Context())
	if err != nil {
		h.log.WithError(err).Error("listing workflows")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"workflows": workflows})
}

// Get handles GET /api/v1/workflows/:id.
func (h *WorkflowHandler) Get(c *gin.Context) {
	workflowID := c.Param("id")
	if err := validatePathID(workflowID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	workflow, err := h.repo.GetWorkflow(c.Request.Context(), workflowID)
	if err != nil {
		if errors.Is(err, models.ErrWorkflowNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "workflow not found")

			return
		}

		h.log.WithError(err).Error("getting workflow")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, workflow)
}

// Trigger handles POST /api/v1/workflows/:id/trigger.
func (h *WorkflowHandler) Trigger(c *gin.Context) {
	workflowID := c.Param("id")
	if err := validatePathID(workflowID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.TriggerRequest
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

	result, err := h.repo.Trigger(c.Request.Context(), actor, workflowID, req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrWorkflowNotFound), errors.Is(err, models.ErrWorkflowInactive):
			// Inactive workflows are reported like missing ones so callers
			// cannot probe which workflows exist but are disabled.
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "workflow not found")

			return
		case errors.Is(err, models.ErrTriggerNotMatched):
			respondError(c, http.StatusUnprocessableEntity, ErrCodeValidationError, err.Error())

			return
		}

		h.log.WithError(err).Error("triggering workflow")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{
		"action": "workflow.trigger", "agent_id": actor.ID,
		"workflow_id": workflowID, "execution_id": result.ExecutionID, "status": result.Status,
	}).Info("audit")

	c.JSON(http.StatusOK, result)
}

// ListExecutions handles GET /api/v1/workflows/:id/executions.
func (h *WorkflowHandler) ListExecutions(c *gin.Context) {
	workflowID := c.Param("id")
	if err := validatePathID(workflowID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	limit := parseInt(c.DefaultQuery("limit", "50"), 50)

	executions, err := h.repo.ListExecutions(c.Request.Context(), workflowID, limit)
	if err != nil {
		h.log.WithError(err).Error("listing workflow executions")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"executions": executions})
}

// GetExecution handles GET /api/v1/executions/:id.
func (h *WorkflowHandler) GetExecution(c *gin.Context) {
	executionID := c.Param("id")
	if err := validatePathID(executionID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	execution, err := h.repo.GetExecution(c.Request.Context(), executionID)
	if err != nil {
		if errors.Is(err, models.ErrExecutionNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "execution not found")

			return
		}

		h.log.WithError(err).Error("getting execution")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, execution)
}
