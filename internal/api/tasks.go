package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/models"
)

// TaskHandler serves agent task endpoints.
type TaskHandler struct {
	repo TaskRepository
	log  *logrus.Logger
}

// NewTaskHandler creates a TaskHandler with the given service and logger.
func NewTaskHandler(repo TaskRepository, log *logrus.Logger) *TaskHandler {
	return &TaskHandler{repo: repo, log: log}
}

// Create handles POST /api/v1/tasks.
func (h *TaskHandler) Create(c *gin.Context) {
	var req models.CreateTaskRequest
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

	task, err := h.repo.CreateTask(c.Request.Context(), actor, req)
	if err != nil {
		h.log.WithError(err).Error("creating task")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "task.create", "agent_id": actor.ID, "task_id": task.TaskID}).Info("audit")

	c.JSON(http.StatusCreated, task)
}

// List handles GET /api/v1/tasks — tasks with status and overdue counts for
// the authenticated agent.
func (h *TaskHandler) List(c *gin.Context) {
	actor, ok := getActor(c)
	if !ok {
		return
	}

	result, err := h.repo.GetAgentTasks(c.Request.Context(), actor.ID)
	if err != nil {
		h.log.WithError(err).Error("listing agent tasks")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, result)
}
