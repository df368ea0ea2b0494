package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/coverdesk/coverdesk/internal/models"
)

// DocumentHandler serves document registry endpoints.
type DocumentHandler struct {
	repo DocumentRepository
	log  *logrus.Logger
}

// NewDocumentHandler creates a DocumentHandler with the given service and logger.
func NewDocumentHandler(repo DocumentRepository, log *logrus.Logger) *DocumentHandler {
	return &DocumentHandler{repo: repo, log: log}
}

// Upload handles POST /api/v1/documents.
func (h *DocumentHandler) Upload(c *gin.Context) {
	var req models.UploadDocumentRequest
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

	doc, err := h.repo.UploadDocument(c.Request.Context(), actor, req)
	if err != nil {
		h.log.WithError(err).Error("uploading document")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "document.upload", "agent_id": actor.ID, "document_id": doc.DocumentID}).Info("audit")

	c.JSON(http.StatusCreated, doc)
}

// Get handles GET /api/v1/documents/:id.
func (h *DocumentHandler) Get(c *gin.Context) {
	documentID := c.Param("id")
	if err := validatePathID(documentID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	doc, err := h.repo.GetDocument(c.Request.Context(), documentID)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "document not found")

			return
		}

		h.log.WithError(err).Error("getting document")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, doc)
}

// List handles GET /api/v1/documents.
func (h *DocumentHandler) List(c *gin.Context) {
	entityType := c.Query("entity_type")
	entityID := c.Query("entity_id")
	documentType := c.Query("document_type")

	docs, err := h.repo.ListDocuments(c.Request.Context(), entityType, entityID, documentType)
	if err != nil {
		h.log.WithError(err).Error("listing documents")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"documents": docs})
}

// CreateVersion handles POST /api/v1/documents/:id/versions.
func (h *DocumentHandler) CreateVersion(c *gin.Context) {
	documentID := c.Param("id")
	if err := validatePathID(documentID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.CreateVersionRequest
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

	doc, err := h.repo.CreateVersion(c.Request.Context(), actor, documentID, req)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "document not found")

			return
		}

		h.log.WithError(err).Error("creating document version")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{
		"action": "document.create_version", "agent_id": actor.ID,
		"document_id": documentID, "version": doc.Version,
	}).Info("audit")

	c.JSON(http.StatusOK, doc)
}

// ListVersions handles GET /api/v1/documents/:id/versions.
func (h *DocumentHandler) ListVersions(c *gin.Context) {
	documentID := c.Param("id")
	if err := validatePathID(documentID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	versions, err := h.repo.ListVersions(c.Request.Context(), documentID)
	if err != nil {
		h.log.WithError(err).Error("listing document versions")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"versions": versions})
}

// Delete handles DELETE /api/v1/documents/:id.
func (h *DocumentHandler) Delete(c *gin.Context) {
	documentID := c.Param("id")
	if err := validatePathID(documentID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	actor, ok := getActor(c)
	if !ok {
		return
	}

	err := h.repo.DeleteDocument(c.Request.Context(), actor, documentID)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "document not found")

			return
		}

		h.log.WithError(err).Error("deleting document")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	h.log.WithFields(logrus.Fields{"action": "document.delete", "agent_id": actor.ID, "document_id": documentID}).Info("audit")

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// LogAccess handles POST /api/v1/documents/:id/access.
func (h *DocumentHandler) LogAccess(c *gin.Context) {
	documentID := c.Param("id")
	if err := validatePathID(documentID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	var req models.LogAccessRequest
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

	entry, err := h.repo.LogAccess(c.Request.Context(), actor, documentID, req)
	if err != nil {
		if errors.Is(err, models.ErrDocumentNotFound) {
			respondError(c, http.StatusNotFound, ErrCodeNotFound, "document not found")

			return
		}

		h.log.WithError(err).Error("logging document access")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListAccessLogs handles GET /api/v1/documents/:id/access.
func (h *DocumentHandler) ListAccessLogs(c *gin.Context) {
	documentID := c.Param("id")
	if err := validatePathID(documentID); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	limit := parseInt(c.DefaultQuery("limit", "50"), 50)

	entries, err := h.repo.ListAccessLogs(c.Request.Context(), documentID, limit)
	if err != nil {
		h.log.WithError(err).Error("listing document access logs")
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")

		return
	}

	c.JSON(http.StatusOK, gin.H{"access_log": entries})
}
