package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobtrackr/jobtrackr/internal/dtos"
	"github.com/jobtrackr/jobtrackr/internal/export"
	"github.com/jobtrackr/jobtrackr/internal/middleware"
	"github.com/jobtrackr/jobtrackr/internal/services"
)

// ApplicationHandler serves the owner-scoped application routes. Dependency
// injection keeps it thin: all rules live in the service.
type ApplicationHandler struct {
	Apps *services.ApplicationService
	Auth *services.AuthService
}

func NewApplicationHandler(apps *services.ApplicationService, auth *services.AuthService) *ApplicationHandler {
	return &ApplicationHandler{Apps: apps, Auth: auth}
}

// respondError maps service failures onto the API's uniform error bodies.
func respondError(c *gin.Context, err error) {
	var ve services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "application not found"})
	case errors.Is(err, export.ErrNothingToExport):
		c.JSON(http.StatusBadRequest, gin.H{"error": "nothing to export"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong, please try again"})
	}
}

func currentUserID(c *gin.Context) (string, bool) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	}
	return id, ok
}

// List is the GET /applications endpoint.
func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var q dtos.ListApplicationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	apps, err := h.Apps.List(c.Request.Context(), userID, &q)
	if err != nil {
		respondError(c, err)
		return
	}
	user, err := h.Auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"applications": apps,
		"user":         gin.H{"id": user.ID, "email": user.Email},
	})
}

// Create is the POST /applications endpoint.
func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Apps.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": app})
}

// Update is the PUT /applications/:id endpoint. The payload is the full
// record; a target owned by someone else reads as not found.
func (h *ApplicationHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}
	app, err := h.Apps.Update(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app})
}

// Delete is the DELETE /applications/:id endpoint; idempotent.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.Apps.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Stats is the GET /applications/stats endpoint.
func (h *ApplicationHandler) Stats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	summary, err := h.Apps.Stats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Export is the GET /applications/export endpoint; ?format=csv|xlsx.
func (h *ApplicationHandler) Export(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	blob, err := h.Apps.Export(c.Request.Context(), userID, format)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename=`+format.Filename())
	c.Data(http.StatusOK, format.ContentType(), blob)
}
