package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/svitclubs/club-management-backend/internal/apperror"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// ListMine returns the caller's in-app notifications, newest first.
// Optional ?limit= caps the page (default 50).
func (h *Handler) ListMine(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	items, err := h.service.ListInAppByUser(c.Request.Context(), c.GetString("user_id"), limit)
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperror.JSON(c, apperror.Validation("invalid notification id"))
		return
	}

	if err := h.service.MarkInAppAsRead(c.Request.Context(), uint(id), c.GetString("user_id")); err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
}
