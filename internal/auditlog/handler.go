package auditlog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/svitclubs/club-management-backend/internal/apperror"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// GetAuditLogs lists audit entries with optional filters:
// ?user_id=&target_id=&action=&status=&from=&to=&page=&limit=
func (h *Handler) GetAuditLogs(c *gin.Context) {
	var filter AuditLogFilter

	if v := c.Query("user_id"); v != "" {
		filter.UserID = &v
	}
	if v := c.Query("target_id"); v != "" {
		filter.TargetID = &v
	}
	filter.Action = c.Query("action")
	filter.Status = c.Query("status")

	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.FromDate = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.ToDate = &t
		}
	}

	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))

	result, err := h.service.GetAuditLogs(c.Request.Context(), filter)
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetAuditLogByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperror.JSON(c, apperror.Validation("invalid audit log id"))
		return
	}

	entry, svcErr := h.service.GetAuditLogByID(c.Request.Context(), uint(id))
	if svcErr != nil {
		apperror.JSON(c, apperror.Wrap(svcErr, "audit log not found"))
		return
	}
	c.JSON(http.StatusOK, entry)
}
