package reports

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/svitclubs/club-management-backend/internal/apperror"
)

type Handler struct {
	Service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{Service: service}
}

// DownloadReport godoc
// @Summary Download a clubs, events or ideas report
// @Tags reports
// @Produce octet-stream
// @Param type path string true "clubs, events or ideas"
// @Param format query string false "csv (default), excel or pdf"
// @Param dateRange query string false "daily, weekly, monthly, yearly, custom or all"
// @Param startDate query string false "YYYY-MM-DD, required for custom range"
// @Param endDate query string false "YYYY-MM-DD, required for custom range"
// @Param status query string false "Filter events/ideas by status"
// @Param clubId query string false "Filter events/ideas by club"
// @Success 200 {file} binary
// @Router /reports/{type} [get]
func (h *Handler) DownloadReport(c *gin.Context) {
	req := ReportRequest{
		Type:      c.Param("type"),
		Format:    c.Query("format"),
		DateRange: c.Query("dateRange"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Status:    c.Query("status"),
		ClubID:    c.Query("clubId"),
	}

	doc, filename, mime, err := h.Service.Generate(c.Request.Context(), req, c.GetString("user_id"), c.ClientIP())
	if err != nil {
		apperror.JSON(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Length", strconv.Itoa(len(doc)))
	c.Data(200, mime, doc)
}
