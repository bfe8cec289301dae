package club

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/svitclubs/club-management-backend/internal/apperror"
)

type Handler struct {
	Service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{Service: service}
}

// CreateClub godoc
// @Summary Register a new club
// @Tags clubs
// @Accept json
// @Produce json
// @Param club body CreateClubRequest true "Club details"
// @Success 201 {object} Club
// @Router /clubs [post]
func (h *Handler) CreateClub(c *gin.Context) {
	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.JSON(c, apperror.Validation(err.Error()))
		return
	}
	created, err := h.Service.Create(c.Request.Context(), CreateInput(req), c.GetString("user_id"), c.ClientIP())
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetClubs godoc
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Param search query string false "Search over name, description and category"
// @Param sortBy query string false "Sort key: name, members or createdAt"
// @Param order query string false "asc or desc"
// @Success 200 {array} Club
// @Router /clubs [get]
func (h *Handler) GetClubs(c *gin.Context) {
	clubs, err := h.Service.List(c.Query("search"), c.Query("sortBy"), c.Query("order"))
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, clubs)
}

// GetClub godoc
// @Summary Get a club by id
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} Club
// @Router /clubs/{id} [get]
func (h *Handler) GetClub(c *gin.Context) {
	club, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

// UpdateClub godoc
// @Summary Update club details
// @Tags clubs
// @Accept json
// @Produce json
// @Param id path string true "Club ID"
// @Param club body UpdateClubRequest true "Fields to change"
// @Success 200 {object} Club
// @Router /clubs/{id} [put]
func (h *Handler) UpdateClub(c *gin.Context) {
	var req UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.JSON(c, apperror.Validation(err.Error()))
		return
	}
	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), req, c.GetString("user_id"), c.ClientIP())
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteClub godoc
// @Summary Delete a club
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} map[string]string
// @Router /clubs/{id} [delete]
func (h *Handler) DeleteClub(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.ClientIP()); err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Club deleted successfully"})
}

// JoinClub godoc
// @Summary Join a club
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} Club
// @Router /clubs/{id}/join [post]
func (h *Handler) JoinClub(c *gin.Context) {
	club, err := h.Service.Join(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.ClientIP())
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}

// LeaveClub godoc
// @Summary Leave a club
// @Tags clubs
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {object} Club
// @Router /clubs/{id}/leave [post]
func (h *Handler) LeaveClub(c *gin.Context) {
	club, err := h.Service.Leave(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.ClientIP())
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, club)
}
