package idea

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

// CreateIdea godoc
// @Summary Propose a new idea
// @Tags ideas
// @Accept json
// @Produce json
// @Param idea body CreateIdeaRequest true "Idea details"
// @Success 201 {object} Idea
// @Router /ideas [post]
func (h *Handler) CreateIdea(c *gin.Context) {
	var req CreateIdeaRequest
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

// GetIdeas godoc
// @Summary List ideas
// @Tags ideas
// @Produce json
// @Param search query string false "Search over title, description and creator"
// @Param status query string false "proposed, in-progress, approved or rejected"
// @Param sortBy query string false "Sort key: votes, title or createdAt"
// @Param order query string false "asc or desc"
// @Success 200 {array} Idea
// @Router /ideas [get]
func (h *Handler) GetIdeas(c *gin.Context) {
	ideas, err := h.Service.List(c.Query("search"), c.Query("status"), c.Query("sortBy"), c.Query("order"))
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, ideas)
}

// GetTopIdeas godoc
// @Summary List ideas by vote count, highest first
// @Tags ideas
// @Produce json
// @Success 200 {array} Idea
// @Router /ideas/top [get]
func (h *Handler) GetTopIdeas(c *gin.Context) {
	ideas, err := h.Service.Top()
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, ideas)
}

// GetIdea godoc
// @Summary Get an idea by id
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID"
// @Success 200 {object} Idea
// @Router /ideas/{id} [get]
func (h *Handler) GetIdea(c *gin.Context) {
	i, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, i)
}

// GetClubIdeas godoc
// @Summary List a club's ideas
// @Tags ideas
// @Produce json
// @Param id path string true "Club ID"
// @Success 200 {array} Idea
// @Router /clubs/{id}/ideas [get]
func (h *Handler) GetClubIdeas(c *gin.Context) {
	ideas, err := h.Service.ListByClub(c.Param("id"))
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, ideas)
}

// UpdateIdea godoc
// @Summary Update idea details
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path string true "Idea ID"
// @Param idea body UpdateIdeaRequest true "Fields to change"
// @Success 200 {object} Idea
// @Router /ideas/{id} [put]
func (h *Handler) UpdateIdea(c *gin.Context) {
	var req UpdateIdeaRequest
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

// DeleteIdea godoc
// @Summary Delete an idea
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID"
// @Success 200 {object} map[string]string
// @Router /ideas/{id} [delete]
func (h *Handler) DeleteIdea(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.ClientIP()); err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Idea deleted successfully"})
}

// VoteIdea godoc
// @Summary Vote for an idea
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID"
// @Success 200 {object} Idea
// @Router /ideas/{id}/vote [post]
func (h *Handler) VoteIdea(c *gin.Context) {
	i, err := h.Service.Vote(c.Request.Context(), c.Param("id"), c.GetString("user_id"), c.ClientIP())
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, i)
}

// SetIdeaStatus godoc
// @Summary Change an idea's status
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path string true "Idea ID"
// @Param status body SetStatusRequest true "New status"
// @Success 200 {object} Idea
// @Router /ideas/{id}/status [patch]
func (h *Handler) SetIdeaStatus(c *gin.Context) {
	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.JSON(c, apperror.Validation(err.Error()))
		return
	}
	i, err := h.Service.SetStatus(c.Request.Context(), c.Param("id"), req.Status, c.GetString("user_id"), c.ClientIP())
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, i)
}
