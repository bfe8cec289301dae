package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/svitclubs/club-management-backend/internal/apperror"
)

type Handler struct{ service Service }

func NewHandler(s Service) *Handler { return &Handler{s} }

// ===============================
// Registration
// ===============================

type RegisterRequest struct {
	Name       string `json:"name" binding:"required,min=3,max=50" example:"Ravi Kumar"`
	Email      string `json:"email" binding:"required,email" example:"ravi@svitclubs.com"`
	Password   string `json:"password" binding:"required,min=6" example:"secret123"`
	Department string `json:"department" binding:"required" example:"Computer Science and Engineering"`
	Year       string `json:"year" binding:"required" example:"3rd Year"`
	Bio        string `json:"bio" binding:"max=250"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.JSON(c, apperror.Validation(err.Error()))
		return
	}

	user, err := h.service.Register(RegisterInput(req))
	if err != nil {
		apperror.JSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful", "user": user})
}

// ===============================
// Login
// ===============================

type loginReq struct {
	Email    string `json:"email" binding:"required,email" example:"ravi@svitclubs.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.JSON(c, apperror.Validation(err.Error()))
		return
	}

	tokens, user, err := h.service.Login(LoginInput(req))
	if err != nil {
		apperror.JSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"accessToken":  tokens.AccessToken,
		"refreshToken": tokens.RefreshToken,
		"user":         user,
	})
}

// ===============================
// Refresh Token
// ===============================

type refreshReq struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

func (h *Handler) Refresh(c *gin.Context) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.JSON(c, apperror.Validation(err.Error()))
		return
	}
	token, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"accessToken": token})
}

// ===============================
// Logout
// ===============================

func (h *Handler) Logout(c *gin.Context) {
	userID := c.GetString("user_id")
	if err := h.service.Logout(userID); err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ===============================
// Profile (current session)
// ===============================

func (h *Handler) GetProfile(c *gin.Context) {
	user, err := h.service.CurrentSession(c.GetString("user_id"))
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type profileReq struct {
	Name         *string `json:"name" binding:"omitempty,min=3,max=50"`
	Department   *string `json:"department"`
	Year         *string `json:"year"`
	Bio          *string `json:"bio" binding:"omitempty,max=250"`
	ProfileImage *string `json:"profileImage"`
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		apperror.JSON(c, apperror.Validation(err.Error()))
		return
	}

	user, err := h.service.UpdateProfile(c.GetString("user_id"), ProfileInput(req))
	if err != nil {
		apperror.JSON(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
