package admin

import (
	"errors"
	"net/http"

	"courtside/internal/services"
	"courtside/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges admin credentials for an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	token, admin, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", utils.ErrInvalidCredentials)
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Logged in", gin.H{
		"token": token,
		"admin": admin,
	})
}

// Me echoes the identity carried by the current token.
func (h *AuthHandler) Me(c *gin.Context) {
	utils.SuccessResponse(c, "Session active", gin.H{
		"admin_id": c.MustGet("admin_id"),
		"email":    c.GetString("admin_email"),
		"name":     c.GetString("admin_name"),
	})
}
