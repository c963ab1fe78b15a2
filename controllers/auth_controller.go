package controllers

import (
	"hospitality/pkg/resp"
	"hospitality/services"
	"hospitality/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, err)
		return
	}

	token, admin, err := a.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"token": token, "admin": admin})
}

// GET /api/auth/verify (token required)
func (a *AuthController) Verify(c *gin.Context) {
	admin, err := a.auth.Verify(c.Request.Context(), utils.CurrentClaims(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"valid": true, "admin": admin})
}
