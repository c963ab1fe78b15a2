package controllers

import (
	"hospitality/pkg/resp"
	"hospitality/services"

	"github.com/gin-gonic/gin"
)

type SetupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type SetupController struct {
	setup *services.SetupService
}

func NewSetupController(setup *services.SetupService) *SetupController {
	return &SetupController{setup: setup}
}

// GET /api/setup/admin-exists
func (ctl *SetupController) AdminExists(c *gin.Context) {
	exists, err := ctl.setup.AdminExists(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"adminExists": exists})
}

// POST /api/setup/setup
func (ctl *SetupController) Setup(c *gin.Context) {
	var req SetupRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, err)
		return
	}

	token, admin, err := ctl.setup.Setup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{
		"message": "Super admin created successfully",
		"token":   token,
		"admin":   admin,
	})
}
