package controllers

import (
	"hospitality/pkg/resp"
	"hospitality/services"
	"hospitality/utils"

	"github.com/gin-gonic/gin"
)

type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin superadmin"`
}

// AdminController is mounted behind the superadmin role.
type AdminController struct {
	admins *services.AdminService
}

func NewAdminController(admins *services.AdminService) *AdminController {
	return &AdminController{admins: admins}
}

// GET /api/admins
func (ctl *AdminController) List(c *gin.Context) {
	admins, err := ctl.admins.List(c.Request.Context())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, admins)
}

// POST /api/admin
func (ctl *AdminController) Create(c *gin.Context) {
	var req CreateAdminRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, err)
		return
	}
	admin, err := ctl.admins.Create(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, admin)
}

// DELETE /api/admin/:id
func (ctl *AdminController) Delete(c *gin.Context) {
	if err := ctl.admins.Delete(c.Request.Context(), utils.CurrentAdminID(c), c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, "Admin deleted successfully")
}
