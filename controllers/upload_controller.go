package controllers

import (
	"hospitality/pkg/resp"
	"hospitality/services"

	"github.com/gin-gonic/gin"
)

type UploadRequest struct {
	Image      string `json:"image"`
	EntityType string `json:"entityType"`
}

type UploadController struct {
	uploads *services.UploadService
}

func NewUploadController(uploads *services.UploadService) *UploadController {
	return &UploadController{uploads: uploads}
}

// POST /api/upload
func (ctl *UploadController) Upload(c *gin.Context) {
	var req UploadRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, err)
		return
	}
	res, err := ctl.uploads.Upload(c.Request.Context(), req.Image, req.EntityType)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, res)
}
