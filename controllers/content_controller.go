package controllers

import (
	"hospitality/pkg/resp"
	"hospitality/services"

	"github.com/gin-gonic/gin"
)

type UpsertContentRequest struct {
	Section string `json:"section" binding:"required"`
	Key     string `json:"key" binding:"required"`
	Value   string `json:"value"`
}

type BulkContentRequest struct {
	Section string            `json:"section" binding:"required"`
	Data    map[string]string `json:"data" binding:"required"`
}

type ContentController struct {
	svc *services.ContentService
}

func NewContentController(svc *services.ContentService) *ContentController {
	return &ContentController{svc: svc}
}

// GET /api/content?section=
func (ctl *ContentController) List(c *gin.Context) {
	items, err := ctl.svc.List(c.Request.Context(), c.Query("section"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/content/section/:section
func (ctl *ContentController) Section(c *gin.Context) {
	m, err := ctl.svc.Section(c.Request.Context(), c.Param("section"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}

// POST /api/content
func (ctl *ContentController) Upsert(c *gin.Context) {
	var req UpsertContentRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, err)
		return
	}
	content, err := ctl.svc.Upsert(c.Request.Context(), req.Section, req.Key, req.Value)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, content)
}

// PUT /api/content/bulk
func (ctl *ContentController) Bulk(c *gin.Context) {
	var req BulkContentRequest
	if err := bindJSON(c, &req); err != nil {
		resp.Error(c, err)
		return
	}
	m, err := ctl.svc.Bulk(c.Request.Context(), req.Section, req.Data)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, m)
}
