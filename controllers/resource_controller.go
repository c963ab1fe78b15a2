package controllers

import (
	"hospitality/pkg/resp"
	"hospitality/services"

	"github.com/gin-gonic/gin"
)

// ResourceController serves the five CRUD routes of one document kind.
type ResourceController[T any] struct {
	svc *services.ResourceService[T]
}

func NewResourceController[T any](svc *services.ResourceService[T]) *ResourceController[T] {
	return &ResourceController[T]{svc: svc}
}

// GET /api/<name>
func (ctl *ResourceController[T]) List(c *gin.Context) {
	items, err := ctl.svc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /api/<name>/:id
func (ctl *ResourceController[T]) Get(c *gin.Context) {
	item, err := ctl.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// POST /api/<name>
func (ctl *ResourceController[T]) Create(c *gin.Context) {
	item := new(T)
	if err := bindJSON(c, item); err != nil {
		resp.Error(c, err)
		return
	}
	if err := ctl.svc.Create(c.Request.Context(), item); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /api/<name>/:id
// The body is merged onto the stored document, so partial payloads keep
// the fields they leave out.
func (ctl *ResourceController[T]) Update(c *gin.Context) {
	item, err := ctl.svc.Update(c.Request.Context(), c.Param("id"), func(item *T) error {
		return bindJSON(c, item)
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/<name>/:id
func (ctl *ResourceController[T]) Delete(c *gin.Context) {
	if err := ctl.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Message(c, ctl.svc.Resource.Label+" deleted successfully")
}

// Mount registers the routes on g. Reads are public when publicRead is
// set, creates when publicCreate is set; guard protects the rest.
func (ctl *ResourceController[T]) Mount(g *gin.RouterGroup, guard gin.HandlerFunc, publicRead, publicCreate bool) {
	read := []gin.HandlerFunc{}
	if !publicRead {
		read = append(read, guard)
	}
	create := []gin.HandlerFunc{}
	if !publicCreate {
		create = append(create, guard)
	}

	g.GET("", append(read, ctl.List)...)
	g.GET("/:id", append(read, ctl.Get)...)
	g.POST("", append(create, ctl.Create)...)
	g.PUT("/:id", guard, ctl.Update)
	g.DELETE("/:id", guard, ctl.Delete)
}
