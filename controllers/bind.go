package controllers

import (
	"hospitality/services"
	"hospitality/utils"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the body strictly into obj and runs its binding tags.
func bindJSON(c *gin.Context, obj any) error {
	utils.ConfigureBinding()
	if err := c.ShouldBindJSON(obj); err != nil {
		return services.NewValidationError(err)
	}
	return nil
}
