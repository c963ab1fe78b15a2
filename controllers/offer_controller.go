package controllers

import (
	"net/http"

	"hospitality/pkg/resp"
	"hospitality/services"

	"github.com/gin-gonic/gin"
)

type OfferCodeController struct {
	codes *services.OfferCodeService
}

func NewOfferCodeController(codes *services.OfferCodeService) *OfferCodeController {
	return &OfferCodeController{codes: codes}
}

// GET /api/offers/:id/qrcode
func (ctl *OfferCodeController) QRCode(c *gin.Context) {
	png, err := ctl.codes.QRCode(c.Request.Context(), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
