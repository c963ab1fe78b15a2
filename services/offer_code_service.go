package services

import (
	"context"

	"hospitality/entity"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

// OfferCodeService renders an offer's promo code as a QR image.
type OfferCodeService struct {
	offers *ResourceService[entity.Offer]
}

func NewOfferCodeService(offers *ResourceService[entity.Offer]) *OfferCodeService {
	return &OfferCodeService{offers: offers}
}

// QRCode returns a PNG encoding the offer code.
func (s *OfferCodeService) QRCode(ctx context.Context, offerID string) ([]byte, error) {
	offer, err := s.offers.Get(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.Code == "" {
		return nil, NotFound("Offer has no code")
	}
	return qrcode.Encode(offer.Code, qrcode.Medium, qrSize)
}
