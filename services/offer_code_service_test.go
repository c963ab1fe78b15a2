package services_test

import (
	"bytes"
	"context"
	"image/png"
	"testing"

	"hospitality/entity"
	"hospitality/internal/testdb"
	"hospitality/repository"
	"hospitality/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOfferCodeService_QRCode(t *testing.T) {
	offers := services.NewResourceService(services.OfferResource(), repository.NewRepository[entity.Offer](testdb.Open(t)), nil)
	codes := services.NewOfferCodeService(offers)
	ctx := context.Background()

	withCode := &entity.Offer{Title: "Diwali", Description: "d", Code: "DIWALI20"}
	noCode := &entity.Offer{Title: "Walk-in", Description: "d"}
	require.NoError(t, offers.Create(ctx, withCode))
	require.NoError(t, offers.Create(ctx, noCode))

	img, err := codes.QRCode(ctx, withCode.ID)
	require.NoError(t, err)
	decoded, err := png.Decode(bytes.NewReader(img))
	require.NoError(t, err)
	assert.Equal(t, 256, decoded.Bounds().Dx())

	_, err = codes.QRCode(ctx, noCode.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, err = codes.QRCode(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
