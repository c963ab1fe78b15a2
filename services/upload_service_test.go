package services_test

import (
	"context"
	"errors"
	"testing"

	"hospitality/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1x1 transparent PNG.
const pngDataURI = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR42mNkYAAAAAYAAjCB0C8AAAAASUVORK5CYII="

type fakeHost struct {
	folder string
	err    error
}

func (h *fakeHost) Upload(_ context.Context, _ string, folder string) (*services.UploadResult, error) {
	h.folder = folder
	if h.err != nil {
		return nil, h.err
	}
	return &services.UploadResult{URL: "https://cdn.example/" + folder + "/x.png", PublicID: folder + "/x"}, nil
}

func TestUploadService(t *testing.T) {
	ctx := context.Background()

	t.Run("default folder", func(t *testing.T) {
		host := &fakeHost{}
		res, err := services.NewUploadService(host, "hospitality").Upload(ctx, pngDataURI, "")
		require.NoError(t, err)
		assert.Equal(t, "hospitality/uploads", host.folder)
		assert.Equal(t, "hospitality/uploads/x", res.PublicID)
	})

	t.Run("entity folder", func(t *testing.T) {
		host := &fakeHost{}
		_, err := services.NewUploadService(host, "hospitality").Upload(ctx, pngDataURI, "leaders")
		require.NoError(t, err)
		assert.Equal(t, "hospitality/leaders", host.folder)
	})

	invalid := []struct {
		name, image, entityType, msg string
	}{
		{"missing image", "", "menu", "No image provided"},
		{"bad type", pngDataURI, "avatars", "Invalid entity type"},
		{"not a data uri", "https://example.com/x.png", "menu", "Image must be a base64 data URI"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := services.NewUploadService(&fakeHost{}, "r").Upload(ctx, tc.image, tc.entityType)
			var verr *services.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.msg, verr.Message)
		})
	}

	t.Run("host failure is upstream", func(t *testing.T) {
		_, err := services.NewUploadService(&fakeHost{err: errors.New("boom")}, "r").Upload(ctx, pngDataURI, "menu")
		assert.ErrorIs(t, err, services.ErrUpstream)
	})

	t.Run("no host configured", func(t *testing.T) {
		_, err := services.NewUploadService(nil, "r").Upload(ctx, pngDataURI, "menu")
		assert.ErrorIs(t, err, services.ErrUpstream)
	})
}
