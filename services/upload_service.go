package services

import (
	"context"
	"errors"
	"path"
	"slices"

	"hospitality/utils"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadEntityTypes are the folders an image may be filed under.
var UploadEntityTypes = []string{"menu", "gallery", "leaders", "uploads"}

const defaultEntityType = "uploads"

// maxImageBytes bounds the decoded size of one upload.
const maxImageBytes = 10 << 20

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// ImageHost stores image bytes off-site and returns where they live.
type ImageHost interface {
	Upload(ctx context.Context, dataURI, folder string) (*UploadResult, error)
}

type UploadService struct {
	host       ImageHost
	rootFolder string
}

func NewUploadService(host ImageHost, rootFolder string) *UploadService {
	return &UploadService{host: host, rootFolder: rootFolder}
}

// Upload forwards a base64 data URI to the image host under
// <root>/<entityType>.
func (s *UploadService) Upload(ctx context.Context, image, entityType string) (*UploadResult, error) {
	if image == "" {
		return nil, Invalid("No image provided")
	}
	if entityType == "" {
		entityType = defaultEntityType
	}
	if !slices.Contains(UploadEntityTypes, entityType) {
		return nil, Invalid("Invalid entity type")
	}
	_, size, err := utils.ParseDataURI(image)
	if err != nil {
		return nil, Invalid("Image must be a base64 data URI")
	}
	if size > maxImageBytes {
		return nil, Invalid("Image is too large")
	}
	if s.host == nil {
		return nil, Upstream(errors.New("image host is not configured"))
	}

	res, err := s.host.Upload(ctx, image, path.Join(s.rootFolder, entityType))
	if err != nil {
		return nil, Upstream(err)
	}
	return res, nil
}

// CloudinaryHost uploads through the Cloudinary upload API.
type CloudinaryHost struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryHost(cloudinaryURL string) (*CloudinaryHost, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, err
	}
	return &CloudinaryHost{cld: cld}, nil
}

func (h *CloudinaryHost) Upload(ctx context.Context, dataURI, folder string) (*UploadResult, error) {
	res, err := h.cld.Upload.Upload(ctx, dataURI, uploader.UploadParams{
		Folder:         folder,
		UseFilename:    api.Bool(false),
		UniqueFilename: api.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if res.Error.Message != "" {
		return nil, errors.New(res.Error.Message)
	}
	return &UploadResult{URL: res.SecureURL, PublicID: res.PublicID}, nil
}
