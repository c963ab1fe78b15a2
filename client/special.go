package client

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/url"

	"hospitality/entity"
)

// ContentClient reads and writes the (section, key) text blocks.
type ContentClient struct{ c *Client }

func (c *Client) Content() *ContentClient { return &ContentClient{c: c} }

func (cc *ContentClient) GetAll(ctx context.Context, section string) ([]entity.Content, error) {
	v := url.Values{}
	setString(v, "section", section)
	path := "/content"
	if q := v.Encode(); q != "" {
		path += "?" + q
	}
	var items []entity.Content
	if err := cc.c.Request(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (cc *ContentClient) GetBySection(ctx context.Context, section string) (map[string]string, error) {
	out := map[string]string{}
	if err := cc.c.Request(ctx, http.MethodGet, "/content/section/"+url.PathEscape(section), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Update upserts one block.
func (cc *ContentClient) Update(ctx context.Context, section, key, value string) (*entity.Content, error) {
	body := map[string]string{"section": section, "key": key, "value": value}
	var out entity.Content
	if err := cc.c.Request(ctx, http.MethodPost, "/content", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkUpdate replaces a section and returns the stored map.
func (cc *ContentClient) BulkUpdate(ctx context.Context, section string, data map[string]string) (map[string]string, error) {
	body := map[string]any{"section": section, "data": data}
	out := map[string]string{}
	if err := cc.c.Request(ctx, http.MethodPut, "/content/bulk", body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type NewAdmin struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

type AdminClient struct{ c *Client }

func (c *Client) Admins() *AdminClient { return &AdminClient{c: c} }

func (ac *AdminClient) GetAll(ctx context.Context) ([]entity.Admin, error) {
	var admins []entity.Admin
	if err := ac.c.Request(ctx, http.MethodGet, "/admins", nil, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (ac *AdminClient) Create(ctx context.Context, a NewAdmin) (*entity.Admin, error) {
	var out entity.Admin
	if err := ac.c.Request(ctx, http.MethodPost, "/admin", a, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (ac *AdminClient) Delete(ctx context.Context, id string) error {
	return ac.c.Request(ctx, http.MethodDelete, "/admin/"+url.PathEscape(id), nil, nil)
}

type LoginResult struct {
	Token string       `json:"token"`
	Admin entity.Admin `json:"admin"`
}

type VerifyResult struct {
	Valid bool         `json:"valid"`
	Admin entity.Admin `json:"admin"`
}

type AuthClient struct{ c *Client }

func (c *Client) Auth() *AuthClient { return &AuthClient{c: c} }

// Login stores the issued token for later calls.
func (ac *AuthClient) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := ac.c.Request(ctx, http.MethodPost, "/auth/login", body, &out); err != nil {
		return nil, err
	}
	ac.c.Tokens.SetToken(out.Token)
	return &out, nil
}

func (ac *AuthClient) Verify(ctx context.Context) (*VerifyResult, error) {
	var out VerifyResult
	if err := ac.c.Request(ctx, http.MethodGet, "/auth/verify", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout only forgets the token; the server keeps no session.
func (ac *AuthClient) Logout() { ac.c.Tokens.Clear() }

type SetupResult struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	Admin   entity.Admin `json:"admin"`
}

type SetupClient struct{ c *Client }

func (c *Client) Setup() *SetupClient { return &SetupClient{c: c} }

func (sc *SetupClient) AdminExists(ctx context.Context) (bool, error) {
	var out struct {
		AdminExists bool `json:"adminExists"`
	}
	if err := sc.c.Request(ctx, http.MethodGet, "/setup/admin-exists", nil, &out); err != nil {
		return false, err
	}
	return out.AdminExists, nil
}

// Setup creates the first admin and signs in as it.
func (sc *SetupClient) Setup(ctx context.Context, name, email, password string) (*SetupResult, error) {
	body := map[string]string{"name": name, "email": email, "password": password}
	var out SetupResult
	if err := sc.c.Request(ctx, http.MethodPost, "/setup/setup", body, &out); err != nil {
		return nil, err
	}
	sc.c.Tokens.SetToken(out.Token)
	return &out, nil
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// ImageFile is a raw image picked by the user.
type ImageFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// DataURI encodes the file the way the upload endpoint expects it.
func (f *ImageFile) DataURI() string {
	ct := f.ContentType
	if ct == "" {
		ct = http.DetectContentType(f.Data)
	}
	return "data:" + ct + ";base64," + base64.StdEncoding.EncodeToString(f.Data)
}

type UploadClient struct{ c *Client }

func (c *Client) Uploads() *UploadClient { return &UploadClient{c: c} }

// Upload sends a base64 data URI filed under entityType.
func (uc *UploadClient) Upload(ctx context.Context, image, entityType string) (*UploadResult, error) {
	body := map[string]string{"image": image, "entityType": entityType}
	var out UploadResult
	if err := uc.c.Request(ctx, http.MethodPost, "/upload", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *UploadClient) UploadFile(ctx context.Context, f *ImageFile, entityType string) (*UploadResult, error) {
	return uc.Upload(ctx, f.DataURI(), entityType)
}
