package client_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospitality/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequest_HeadersAndBodies(t *testing.T) {
	var gotAuth, gotType, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"ok":true}`)
	}))
	defer srv.Close()

	c := client.New(srv.URL + "/api/")
	ctx := context.Background()

	var out struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, c.Request(ctx, http.MethodPost, "/x", map[string]int{"a": 1}, &out))
	assert.True(t, out.OK)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "application/json", gotType)
	assert.JSONEq(t, `{"a":1}`, gotBody)

	c.Tokens.SetToken("tok")
	require.NoError(t, c.Request(ctx, http.MethodPost, "/x", `{"raw": true}`, nil))
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, `{"raw": true}`, gotBody)

	require.NoError(t, c.Request(ctx, http.MethodPost, "/x", []byte("plain"), nil, client.WithHeader("Content-Type", "text/plain")))
	assert.Equal(t, "text/plain", gotType)
	assert.Equal(t, "plain", gotBody)
}

func TestRequest_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/json":
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":"Booking not found"}`)
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = io.WriteString(w, "<html>bad gateway</html>")
		}
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	ctx := context.Background()

	err := c.Request(ctx, http.MethodGet, "/json", nil, nil)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Booking not found", apiErr.Message)

	err = c.Request(ctx, http.MethodGet, "/html", nil, nil)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "HTTP error! status: 502", apiErr.Error())
}

func TestFilters(t *testing.T) {
	assert.Equal(t, "", client.NoFilter{}.Values().Encode())
	assert.Equal(t, "category=mains&search=dal", client.MenuFilter{Category: "mains", Search: "dal"}.Values().Encode())
	assert.Equal(t, "", client.ActiveFilter{}.Values().Encode())
	assert.Equal(t, "active=false", client.ActiveFilter{Active: client.Bool(false)}.Values().Encode())
	assert.Equal(t, "active=true&current=true", client.OfferFilter{Active: client.Bool(true), Current: true}.Values().Encode())
}

func TestImageFile_DataURI(t *testing.T) {
	f := &client.ImageFile{Data: []byte("\x89PNG\r\n\x1a\n0000")}
	assert.Equal(t, "data:image/png;base64,iVBORw0KGgowMDAw", f.DataURI())

	f = &client.ImageFile{ContentType: "image/webp", Data: []byte("x")}
	assert.Equal(t, "data:image/webp;base64,eA==", f.DataURI())
}
