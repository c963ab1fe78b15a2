package utils

import (
	"encoding/base64"
	"errors"
	"strings"
)

var ErrInvalidDataURI = errors.New("invalid image format")

// ParseDataURI checks that uri is a base64 encoded image and returns its
// content type and decoded size.
func ParseDataURI(uri string) (contentType string, size int, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", 0, ErrInvalidDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", 0, ErrInvalidDataURI
	}
	contentType, ok = strings.CutSuffix(meta, ";base64")
	if !ok || !strings.HasPrefix(contentType, "image/") {
		return "", 0, ErrInvalidDataURI
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil || len(data) == 0 {
		return "", 0, ErrInvalidDataURI
	}
	return contentType, len(data), nil
}
