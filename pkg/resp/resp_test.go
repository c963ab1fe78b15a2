package resp

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospitality/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestError_StatusByKind(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"validation", services.Invalid("name is required"), http.StatusBadRequest, `{"error":"name is required"}`},
		{"not found", services.NotFound("Booking not found"), http.StatusNotFound, `{"error":"Booking not found"}`},
		{"unauthorized", services.Unauthorized("Invalid credentials"), http.StatusUnauthorized, `{"error":"Invalid credentials"}`},
		{"forbidden", services.Forbidden("nope"), http.StatusForbidden, `{"error":"nope"}`},
		{"conflict", services.Conflict("taken"), http.StatusConflict, `{"error":"taken"}`},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError, `{"error":"disk on fire"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			Error(c, tt.err)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestServerError_HidesCauseInRelease(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	Error(c, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Something went wrong!"}`, w.Body.String())
}
