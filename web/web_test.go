package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticHandler(t *testing.T) {
	h := StaticHandler()

	tests := []struct {
		path        string
		contentType string
	}{
		{path: "/static/index.html", contentType: "text/html"},
		{path: "/static/app.js", contentType: "javascript"},
		{path: "/static/styles.css", contentType: "text/css"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), tt.contentType)
			assert.NotEmpty(t, rec.Body.String())
		})
	}

	t.Run("missing asset", func(t *testing.T) {
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/nope.txt", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRedirectToIndex(t *testing.T) {
	rec := httptest.NewRecorder()

	RedirectToIndex(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	assert.Equal(t, IndexPath, rec.Header().Get("Location"))
}
