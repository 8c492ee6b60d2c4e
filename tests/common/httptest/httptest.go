//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// executes a JSON request; a nil body sends no payload
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody io.Reader = bytes.NewReader(nil)
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// sends a raw body with the given content type
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type UploadFile struct {
	Name string
	Data []byte
}

// posts files as a multipart form under a single field
func PerformMultipart(t *testing.T, router *gin.Engine, path, field string, files []UploadFile) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, f := range files {
		part, err := mw.CreateFormFile(field, f.Name)
		require.NoError(t, err, "Failed to create multipart part")
		_, err = part.Write(f.Data)
		require.NoError(t, err, "Failed to write multipart part")
	}
	require.NoError(t, mw.Close())

	return PerformRawRequest(t, router, http.MethodPost, path, mw.FormDataContentType(), buf.Bytes())
}
