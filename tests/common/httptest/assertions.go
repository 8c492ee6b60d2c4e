//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"sdi-showcase/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
)

// AssertSuccessResponse decodes the body into target when the status matches and target is set.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, target any) {
	t.Helper()

	if !assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String()) {
		return
	}
	if target == nil || wantStatus < 200 || wantStatus >= 300 {
		return
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), target), "decode body: %s", w.Body.String())
}

// AssertErrorResponse checks the status and that the error message contains wantMsg.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMsg string) {
	t.Helper()

	assert.Equal(t, wantStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	var body httperr.Response
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "decode error body: %s", w.Body.String()) {
		return
	}
	if wantMsg != "" {
		assert.Contains(t, body.Error.Message, wantMsg)
	}
}
