// SPDX-License-Identifier: MIT
package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	h := newTestServer(t)

	w := get(t, h, "/healthz")
	assert.Len(t, w.Header().Get("X-Trace-ID"), 36, "generated uuid")

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "trace-123", w.Header().Get("X-Trace-ID"))
}

func TestSecureHeaders(t *testing.T) {
	w := get(t, newTestServer(t), "/healthz")
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"))
}
