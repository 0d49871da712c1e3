// GameMatch - Content-Based Game Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamematch

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/gamematch/internal/logging"
)

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rw *ResponseWriter)
		wantStatus int
		wantOK     bool
		wantCode   string
	}{
		{"success", func(rw *ResponseWriter) { rw.Success(map[string]int{"items": 3}) }, http.StatusOK, true, ""},
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("nope") }, http.StatusBadRequest, false, ErrCodeBadRequest},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("gone") }, http.StatusNotFound, false, ErrCodeNotFound},
		{"conflict", func(rw *ResponseWriter) { rw.Conflict("busy") }, http.StatusConflict, false, ErrCodeConflict},
		{"validation", func(rw *ResponseWriter) { rw.ValidationError("bad n", map[string]string{"field": "n"}) }, http.StatusBadRequest, false, ErrCodeValidationFailed},
		{"unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable(ErrCodeCatalogUnavailable, "empty") }, http.StatusServiceUnavailable, false, ErrCodeCatalogUnavailable},
		{"internal", func(rw *ResponseWriter) { rw.InternalError("boom") }, http.StatusInternalServerError, false, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req = req.WithContext(logging.ContextWithRequestID(req.Context(), "rid-1"))
			rec := httptest.NewRecorder()

			tt.write(NewResponseWriter(rec, req))

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
				t.Errorf("Content-Type = %q", ct)
			}

			var resp APIResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Success != tt.wantOK {
				t.Errorf("success = %v, want %v", resp.Success, tt.wantOK)
			}
			if resp.Meta == nil || resp.Meta.RequestID != "rid-1" {
				t.Errorf("meta = %+v", resp.Meta)
			}
			if tt.wantCode != "" {
				if resp.Error == nil || resp.Error.Code != tt.wantCode || resp.Error.RequestID != "rid-1" {
					t.Errorf("error = %+v", resp.Error)
				}
			} else if resp.Error != nil {
				t.Errorf("unexpected error body %+v", resp.Error)
			}
		})
	}
}
