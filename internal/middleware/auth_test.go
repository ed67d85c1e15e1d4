package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Santosh7017/NoteBook/internal/token"
)

func TestRequireAuth(t *testing.T) {
	codec := token.New("test-secret", 0)

	valid, err := codec.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantUserID string
	}{
		{
			name:       "valid token passes and injects user id",
			header:     valid,
			wantStatus: http.StatusOK,
			wantUserID: "user-42",
		},
		{
			name:       "missing token rejected",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token rejected",
			header:     "not-a-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "tampered token rejected",
			header:     valid + "x",
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var gotUserID string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, _ = UserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			mw := NewAuthMiddleware(codec)
			req := httptest.NewRequest(http.MethodPost, "/api/protected", nil)
			if test.header != "" {
				req.Header.Set(TokenHeader, test.header)
			}
			rec := httptest.NewRecorder()

			mw.RequireAuth(next).ServeHTTP(rec, req)

			if rec.Code != test.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, test.wantStatus)
			}
			if gotUserID != test.wantUserID {
				t.Errorf("user id = %q, want %q", gotUserID, test.wantUserID)
			}

			if test.wantStatus == http.StatusUnauthorized {
				if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
					t.Errorf("Content-Type = %q, want application/json", ct)
				}
				var body map[string]any
				if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
					t.Fatalf("rejection body %q is not JSON: %v", rec.Body.String(), err)
				}
				if body["error"] != "unauthorized" {
					t.Errorf("error = %v, want unauthorized", body["error"])
				}
			}
		})
	}
}
