package web_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ghttp "github.com/ferdiebergado/gopherkit/http"

	"github.com/ferdiebergado/boring/internal/pkg/web"
	"github.com/google/go-cmp/cmp"
)

func TestFail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		msg    string
		fields map[string]string
		want   web.ErrorResponse
	}{
		{"client error with fields", http.StatusBadRequest, "Invalid input.", map[string]string{"name": "name is required"},
			web.ErrorResponse{Error: "Invalid input.", Fields: map[string]string{"name": "name is required"}}},
		{"not found", http.StatusNotFound, "Item not found.", nil, web.ErrorResponse{Error: "Item not found."}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			web.Fail(rec, tt.status, errors.New("reason"), tt.msg, tt.fields)

			if rec.Code != tt.status {
				t.Errorf("rec.Code = %d, want: %d", rec.Code, tt.status)
			}

			if got := rec.Header().Get(ghttp.HeaderContentType); !strings.HasPrefix(got, ghttp.MimeJSON) {
				t.Errorf("rec.Header().Get(%q) = %q, want: %q", ghttp.HeaderContentType, got, ghttp.MimeJSON)
			}

			var got web.ErrorResponse
			if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
				t.Fatalf("decode error response: %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("error response mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRespondInternalServerError_HidesReason(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	web.RespondInternalServerError(rec, errors.New("disk on fire"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusInternalServerError)
	}

	if body := rec.Body.String(); strings.Contains(body, "disk on fire") {
		t.Errorf("rec.Body.String() = %q, must not leak the reason", body)
	}
}

func TestOK(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	web.OK(rec, http.StatusCreated, []string{"a", "b"})

	if rec.Code != http.StatusCreated {
		t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusCreated)
	}

	var got []string
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b"}, got); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
}
