package assistant_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ghttp "github.com/ferdiebergado/gopherkit/http"

	"github.com/ferdiebergado/boring/internal/assistant"
	"github.com/ferdiebergado/boring/internal/pkg/web"
	"github.com/ferdiebergado/boring/internal/platform/chain"
	"github.com/ferdiebergado/boring/internal/platform/llm"
	"github.com/ferdiebergado/boring/internal/platform/validation"
	"github.com/google/go-cmp/cmp"
)

func TestHandler_Chat(t *testing.T) {
	t.Parallel()

	echo := &llm.StubGenerator{GenerateFunc: func(_ context.Context, prompt string) (string, error) {
		return "you said: " + prompt, nil
	}}

	tests := []struct {
		name       string
		body       string
		generator  llm.Generator
		wantStatus int
		wantBody   any
	}{
		{
			name:       "reply",
			body:       `{"prompt":"  hello "}`,
			generator:  echo,
			wantStatus: http.StatusOK,
			wantBody:   &assistant.ChatResponse{Reply: "you said: hello"},
		},
		{
			name:       "blank prompt",
			body:       `{"prompt":"  "}`,
			generator:  echo,
			wantStatus: http.StatusBadRequest,
			wantBody: &web.ErrorResponse{
				Error:  "prompt must not be blank",
				Fields: map[string]string{"prompt": "prompt must not be blank"},
			},
		},
		{
			name:       "missing prompt",
			body:       `{}`,
			generator:  echo,
			wantStatus: http.StatusBadRequest,
			wantBody: &web.ErrorResponse{
				Error:  "prompt is required",
				Fields: map[string]string{"prompt": "prompt is required"},
			},
		},
		{
			name: "vendor failure",
			body: `{"prompt":"hello"}`,
			generator: &llm.StubGenerator{GenerateFunc: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("quota exceeded")
			}},
			wantStatus: http.StatusBadGateway,
			wantBody:   &web.ErrorResponse{Error: "The assistant is unavailable right now."},
		},
		{
			name: "vendor deadline",
			body: `{"prompt":"hello"}`,
			generator: &llm.StubGenerator{GenerateFunc: func(_ context.Context, _ string) (string, error) {
				return "", context.DeadlineExceeded
			}},
			wantStatus: http.StatusBadGateway,
			wantBody:   &web.ErrorResponse{Error: "The assistant is unavailable right now."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := assistant.NewHandler(tt.generator)
			api := chain.New(assistant.Routes(h, validation.NewGoPlaygroundValidator(), 1<<20))

			req := httptest.NewRequest(http.MethodPost, assistant.Path, strings.NewReader(tt.body))
			req.Header.Set(ghttp.HeaderContentType, ghttp.MimeJSON)
			rec := httptest.NewRecorder()

			api.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("rec.Code = %d, want: %d", rec.Code, tt.wantStatus)
			}

			switch want := tt.wantBody.(type) {
			case *assistant.ChatResponse:
				var got assistant.ChatResponse
				if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(*want, got); diff != "" {
					t.Errorf("response mismatch (-want +got):\n%s", diff)
				}
			case *web.ErrorResponse:
				var got web.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(*want, got); diff != "" {
					t.Errorf("error response mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestHandler_ChatClientGone(t *testing.T) {
	t.Parallel()

	gen := &llm.StubGenerator{GenerateFunc: func(ctx context.Context, _ string) (string, error) {
		return "", ctx.Err()
	}}
	api := chain.New(assistant.Routes(assistant.NewHandler(gen), validation.NewGoPlaygroundValidator(), 1<<20))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequestWithContext(ctx, http.MethodPost, assistant.Path, strings.NewReader(`{"prompt":"hi"}`))
	rec := httptest.NewRecorder()
	api.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestTimeout {
		t.Errorf("rec.Code = %d, want: %d", rec.Code, http.StatusRequestTimeout)
	}
}
