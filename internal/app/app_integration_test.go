package app_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ferdiebergado/boring/internal/app"
	"github.com/ferdiebergado/boring/internal/config"
	"github.com/ferdiebergado/boring/internal/item"
	"github.com/ferdiebergado/boring/internal/markdown"
	"github.com/ferdiebergado/boring/internal/platform/llm"
	mdx "github.com/ferdiebergado/boring/internal/platform/markdown"
	"github.com/ferdiebergado/boring/internal/platform/router"
	"github.com/ferdiebergado/boring/internal/platform/validation"
)

func freePort(t *testing.T) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func setupApp(t *testing.T, generator llm.Generator) (baseURL string) {
	t.Helper()

	cfg := config.Default()
	cfg.Server.Port = freePort(t)
	cfg.Storage.DataDir = t.TempDir()
	cfg.Static.Dir = t.TempDir()
	if err := os.WriteFile(filepath.Join(cfg.Static.Dir, "index.html"), []byte("<main></main>"), 0o600); err != nil {
		t.Fatal(err)
	}

	provider := &app.Provider{
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
		Renderer:  mdx.NewGoldmarkRenderer(),
		Generator: generator,
	}

	api := app.New(cfg, provider, app.Middlewares(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- api.Start(ctx)
	}()

	t.Cleanup(func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("api.Start() = %v", err)
		}
		if err := api.Shutdown(); err != nil {
			t.Errorf("api.Shutdown() = %v", err)
		}
	})

	baseURL = fmt.Sprintf("http://127.0.0.1:%d", cfg.Server.Port)
	waitForServer(t, baseURL)
	return baseURL
}

func waitForServer(t *testing.T, baseURL string) {
	t.Helper()

	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		res, err := http.Get(baseURL + "/healthz")
		if err == nil {
			res.Body.Close()
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("server did not start in time")
}

func TestIntegration_Routes(t *testing.T) {
	baseURL := setupApp(t, nil)

	tests := []struct {
		name        string
		method      string
		path        string
		contentType string
		body        string
		wantStatus  int
		wantBody    string
	}{
		{"health", http.MethodGet, "/healthz", "", "", http.StatusOK, `{"status":"ok"}`},
		{"list items", http.MethodGet, "/api/items", "", "", http.StatusOK, `[]`},
		{"create needs json", http.MethodPost, "/api/items", "text/plain", `name=x`, http.StatusUnsupportedMediaType, ""},
		{"unknown api path", http.MethodGet, "/api/nothing", "", "", http.StatusNotFound, `{"error":"Not found."}`},
		{"chat is not mounted", http.MethodPost, "/api/chat", "application/json", `{"prompt":"hi"}`, http.StatusNotFound, `{"error":"Not found."}`},
		{"client route", http.MethodGet, "/items/42", "", "", http.StatusOK, `<main></main>`},
		{"landing page", http.MethodGet, "/", "", "", http.StatusOK, `<main></main>`},
		{"markdown needs json", http.MethodPost, "/api/markdown", "text/plain", `*a*`, http.StatusUnsupportedMediaType, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, baseURL+tt.path, strings.NewReader(tt.body))
			if err != nil {
				t.Fatal(err)
			}
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			res, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatal(err)
			}
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatus {
				t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantStatus)
			}

			if tt.wantBody == "" {
				return
			}
			data, err := io.ReadAll(res.Body)
			if err != nil {
				t.Fatal(err)
			}
			if got := strings.TrimSpace(string(data)); got != tt.wantBody {
				t.Errorf("body = %q, want: %q", got, tt.wantBody)
			}
		})
	}
}

func TestIntegration_Markdown(t *testing.T) {
	baseURL := setupApp(t, nil)

	res, err := http.Post(baseURL+"/api/markdown", "application/json", strings.NewReader(`{"markdown":"*a*"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
	}

	var got markdown.RenderResponse
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}

	const want = "<p><em>a</em></p>\n"
	if got.HTML != want {
		t.Errorf("got.HTML = %q, want: %q", got.HTML, want)
	}
}

func TestIntegration_ItemLifecycle(t *testing.T) {
	baseURL := setupApp(t, nil)

	res, err := http.Post(baseURL+"/api/items", "application/json", strings.NewReader(`{"name":"Widget"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d, want: %d", res.StatusCode, http.StatusCreated)
	}

	var created item.Item
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}

	res2, err := http.Get(baseURL + res.Header.Get("Location"))
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusOK {
		t.Errorf("get status = %d, want: %d", res2.StatusCode, http.StatusOK)
	}
}

func TestIntegration_Chat(t *testing.T) {
	gen := &llm.StubGenerator{GenerateFunc: func(_ context.Context, prompt string) (string, error) {
		if prompt == "fail" {
			return "", errors.New("vendor down")
		}
		return "pong", nil
	}}
	baseURL := setupApp(t, gen)

	res, err := http.Post(baseURL+"/api/chat", "application/json", strings.NewReader(`{"prompt":"ping"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	var reply struct{ Reply string }
	if err := json.NewDecoder(res.Body).Decode(&reply); err != nil {
		t.Fatal(err)
	}
	if res.StatusCode != http.StatusOK || reply.Reply != "pong" {
		t.Errorf("chat = %d %q, want: 200 %q", res.StatusCode, reply.Reply, "pong")
	}

	res2, err := http.Post(baseURL+"/api/chat", "application/json", strings.NewReader(`{"prompt":"fail"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer res2.Body.Close()
	if res2.StatusCode != http.StatusBadGateway {
		t.Errorf("chat failure status = %d, want: %d", res2.StatusCode, http.StatusBadGateway)
	}
}
