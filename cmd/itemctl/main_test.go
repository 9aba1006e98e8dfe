package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ferdiebergado/boring/internal/item"
	"github.com/ferdiebergado/boring/internal/platform/chain"
	"github.com/ferdiebergado/boring/internal/platform/validation"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	svc := item.NewService(item.NewRepository(t.TempDir()), nil)
	api := chain.New(item.Routes(item.NewHandler(svc), validation.NewGoPlaygroundValidator(), 1<<20))
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	return srv
}

func run(t *testing.T, srv *httptest.Server, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd(strings.NewReader(stdin), &out)
	cmd.SetArgs(append([]string{"--server", srv.URL}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestItemctl_CRUD(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	out, err := run(t, srv, "", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if strings.TrimSpace(out) != "No items." {
		t.Errorf("list output = %q, want: %q", out, "No items.")
	}

	out, err = run(t, srv, "", "create", "--name", "Widget", "--description", "round")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var created item.Item
	if err := json.Unmarshal([]byte(out), &created); err != nil {
		t.Fatalf("decode create output %q: %v", out, err)
	}

	out, err = run(t, srv, "", "update", created.ID, "--name", "Gadget")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	var updated item.Item
	if err := json.Unmarshal([]byte(out), &updated); err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Gadget" || updated.Description != "round" {
		t.Errorf("updated = %+v, want name Gadget and description round", updated)
	}

	out, err = run(t, srv, "", "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, created.ID) || !strings.Contains(out, "Gadget") {
		t.Errorf("list output is missing the item:\n%s", out)
	}

	if _, err := run(t, srv, "", "get", created.ID); err != nil {
		t.Errorf("get: %v", err)
	}

	out, err = run(t, srv, "", "delete", created.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if want := "Deleted " + created.ID + ".\n"; out != want {
		t.Errorf("delete output = %q, want: %q", out, want)
	}

	if _, err := run(t, srv, "", "get", created.ID); err == nil {
		t.Error("get after delete = nil, want: error")
	}
}

func TestItemctl_Errors(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"create without name", []string{"create"}, `required flag(s) "name" not set`},
		{"create blank name", []string{"create", "--name", " "}, "name must not be blank"},
		{"update without fields", []string{"update", "1"}, "nothing to update"},
		{"update missing item", []string{"update", "1", "--name", "x"}, "Item not found."},
		{"get needs an id", []string{"get"}, "accepts 1 arg(s)"},
		{"import bad concurrency", []string{"import", "-", "--concurrency", "0"}, "--concurrency must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := run(t, srv, "", tt.args...)
			if err == nil {
				t.Fatalf("itemctl %v = nil, want an error containing %q", tt.args, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("itemctl %v = %q, want an error containing %q", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestItemctl_ImportExport(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	file := filepath.Join(t.TempDir(), "items.json")
	data := `[{"name":"a"},{"name":"b","description":"bee"},{"name":"c"}]`
	if err := os.WriteFile(file, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, srv, "", "import", file, "--concurrency", "2")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if want := "Imported 3 items.\n"; out != want {
		t.Errorf("import output = %q, want: %q", out, want)
	}

	out, err = run(t, srv, `[{"name":"d"}]`, "import", "-")
	if err != nil {
		t.Fatalf("import from stdin: %v", err)
	}
	if want := "Imported 1 items.\n"; out != want {
		t.Errorf("import output = %q, want: %q", out, want)
	}

	out, err = run(t, srv, "", "export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	var exported []item.Item
	if err := json.Unmarshal([]byte(out), &exported); err != nil {
		t.Fatalf("decode export %q: %v", out, err)
	}
	names := make(map[string]bool)
	for _, it := range exported {
		names[it.Name] = true
	}
	for _, n := range []string{"a", "b", "c", "d"} {
		if !names[n] {
			t.Errorf("export is missing %q: %v", n, names)
		}
	}
}

func TestItemctl_ImportStopsOnFailure(t *testing.T) {
	t.Parallel()

	srv := newServer(t)

	_, err := run(t, srv, `[{"name":"ok"},{"name":""}]`, "import", "-", "--concurrency", "1")
	if err == nil || !strings.Contains(err.Error(), "name is required") {
		t.Errorf("import = %v, want an error containing %q", err, "name is required")
	}
}
