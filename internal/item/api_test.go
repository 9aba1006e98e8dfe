package item_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ghttp "github.com/ferdiebergado/gopherkit/http"

	"github.com/ferdiebergado/boring/internal/item"
	"github.com/ferdiebergado/boring/internal/pkg/web"
)

func TestItemLifecycle(t *testing.T) {
	t.Parallel()

	svc := item.NewService(item.NewRepository(t.TempDir()), nil)
	srv := httptest.NewServer(newAPI(svc))
	defer srv.Close()

	do := func(method, path, body string) *http.Response {
		t.Helper()

		req, err := http.NewRequest(method, srv.URL+path, strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Set(ghttp.HeaderContentType, ghttp.MimeJSON)

		res, err := srv.Client().Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", method, path, err)
		}
		t.Cleanup(func() { res.Body.Close() })
		return res
	}

	expect := func(res *http.Response, status int) {
		t.Helper()
		if res.StatusCode != status {
			t.Fatalf("%s %s: status = %d, want: %d", res.Request.Method, res.Request.URL.Path, res.StatusCode, status)
		}
	}

	res := do(http.MethodPost, "/api/items", `{"name":"Widget"}`)
	expect(res, http.StatusCreated)

	var created item.Item
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatal(err)
	}
	if created.ID == "" {
		t.Fatal("created.ID is empty")
	}
	if got, want := res.Header.Get(web.HeaderLocation), "/api/items/"+created.ID; got != want {
		t.Errorf("Location = %q, want: %q", got, want)
	}

	res = do(http.MethodGet, "/api/items/"+created.ID, "")
	expect(res, http.StatusOK)

	var fetched item.Item
	if err := json.NewDecoder(res.Body).Decode(&fetched); err != nil {
		t.Fatal(err)
	}
	if fetched.ID != created.ID || fetched.Name != "Widget" || !fetched.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("fetched = %+v, want: %+v", fetched, created)
	}

	expect(do(http.MethodPut, "/api/items/"+created.ID, `{"name":""}`), http.StatusBadRequest)

	res = do(http.MethodPut, "/api/items/"+created.ID, `{"description":"round"}`)
	expect(res, http.StatusOK)

	var updated item.Item
	if err := json.NewDecoder(res.Body).Decode(&updated); err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Widget" || updated.Description != "round" {
		t.Errorf("updated = %+v, want name Widget and description round", updated)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) {
		t.Errorf("updatedAt moved backwards: %v < %v", updated.UpdatedAt, created.UpdatedAt)
	}

	expect(do(http.MethodDelete, "/api/items/"+created.ID, ""), http.StatusOK)
	expect(do(http.MethodGet, "/api/items/"+created.ID, ""), http.StatusNotFound)
	expect(do(http.MethodDelete, "/api/items/"+created.ID, ""), http.StatusNotFound)

	res = do(http.MethodGet, "/api/items", "")
	expect(res, http.StatusOK)

	var all []item.Item
	if err := json.NewDecoder(res.Body).Decode(&all); err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("len(items) = %d, want: 0", len(all))
	}
}
