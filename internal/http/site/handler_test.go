package site

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func serve(router chi.Router, path string) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
	return resp
}

func TestIndexServesHTML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.html"), "<html><body>chat</body></html>")

	router := chi.NewRouter()
	Register(router, dir)

	resp := serve(router, "/")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected text/html, got %q", ct)
	}
	if !strings.Contains(resp.Body.String(), "chat") {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}
}

func TestIndexMissing(t *testing.T) {
	for name, dir := range map[string]string{
		"empty dir":   t.TempDir(),
		"missing dir": filepath.Join(t.TempDir(), "nope"),
		"unset":       "",
	} {
		t.Run(name, func(t *testing.T) {
			router := chi.NewRouter()
			Register(router, dir)

			resp := serve(router, "/")
			if resp.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", resp.Code)
			}
			var body IndexMissing
			if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
				t.Fatalf("json unmarshal: %v", err)
			}
			if body.Message != "Index not found" {
				t.Fatalf("unexpected message %q", body.Message)
			}
		})
	}
}

func TestStaticAssets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "js", "index.js"), "console.log('hi')")

	router := chi.NewRouter()
	Register(router, dir)

	resp := serve(router, "/static/js/index.js")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != "console.log('hi')" {
		t.Fatalf("unexpected body %q", resp.Body.String())
	}

	if resp := serve(router, "/static/missing.js"); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing asset, got %d", resp.Code)
	}
}

func TestStaticNotMountedWithoutDir(t *testing.T) {
	router := chi.NewRouter()
	Register(router, filepath.Join(t.TempDir(), "nope"))

	if resp := serve(router, "/static/app.js"); resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}
