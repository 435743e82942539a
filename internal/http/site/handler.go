// Package site serves the browser front end: the index page and static assets.
package site

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/janisto/chat-ping/internal/platform/logging"
)

const indexFile = "index.html"

// IndexMissing is returned by GET / when no index page is available.
type IndexMissing struct {
	Message string `json:"message"`
}

// Register mounts GET / and, when staticDir exists, GET /static/*.
func Register(router chi.Router, staticDir string) {
	if isDir(staticDir) {
		fs := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
		router.Get("/static/*", fs.ServeHTTP)
		applog.LogInfo(context.Background(), "serving static files", zap.String("dir", staticDir))
	}
	router.Get("/", indexHandler(staticDir))
}

func indexHandler(staticDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(staticDir, indexFile)
		if staticDir != "" && isFile(path) {
			http.ServeFile(w, r, path)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(IndexMissing{Message: "Index not found"})
	}
}

func isDir(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
