// Package respond renders router-level failures (unknown routes, wrong
// methods, panics) as RFC 9457 problem details, matching what huma produces
// for operation errors.
package respond

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	applog "github.com/janisto/chat-ping/internal/platform/logging"
)

const (
	problemContentType  = "application/problem+json"
	msgNotFound         = "resource not found"
	msgMethodNotAllowed = "method %s not allowed"
	msgInternalError    = "internal server error"
)

var probeMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// Problem writes a problem details body with the given status and detail.
func Problem(w http.ResponseWriter, r *http.Request, status int, detail string) {
	model := &huma.ErrorModel{
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
	}
	if r != nil {
		model.Instance = r.URL.Path
	}
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(model); err != nil && r != nil {
		applog.LogError(r.Context(), "failed to write problem response", err)
	}
}

// NotFoundHandler returns a 404 problem for unknown routes.
func NotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applog.LogInfo(r.Context(), "route not found", zap.String("path", r.URL.Path))
		Problem(w, r, http.StatusNotFound, msgNotFound)
	}
}

// MethodNotAllowedHandler returns a 405 problem and lists allowed methods in Allow.
func MethodNotAllowedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(r); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		applog.LogInfo(r.Context(), "method not allowed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
		)
		Problem(w, r, http.StatusMethodNotAllowed, fmt.Sprintf(msgMethodNotAllowed, r.Method))
	}
}

// Recoverer converts panics into 500 problem responses and logs the stack.
func Recoverer() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				applog.LogError(r.Context(), "panic recovered", fmt.Errorf("%v", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				Problem(w, r, http.StatusInternalServerError, msgInternalError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// allowedMethods probes chi's routing tree for methods matching the request path.
func allowedMethods(r *http.Request) []string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil || rctx.Routes == nil {
		return nil
	}
	routePath := rctx.RoutePath
	if routePath == "" {
		routePath = r.URL.Path
	}
	if routePath == "" {
		routePath = "/"
	}
	allowed := make([]string, 0, len(probeMethods))
	for _, method := range probeMethods {
		if rctx.Routes.Match(chi.NewRouteContext(), method, routePath) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}
