package logging

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RequestLogger stores a request-scoped logger and correlation id in the
// request context. The id is the trace resource when a traceparent header and
// project id are available, otherwise the request id.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get(traceparentHeader)
			projectID := resolveProjectID()
			reqID := chimiddleware.GetReqID(r.Context())

			traceID := traceResource(header, projectID)
			if traceID == "" {
				traceID = reqID
			}
			logger := loggerWithTrace(Logger(), header, projectID, reqID)
			ctx := contextWithTraceID(r.Context(), traceID)
			ctx = contextWithLogger(ctx, logger)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AccessLogger writes one "request completed" entry per request.
func AccessLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			}
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					fields = append(fields, zap.String("route", pattern))
				}
			}
			if ua := r.UserAgent(); ua != "" {
				fields = append(fields, zap.String("userAgent", ua))
			}
			LoggerFromContext(r.Context()).Info("request completed", fields...)
		})
	}
}
