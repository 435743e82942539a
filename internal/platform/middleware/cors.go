package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows any origin and any request header, so browser pages served
// from elsewhere can post to the chat endpoint.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Link", "Location", "X-Request-Id"},
		MaxAge:         300,
	})
}
