package middleware

import (
	"log"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware wraps HTTP handlers so a panicking request is answered
// with a 500 instead of tearing down the connection. The handler contract is
// one response per request, whatever the failure path.
func RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("❌ Panic in HTTP %s %s: %v\n%s", r.Method, r.URL.Path, rec, debug.Stack())
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
