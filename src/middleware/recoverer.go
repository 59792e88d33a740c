package middleware

import (
	"fmt"
	"net/http"

	"webscaffold/src/apperr"
	"webscaffold/src/responder"
)

// Recoverer turns a panic anywhere below it into a 500 handled by the
// responder, so even unexpected faults produce the standard error envelope.
func Recoverer(rs *responder.Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rv := recover(); rv != nil {
					if rv == http.ErrAbortHandler {
						panic(rv)
					}
					rs.Respond(w, r, apperr.Internal(fmt.Errorf("panic: %v", rv)))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
