package handler

import (
	"net/http"
	"strconv"

	"webscaffold/src/apperr"
	"webscaffold/src/responder"
)

// FailHandler produces a handled failure on demand so the error pipeline can
// be exercised end to end. Query parameters: status (int), message (string).
func FailHandler(rs *responder.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := 0
		if statusParam := r.URL.Query().Get("status"); statusParam != "" {
			parsed, err := strconv.Atoi(statusParam)
			if err != nil {
				rs.Respond(w, r, apperr.BadRequest("invalid status"))
				return
			}
			status = parsed
		}

		rs.Respond(w, r, apperr.New(status, r.URL.Query().Get("message")))
	}
}

// PanicHandler panics on purpose; the recoverer middleware is expected to
// turn it into a standard 500 envelope.
func PanicHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		panic("demo panic")
	}
}
