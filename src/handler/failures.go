package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	logger "github.com/sirupsen/logrus"

	"webscaffold/src/apperr"
	"webscaffold/src/model"
	"webscaffold/src/responder"
)

type failureLister interface {
	FindLatest(ctx context.Context, limit int) ([]model.FailureRecord, error)
}

// ListFailuresHandler returns the most recently persisted failure records,
// newest first. Supports ?limit=N.
func ListFailuresHandler(repo failureLister, rs *responder.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
			parsed, err := strconv.Atoi(limitParam)
			if err != nil || parsed <= 0 {
				rs.Respond(w, r, apperr.BadRequest("invalid limit"))
				return
			}
			limit = parsed
		}

		records, err := repo.FindLatest(r.Context(), limit)
		if err != nil {
			rs.Respond(w, r, apperr.Wrap(err, http.StatusInternalServerError, "failed to list failures"))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(records); err != nil {
			logger.WithError(err).Error("failed to encode failures response")
		}
	}
}
