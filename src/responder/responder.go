package responder

import (
	"encoding/json"
	"net/http"
	"runtime/debug"
	"time"

	logger "github.com/sirupsen/logrus"

	"webscaffold/src/apperr"
	"webscaffold/src/model"
	"webscaffold/src/requestid"
	"webscaffold/src/sink"
)

// Responder is the terminal failure handler for the request pipeline. It
// derives status and message from the failure, fans a FailureRecord out to
// the configured sinks and writes the JSON error envelope. It never panics
// and has no escalation path of its own: sink failures are reported to the
// diagnostic stream and the response is sent regardless.
type Responder struct {
	cfg  Config
	sink sink.Sink
}

// errorEnvelope is the wire shape of every error response.
type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

func New(cfg Config, s sink.Sink) *Responder {
	return &Responder{cfg: cfg, sink: s}
}

// Respond handles err for the request r: record, sinks, envelope. The
// response status equals the failure's declared status when valid, 500
// otherwise.
func (rs *Responder) Respond(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.StatusOf(err)
	message := apperr.MessageOf(err)

	rec := &model.FailureRecord{
		Timestamp:   time.Now().UTC(),
		Method:      r.Method,
		URL:         r.URL.String(),
		RequestID:   requestid.FromContext(r.Context()),
		StatusCode:  status,
		Message:     message,
		Operational: apperr.IsOperational(err),
		UserAgent:   r.UserAgent(),
		RemoteAddr:  r.RemoteAddr,
	}
	if rs.cfg.Environment != EnvProduction {
		rec.Stack = string(debug.Stack())
	}

	if rs.sink != nil {
		if sinkErr := rs.sink.Record(r.Context(), rec); sinkErr != nil {
			logger.WithError(sinkErr).Error("failure sink write failed")
		}
	}

	body := errorEnvelope{Success: false, Message: message}
	if rs.cfg.Environment == EnvProduction {
		// Never leak internals to production clients.
		body.Message = apperr.GenericMessage
	}
	if rs.cfg.Environment == EnvDevelopment {
		body.Stack = rec.Stack
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(body); encErr != nil {
		logger.WithError(encErr).Error("failed to encode error response")
	}
}
