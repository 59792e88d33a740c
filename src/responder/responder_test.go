package responder

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"webscaffold/src/apperr"
	"webscaffold/src/sink"
)

type envelope struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Stack   *string `json:"stack"`
}

func respond(t *testing.T, env Environment, s sink.Sink, err error) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	rs := New(Config{Environment: env, AppName: "webscaffold"}, s)
	req := httptest.NewRequest(http.MethodGet, "/api/demo/fail", nil)
	rr := httptest.NewRecorder()

	rs.Respond(rr, req, err)

	var body envelope
	if decErr := json.NewDecoder(rr.Body).Decode(&body); decErr != nil {
		t.Fatalf("failed to decode envelope: %v", decErr)
	}
	return rr, body
}

func TestRespond_DeclaredStatusAndMessage(t *testing.T) {
	rr, body := respond(t, EnvTest, sink.NewMemorySink(), apperr.New(http.StatusNotFound, "Not Found"))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rr.Code)
	}
	if body.Success {
		t.Fatal("expected success=false")
	}
	if body.Message != "Not Found" {
		t.Fatalf("expected verbatim message, got %q", body.Message)
	}
}

func TestRespond_ProductionDefaults(t *testing.T) {
	rr, body := respond(t, EnvProduction, sink.NewMemorySink(), &apperr.Error{})

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rr.Code)
	}
	if body.Message != apperr.GenericMessage {
		t.Fatalf("expected generic message, got %q", body.Message)
	}
	if body.Stack != nil {
		t.Fatal("expected no stack field in production")
	}
}

func TestRespond_ProductionRedactsMessage(t *testing.T) {
	_, body := respond(t, EnvProduction, sink.NewMemorySink(), apperr.New(http.StatusBadRequest, "pq: connection refused"))

	if body.Message != apperr.GenericMessage {
		t.Fatalf("expected internals to be redacted, got %q", body.Message)
	}
}

func TestRespond_StackOnlyInDevelopment(t *testing.T) {
	_, devBody := respond(t, EnvDevelopment, sink.NewMemorySink(), apperr.NotFound("missing"))
	if devBody.Stack == nil || *devBody.Stack == "" {
		t.Fatal("expected stack in development")
	}

	_, testBody := respond(t, EnvTest, sink.NewMemorySink(), apperr.NotFound("missing"))
	if testBody.Stack != nil {
		t.Fatal("expected no stack field in test environment")
	}
}

func TestRespond_SinkFailureDoesNotBlockResponse(t *testing.T) {
	failing := sink.NewMemorySink()
	failing.Fail(errors.New("disk full"))

	rr, body := respond(t, EnvProduction, failing, apperr.New(http.StatusBadGateway, "upstream down"))

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected response despite sink failure, got %d", rr.Code)
	}
	if body.Success {
		t.Fatal("expected success=false")
	}
}

func TestRespond_RecordContents(t *testing.T) {
	mem := sink.NewMemorySink()

	rs := New(Config{Environment: EnvProduction, AppName: "webscaffold"}, mem)
	req := httptest.NewRequest(http.MethodPost, "/api/orders?id=7", nil)
	req.Header.Set("User-Agent", "test-agent")
	rr := httptest.NewRecorder()

	rs.Respond(rr, req, apperr.New(http.StatusConflict, "duplicate order"))

	records := mem.Records()
	if len(records) != 1 {
		t.Fatalf("expected one record, got %d", len(records))
	}

	rec := records[0]
	if rec.Method != http.MethodPost || rec.URL != "/api/orders?id=7" {
		t.Fatalf("unexpected request identity: %s %s", rec.Method, rec.URL)
	}
	if rec.StatusCode != http.StatusConflict {
		t.Fatalf("expected recorded status 409, got %d", rec.StatusCode)
	}
	// The record keeps the real message even when the client response is
	// redacted.
	if rec.Message != "duplicate order" {
		t.Fatalf("expected original message in record, got %q", rec.Message)
	}
	if rec.Stack != "" {
		t.Fatal("expected no stack capture in production")
	}
	if !rec.Operational {
		t.Fatal("expected operational flag to be carried")
	}
	if rec.UserAgent != "test-agent" {
		t.Fatalf("expected user agent in record, got %q", rec.UserAgent)
	}
	if rec.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}
}
