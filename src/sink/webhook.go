package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"webscaffold/src/model"
)

// WebhookSink POSTs each record to an external alerting endpoint. Best
// effort: a short timeout keeps a slow receiver from stalling the response
// path, and failures surface only through the MultiSink diagnostic log.
type WebhookSink struct {
	url  string
	http *resty.Client
}

func NewWebhookSink(url string) *WebhookSink {
	httpClient := resty.New().
		SetTimeout(5 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &WebhookSink{url: url, http: httpClient}
}

func (w *WebhookSink) Record(ctx context.Context, rec *model.FailureRecord) error {
	resp, err := w.http.R().
		SetContext(ctx).
		SetBody(rec).
		Post(w.url)
	if err != nil {
		return fmt.Errorf("post failure webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("failure webhook returned %d", resp.StatusCode())
	}
	return nil
}

func (w *WebhookSink) Name() string { return "webhook" }
