package sink

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"webscaffold/src/model"
)

// ConsoleSink writes every record to the diagnostic stream via logrus. It is
// attached unconditionally in every environment.
type ConsoleSink struct{}

func NewConsoleSink() *ConsoleSink {
	return &ConsoleSink{}
}

func (c *ConsoleSink) Record(_ context.Context, rec *model.FailureRecord) error {
	logger.WithFields(logger.Fields{
		"method":      rec.Method,
		"url":         rec.URL,
		"status_code": rec.StatusCode,
		"request_id":  rec.RequestID,
		"operational": rec.Operational,
		"remote_addr": rec.RemoteAddr,
	}).Error(rec.Message)
	return nil
}

func (c *ConsoleSink) Name() string { return "console" }
