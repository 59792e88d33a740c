package model

import "time"

// FailureRecord represents a single handled request failure. It is built at
// the moment the failure is observed, handed to the configured sinks and
// never mutated afterwards.
type FailureRecord struct {
	ID uint `gorm:"primaryKey" json:"-"`

	Timestamp time.Time `gorm:"index" json:"timestamp"`

	// Originating request
	Method    string `gorm:"size:10" json:"method"`
	URL       string `gorm:"type:text" json:"url"`
	RequestID string `gorm:"size:64;index" json:"request_id,omitempty"`

	// Failure information
	StatusCode  int    `gorm:"index" json:"status_code"`
	Message     string `gorm:"type:text" json:"message"`
	Stack       string `gorm:"type:text" json:"stack,omitempty"`
	Operational bool   `json:"operational"`

	// Client context, best effort
	UserAgent  string `gorm:"type:text" json:"user_agent,omitempty"`
	RemoteAddr string `gorm:"size:64" json:"remote_addr,omitempty"`
}
