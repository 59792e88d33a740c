package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"webscaffold/src/model"
)

// FileSink appends records to a JSON-lines file, one object per line. The
// file is opened per call with O_APPEND; line-level atomicity of concurrent
// appends is left to the OS, which holds for payloads this small.
type FileSink struct {
	path string
}

func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

func (f *FileSink) Record(_ context.Context, rec *model.FailureRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal failure record: %w", err)
	}

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open failure log %s: %w", f.path, err)
	}
	defer file.Close()

	if _, err := file.Write(append(payload, '\n')); err != nil {
		return fmt.Errorf("append failure log %s: %w", f.path, err)
	}
	return nil
}

func (f *FileSink) Name() string { return "file" }
