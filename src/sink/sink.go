package sink

import (
	"context"
	"sync"

	logger "github.com/sirupsen/logrus"

	"webscaffold/src/model"
)

// Sink receives failure records. Implementations must tolerate concurrent
// calls; the responder invokes one sink per failed request with no locking
// of its own.
type Sink interface {
	Record(ctx context.Context, rec *model.FailureRecord) error
}

// MultiSink fans a record out to every child sink. A child failure is
// reported to the diagnostic stream and swallowed so that the remaining
// children still run and the HTTP response is never blocked.
type MultiSink struct {
	sinks []Sink
}

func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) Record(ctx context.Context, rec *model.FailureRecord) error {
	for _, s := range m.sinks {
		if err := s.Record(ctx, rec); err != nil {
			logger.WithError(err).WithField("sink", sinkName(s)).Error("failure sink write failed")
		}
	}
	return nil
}

func sinkName(s Sink) string {
	type named interface{ Name() string }
	if n, ok := s.(named); ok {
		return n.Name()
	}
	return "unknown"
}

// MemorySink captures records in memory. Test use only.
type MemorySink struct {
	mu      sync.Mutex
	records []model.FailureRecord
	err     error
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Fail makes every subsequent Record call return err.
func (m *MemorySink) Fail(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MemorySink) Record(_ context.Context, rec *model.FailureRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, *rec)
	return nil
}

func (m *MemorySink) Records() []model.FailureRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.FailureRecord, len(m.records))
	copy(out, m.records)
	return out
}

func (m *MemorySink) Name() string { return "memory" }
