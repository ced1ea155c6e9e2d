package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/rate-service/internal/domain/model"
)

type recordingQuoteLogService struct {
	mu      sync.Mutex
	entries []*model.QuoteLog
}

func (s *recordingQuoteLogService) CreateQuoteLog(_ context.Context, entry *model.QuoteLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return nil
}

func (s *recordingQuoteLogService) CreateQuoteLogs(_ context.Context, entries []*model.QuoteLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entries...)
	return nil
}

func (s *recordingQuoteLogService) QueryQuoteLogs(context.Context, model.QuoteLogQueryOptions) ([]*model.QuoteLog, error) {
	return nil, nil
}

func (s *recordingQuoteLogService) CountQuoteLogs(context.Context, model.QuoteLogQueryOptions) (int64, error) {
	return 0, nil
}

func (s *recordingQuoteLogService) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// TestAsyncQuoteRecorder_WritesEntries tests the worker pool write path.
func TestAsyncQuoteRecorder_WritesEntries(t *testing.T) {
	sink := &recordingQuoteLogService{}
	recorder := NewAsyncQuoteRecorder(sink, AsyncRecorderConfig{
		BufferSize:   16,
		NumWorkers:   2,
		WriteTimeout: time.Second,
	})
	require.NotNil(t, recorder)

	for i := 0; i < 5; i++ {
		recorder.Record(context.Background(), model.QuoteLog{OptionID: "ups-ground"})
	}
	recorder.Stop()

	assert.Equal(t, 5, sink.count())

	enqueued, dropped, written, errs := recorder.Stats()
	assert.EqualValues(t, 5, enqueued)
	assert.EqualValues(t, 0, dropped)
	assert.EqualValues(t, 5, written)
	assert.EqualValues(t, 0, errs)
}

// TestAsyncQuoteRecorder_NilService tests the nil guard.
func TestAsyncQuoteRecorder_NilService(t *testing.T) {
	assert.Nil(t, NewAsyncQuoteRecorder(nil, DefaultAsyncRecorderConfig()))
}

// TestAsyncQuoteRecorder_DropsWhenFull tests overflow behavior with no
// workers draining the buffer.
func TestAsyncQuoteRecorder_DropsWhenFull(t *testing.T) {
	sink := &recordingQuoteLogService{}
	recorder := NewAsyncQuoteRecorder(sink, AsyncRecorderConfig{
		BufferSize:   1,
		NumWorkers:   0,
		WriteTimeout: time.Second,
	})
	require.NotNil(t, recorder)

	recorder.Record(context.Background(), model.QuoteLog{})
	recorder.Record(context.Background(), model.QuoteLog{})

	enqueued, dropped, _, _ := recorder.Stats()
	assert.EqualValues(t, 1, enqueued)
	assert.EqualValues(t, 1, dropped)
}
