package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/rate-service/internal/domain/model"
)

// AsyncRecorderConfig holds configuration for the async quote recorder.
type AsyncRecorderConfig struct {
	// BufferSize is the size of the entry channel buffer.
	BufferSize int
	// NumWorkers is the number of worker goroutines writing entries.
	NumWorkers int
	// WriteTimeout is the timeout for writing one entry to the database.
	WriteTimeout time.Duration
}

// DefaultAsyncRecorderConfig returns sensible defaults for the recorder.
func DefaultAsyncRecorderConfig() AsyncRecorderConfig {
	return AsyncRecorderConfig{
		BufferSize:   1000,
		NumWorkers:   4,
		WriteTimeout: 5 * time.Second,
	}
}

// AsyncQuoteRecorder persists quote audit records through a buffered
// worker pool so the rating path never blocks on MongoDB. When the
// buffer is full, entries are dropped.
type AsyncQuoteRecorder struct {
	quoteLogs    QuoteLogService
	entryCh      chan *model.QuoteLog
	wg           sync.WaitGroup
	stopCh       chan struct{}
	writeTimeout time.Duration

	enqueued int64
	dropped  int64
	written  int64
	errors   int64
}

// NewAsyncQuoteRecorder creates a recorder with the given configuration.
// Returns nil when no quote log service is configured.
func NewAsyncQuoteRecorder(quoteLogs QuoteLogService, cfg AsyncRecorderConfig) *AsyncQuoteRecorder {
	if quoteLogs == nil {
		return nil
	}

	r := &AsyncQuoteRecorder{
		quoteLogs:    quoteLogs,
		entryCh:      make(chan *model.QuoteLog, cfg.BufferSize),
		stopCh:       make(chan struct{}),
		writeTimeout: cfg.WriteTimeout,
	}

	for i := 0; i < cfg.NumWorkers; i++ {
		r.wg.Add(1)
		go r.worker()
	}

	return r
}

// Record implements QuoteRecorder. The caller's context is not used
// for the write; persistence outlives the request.
func (r *AsyncQuoteRecorder) Record(_ context.Context, entry model.QuoteLog) {
	select {
	case r.entryCh <- &entry:
		atomic.AddInt64(&r.enqueued, 1)
	default:
		atomic.AddInt64(&r.dropped, 1)
	}
}

func (r *AsyncQuoteRecorder) worker() {
	defer r.wg.Done()

	for {
		select {
		case entry, ok := <-r.entryCh:
			if !ok {
				return
			}
			r.writeEntry(entry)
		case <-r.stopCh:
			// Drain remaining entries before stopping
			for {
				select {
				case entry := <-r.entryCh:
					r.writeEntry(entry)
				default:
					return
				}
			}
		}
	}
}

func (r *AsyncQuoteRecorder) writeEntry(entry *model.QuoteLog) {
	ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
	defer cancel()

	if err := r.quoteLogs.CreateQuoteLog(ctx, entry); err != nil {
		atomic.AddInt64(&r.errors, 1)
		log.Warn().Err(err).Msg("Failed to write quote log entry")
	} else {
		atomic.AddInt64(&r.written, 1)
	}
}

// Stop gracefully shuts down the recorder, flushing pending entries.
func (r *AsyncQuoteRecorder) Stop() {
	close(r.stopCh)
	r.wg.Wait()
	close(r.entryCh)
}

// Stats returns current recorder statistics.
func (r *AsyncQuoteRecorder) Stats() (enqueued, dropped, written, errors int64) {
	return atomic.LoadInt64(&r.enqueued),
		atomic.LoadInt64(&r.dropped),
		atomic.LoadInt64(&r.written),
		atomic.LoadInt64(&r.errors)
}
