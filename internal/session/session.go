// Package session carries the per-invocation state of a generation command:
// an ID for log correlation, the parse options and a busy flag that rejects
// overlapping operations instead of queueing them.
package session

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/hostkit/rental-tools/internal/logger"
	"github.com/hostkit/rental-tools/internal/records"
)

// ErrBusy is returned by Run while another operation of the same session is
// still in flight.
var ErrBusy = errors.New("an operation is already in progress")

// Session is one user-level invocation. The zero value is not usable; call New.
type Session struct {
	ID      string
	Options records.Options
	// Marker is the first field of the header line of booking exports.
	// Empty means the first line is the header.
	Marker  string
	Log     *logger.Logger
	Metrics *logger.Metrics

	busy atomic.Bool
}

// New creates a session with a fresh ID. A nil log falls back to the default
// logger.
func New(log *logger.Logger, opts records.Options, marker string) *Session {
	if log == nil {
		log = logger.Default()
	}
	id := uuid.NewString()
	return &Session{
		ID:      id,
		Options: opts,
		Marker:  marker,
		Log:     log.With(logger.Fields{"session_id": id}),
		Metrics: logger.DefaultMetrics(),
	}
}

// Run executes fn unless another Run of s is in progress, in which case it
// returns ErrBusy without calling fn.
func (s *Session) Run(name string, fn func() error) error {
	if !s.busy.CompareAndSwap(false, true) {
		s.Log.Warn("operation rejected", logger.Fields{"operation": name, "reason": "busy"})
		s.Metrics.IncrCounter("session.rejected")
		return ErrBusy
	}
	defer s.busy.Store(false)

	start := time.Now()
	s.Log.Debug("operation started", logger.Fields{"operation": name})

	err := fn()

	elapsed := time.Since(start)
	s.Metrics.RecordTiming(name, elapsed)
	if err != nil {
		s.Metrics.IncrCounter(name + ".failed")
		s.Log.Error("operation failed", logger.Fields{"operation": name, "duration": elapsed.String()}, err)
		return err
	}

	s.Metrics.IncrCounter(name + ".completed")
	s.Log.Info("operation finished", logger.Fields{"operation": name, "duration": elapsed.String()})
	return nil
}

// Busy reports whether an operation is in flight.
func (s *Session) Busy() bool {
	return s.busy.Load()
}

// BookingPolicy is the header policy for booking exports.
func (s *Session) BookingPolicy() records.HeaderPolicy {
	return records.HeaderPolicy{Marker: s.Marker}
}

// Load reads a file with the session's parse options.
func (s *Session) Load(path string, policy records.HeaderPolicy) (*records.Dataset, error) {
	ds, err := records.Load(path, s.Options, policy)
	if err != nil {
		return nil, err
	}

	s.Metrics.AddCounter("records.parsed", int64(len(ds.Rows)))
	s.Log.Debug("file loaded", logger.Fields{
		"source":      ds.Source,
		"header_line": ds.HeaderLine,
		"rows":        len(ds.Rows),
	})
	return ds, nil
}

// ReportSkips logs every skipped row at WARN level.
func (s *Session) ReportSkips(source string, skips []records.Skip) {
	for _, skip := range skips {
		f := logger.Fields{"source": source, "line": skip.Line}
		var fpe *records.FieldParseError
		if errors.As(skip.Err, &fpe) {
			f["field"] = fpe.Field
			f["reason"] = fpe.Reason
		} else if skip.Err != nil {
			f["reason"] = skip.Err.Error()
		}
		s.Log.Warn("row skipped", f)
	}
	s.Metrics.AddCounter("records.skipped", int64(len(skips)))
}
