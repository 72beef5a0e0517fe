// Package logging provides the process-wide log sink.
package logging

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

// Sink is the shared logging facade. It carries exactly one handler so
// repeated construction never duplicates output lines.
type Sink struct {
	logger *slog.Logger
}

var (
	instance *Sink
	once     sync.Once
)

// NewSink returns the shared Sink. The handler is attached on the first call
// only, with a fixed INFO minimum level.
func NewSink() *Sink {
	once.Do(func() {
		instance = &Sink{
			logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			})),
		}
	})
	return instance
}

// newSinkTo builds an unshared sink writing to w. Used by tests.
func newSinkTo(w io.Writer) *Sink {
	return &Sink{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})),
	}
}

// Info records an informational event.
func (s *Sink) Info(msg string, args ...interface{}) {
	s.logger.Info(msg, args...)
}

// Warning records a warning event.
func (s *Sink) Warning(msg string, args ...interface{}) {
	s.logger.Warn(msg, args...)
}
