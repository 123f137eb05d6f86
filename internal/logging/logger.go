// Package logging provides the append-only activity log file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Kind tags a log line with the event it records.
type Kind string

const (
	KindStart    Kind = "START"
	KindActivity Kind = "ACTIVITY"
	KindError    Kind = "ERROR"
	KindStop     Kind = "STOP"
	KindConfig   Kind = "CONFIG"
)

// Event is one entry of the activity log.
type Event struct {
	Kind    Kind
	Message string
}

// ActivityLogger appends timestamped event lines to a log file. Logging
// is best effort: open or write failures are reported on the diagnostic
// writer and otherwise swallowed, so a broken log file can never abort
// activity simulation.
type ActivityLogger struct {
	mu   sync.Mutex
	path string
	file *os.File
	diag io.Writer
	now  func() time.Time
}

// New returns a logger that will append to the given path, creating the
// file and its parent directories on first use.
func New(path string) *ActivityLogger {
	return &ActivityLogger{
		path: path,
		diag: os.Stderr,
		now:  time.Now,
	}
}

// SetDiagnostics redirects failure reports away from stderr.
func (l *ActivityLogger) SetDiagnostics(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.diag = w
}

// Record appends one line for the event. It never returns an error.
func (l *ActivityLogger) Record(e Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		if err := l.openLocked(); err != nil {
			fmt.Fprintf(l.diag, "eternal-green: cannot open log file %s: %v\n", l.path, err)
			return
		}
	}

	line := fmt.Sprintf("[%s] [%s] %s\n", l.now().Format("2006-01-02 15:04:05"), e.Kind, e.Message)
	if _, err := l.file.WriteString(line); err != nil {
		fmt.Fprintf(l.diag, "eternal-green: cannot write log file %s: %v\n", l.path, err)
	}
}

func (l *ActivityLogger) openLocked() error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		return err
	}
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	l.file = f
	return nil
}

// Start records a loop start event.
func (l *ActivityLogger) Start(message string) {
	l.Record(Event{Kind: KindStart, Message: message})
}

// Activity records a successful simulation event.
func (l *ActivityLogger) Activity(message string) {
	l.Record(Event{Kind: KindActivity, Message: message})
}

// Error records a failed simulation event.
func (l *ActivityLogger) Error(message string) {
	l.Record(Event{Kind: KindError, Message: message})
}

// Stop records a loop stop event.
func (l *ActivityLogger) Stop(message string) {
	l.Record(Event{Kind: KindStop, Message: message})
}

// ConfigChange records a configuration update.
func (l *ActivityLogger) ConfigChange(field string, oldValue, newValue any) {
	l.Record(Event{
		Kind:    KindConfig,
		Message: fmt.Sprintf("configuration updated: %s %v -> %v", field, oldValue, newValue),
	})
}

// Close closes the log file if it was opened.
func (l *ActivityLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
