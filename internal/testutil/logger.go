// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/dtroode/bankcards-server/internal/logger"
)

// MakeNoopLogger returns a logger that discards everything it is given.
func MakeNoopLogger() *logger.Logger {
	return logger.NewWithWriter(io.Discard, int(slog.LevelError), "text")
}

// LogRecord is one decoded JSON log line.
type LogRecord map[string]any

// Level returns the record level, e.g. "WARN".
func (r LogRecord) Level() string {
	s, _ := r[slog.LevelKey].(string)
	return s
}

// Message returns the record message.
func (r LogRecord) Message() string {
	s, _ := r[slog.MessageKey].(string)
	return s
}

// String returns the attribute key rendered as a string, or "" when absent.
func (r LogRecord) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// LogRecorder captures everything written by its logger at debug level and
// above. It is safe for concurrent use by parallel handlers.
type LogRecorder struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

// NewLogRecorder returns a recorder and the JSON logger writing into it.
func NewLogRecorder() (*LogRecorder, *logger.Logger) {
	rec := &LogRecorder{}
	return rec, logger.NewWithWriter(rec, int(slog.LevelDebug), "json")
}

func (r *LogRecorder) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.buf.Write(p)
}

// Records decodes every line written so far. A line that is not JSON fails t.
func (r *LogRecorder) Records(t testing.TB) []LogRecord {
	t.Helper()

	r.mu.Lock()
	data := append([]byte(nil), r.buf.Bytes()...)
	r.mu.Unlock()

	var out []LogRecord
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		var rec LogRecord
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			t.Fatalf("log line %q is not json: %v", sc.Text(), err)
		}
		out = append(out, rec)
	}
	return out
}

// Find returns the first record with msg, if any.
func (r *LogRecorder) Find(t testing.TB, msg string) (LogRecord, bool) {
	t.Helper()

	for _, rec := range r.Records(t) {
		if rec.Message() == msg {
			return rec, true
		}
	}
	return nil, false
}
