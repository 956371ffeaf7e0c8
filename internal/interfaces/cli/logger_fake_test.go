package cli

import (
	"context"
	"sync"

	"github.com/hapkiduki/geoshapes/internal/application/port"
)

type entry struct {
	level string
	msg   string
	kv    []any
}

// recordingLogger is a port.Logger that keeps every entry in memory.
type recordingLogger struct {
	mu      *sync.Mutex
	entries *[]entry
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{mu: &sync.Mutex{}, entries: &[]entry{}}
}

func (l *recordingLogger) add(level, msg string, kv []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*l.entries = append(*l.entries, entry{level: level, msg: msg, kv: kv})
}

func (l *recordingLogger) Debug(msg string, kv ...any) { l.add("debug", msg, kv) }
func (l *recordingLogger) Info(msg string, kv ...any)  { l.add("info", msg, kv) }
func (l *recordingLogger) Warn(msg string, kv ...any)  { l.add("warn", msg, kv) }
func (l *recordingLogger) Error(msg string, kv ...any) { l.add("error", msg, kv) }

func (l *recordingLogger) With(kv ...any) port.Logger                  { return l }
func (l *recordingLogger) WithContext(ctx context.Context) port.Logger { return l }

func (l *recordingLogger) levels(level string) []entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []entry
	for _, e := range *l.entries {
		if e.level == level {
			out = append(out, e)
		}
	}
	return out
}
