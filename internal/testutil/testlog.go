package testlog

import (
	"sync"

	"moving-estimate-service/internal/logx"
)

// Entry is a log entry
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Recorder records log entries
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// New returns a new logger
func New() *Recorder { return &Recorder{} }

// Logger returns a bound logger
func (r *Recorder) Logger() logx.Logger {
	return bound{r: r}
}

// Entries returns a copy of the log entries
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Recorder) add(level, msg string, fields []logx.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := append([]logx.Field(nil), fields...)
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: cp})
}

type bound struct {
	r    *Recorder
	base []logx.Field
}

func (b bound) Debug(msg string, fields ...logx.Field) { b.r.add("debug", msg, b.merge(fields)) }
func (b bound) Info(msg string, fields ...logx.Field)  { b.r.add("info", msg, b.merge(fields)) }
func (b bound) Warn(msg string, fields ...logx.Field)  { b.r.add("warn", msg, b.merge(fields)) }
func (b bound) Error(msg string, fields ...logx.Field) { b.r.add("error", msg, b.merge(fields)) }

func (b bound) With(fields ...logx.Field) logx.Logger {
	merged := append(append([]logx.Field(nil), b.base...), fields...)
	return bound{r: b.r, base: merged}
}

func (b bound) Sync() error { return nil }

func (b bound) merge(fields []logx.Field) []logx.Field {
	if len(b.base) == 0 {
		return fields
	}
	return append(append([]logx.Field(nil), b.base...), fields...)
}
