package audit

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

// Logger is the process-wide security audit log: an append-only file of
// newline-delimited JSON entries. Appends are serialized internally so each
// entry lands as a single whole line, never interleaved with another writer.
//
// The log is the system's forensic record. There is no update or delete.
type Logger struct {
	mu   sync.Mutex
	f    *os.File
	path string
}

// Entry is the durable per-line shape. Timestamp is RFC 3339 UTC.
type Entry struct {
	Timestamp string         `json:"timestamp"`
	Event     Kind           `json:"event"`
	Details   map[string]any `json:"details"`
}

// CorruptionError reports entries that could not be parsed during replay.
// Replay skips bad lines and keeps going; the surviving entries are still
// returned alongside this error.
type CorruptionError struct {
	Skipped   int
	FirstLine int
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("audit log: %d unparseable entries (first at line %d)", e.Skipped, e.FirstLine)
}

// Open opens (or creates) the audit log at path for appending.
func Open(path string) (*Logger, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open audit log %s: %w", path, err)
	}
	return &Logger{f: f, path: path}, nil
}

// Append writes one event to the log and flushes it to disk before returning.
// Safe for concurrent use; each call commits as one atomic line.
func (l *Logger) Append(ev Event) error {
	entry := Entry{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Event:     ev.Kind,
		Details:   ev.Details,
	}

	b, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal audit entry: %w", err)
	}
	b = append(b, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := l.f.Write(b); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	if err := l.f.Sync(); err != nil {
		return fmt.Errorf("sync audit log: %w", err)
	}
	return nil
}

// Record appends best-effort. A failed append must not take the calling
// operation down with it, but it is a loss of forensic record, so it is
// escalated to the process log as an alarm rather than swallowed.
func (l *Logger) Record(ev Event) {
	if err := l.Append(ev); err != nil {
		log.Printf("ALERT: audit append failed (%s): %v", ev.Kind, err)
	}
}

// Replay reads the full log back, oldest first. Blank lines are ignored.
// A line that fails to parse is skipped, and after the whole file has been
// read a *CorruptionError is returned together with the surviving entries,
// so one bad record never hides the rest of the history.
func (l *Logger) Replay() ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	content, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("read audit log %s: %w", l.path, err)
	}

	var entries []Entry
	corrupt := &CorruptionError{}
	for i, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			if corrupt.Skipped == 0 {
				corrupt.FirstLine = i + 1
			}
			corrupt.Skipped++
			continue
		}
		entries = append(entries, entry)
	}

	if corrupt.Skipped > 0 {
		return entries, corrupt
	}
	return entries, nil
}

// Close releases the underlying file handle. Appends after Close fail.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.f.Close()
}
