// Copyright 2026 The httpsess Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package httpsess

import (
	"strings"
	"sync"
)

// recordingLogger captures log records for assertions.
type recordingLogger struct {
	mu      sync.Mutex
	records []logRecord
}

type logRecord struct {
	level string
	msg   string
	args  []any
}

func (l *recordingLogger) Debug(msg string, args ...any) { l.append("DEBUG", msg, args) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.append("INFO", msg, args) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.append("WARN", msg, args) }
func (l *recordingLogger) Error(msg string, args ...any) { l.append("ERROR", msg, args) }

func (l *recordingLogger) append(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, logRecord{level: level, msg: msg, args: args})
}

// has reports whether a record at the given level with a message
// containing msg was logged.
func (l *recordingLogger) has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, r := range l.records {
		if r.level == level && strings.Contains(r.msg, msg) {
			return true
		}
	}
	return false
}

// count returns the number of records at the given level.
func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, r := range l.records {
		if r.level == level {
			n++
		}
	}
	return n
}
