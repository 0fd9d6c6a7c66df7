package logging

import "fmt"

// MockLogger records entries in memory so tests can assert on them.
// Loggers derived with WithField/WithError share the parent's entry sink.
type MockLogger struct {
	sink          *[]LogEntry
	pendingError  error
	pendingFields []Field
}

// LogEntry is one captured log call.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

// NewMockLogger returns an empty MockLogger.
func NewMockLogger() *MockLogger {
	return &MockLogger{sink: &[]LogEntry{}}
}

func (m *MockLogger) record(level, msg string, fields []Field) {
	if m.sink == nil {
		m.sink = &[]LogEntry{}
	}
	all := make([]Field, 0, len(m.pendingFields)+len(fields))
	all = append(all, m.pendingFields...)
	all = append(all, fields...)
	*m.sink = append(*m.sink, LogEntry{Level: level, Message: msg, Fields: all, Error: m.pendingError})
}

func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, fields) }
func (m *MockLogger) Info(msg string, fields ...Field)  { m.record("INFO", msg, fields) }
func (m *MockLogger) Warn(msg string, fields ...Field)  { m.record("WARN", msg, fields) }
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, fields) }

// Fatal records the entry without exiting.
func (m *MockLogger) Fatal(msg string, fields ...Field) { m.record("FATAL", msg, fields) }

// Fatalf records the formatted entry without exiting.
func (m *MockLogger) Fatalf(msg string, args ...interface{}) {
	m.record("FATAL", fmt.Sprintf(msg, args...), nil)
}

func (m *MockLogger) WithError(err error) Logger {
	m.ensureSink()
	return &MockLogger{sink: m.sink, pendingError: err, pendingFields: m.pendingFields}
}

func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return m.WithFields(Field{Key: key, Value: value})
}

func (m *MockLogger) WithFields(fields ...Field) Logger {
	m.ensureSink()
	all := make([]Field, 0, len(m.pendingFields)+len(fields))
	all = append(all, m.pendingFields...)
	all = append(all, fields...)
	return &MockLogger{sink: m.sink, pendingError: m.pendingError, pendingFields: all}
}

func (m *MockLogger) ensureSink() {
	if m.sink == nil {
		m.sink = &[]LogEntry{}
	}
}

// GetEntries returns every captured entry.
func (m *MockLogger) GetEntries() []LogEntry {
	if m.sink == nil {
		return nil
	}
	return *m.sink
}

// GetEntriesByLevel filters captured entries by level ("WARN", "INFO", ...).
func (m *MockLogger) GetEntriesByLevel(level string) []LogEntry {
	var entries []LogEntry
	for _, e := range m.GetEntries() {
		if e.Level == level {
			entries = append(entries, e)
		}
	}
	return entries
}

// HasEntry reports whether an entry with this level and message was captured.
func (m *MockLogger) HasEntry(level, message string) bool {
	for _, e := range m.GetEntries() {
		if e.Level == level && e.Message == message {
			return true
		}
	}
	return false
}

// Clear drops captured entries.
func (m *MockLogger) Clear() {
	if m.sink != nil {
		*m.sink = (*m.sink)[:0]
	}
}
