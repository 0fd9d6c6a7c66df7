package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedAdapter(level logrus.Level) (Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return NewLogrusAdapterFromLogger(l), &buf
}

func TestNewLogrusAdapter(t *testing.T) {
	tests := []struct {
		name        string
		level       string
		format      string
		expectLevel logrus.Level
		expectJSON  bool
	}{
		{"debug text", "debug", "text", logrus.DebugLevel, false},
		{"info json", "info", "json", logrus.InfoLevel, true},
		{"upper case level", "WARN", "text", logrus.WarnLevel, false},
		{"invalid level defaults to info", "loud", "text", logrus.InfoLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogrusAdapterWithOutput(tt.level, tt.format, &buf)
			adapter, ok := logger.(*LogrusAdapter)
			require.True(t, ok)
			assert.Equal(t, tt.expectLevel, adapter.logger.Level)

			_, isJSON := adapter.logger.Formatter.(*logrus.JSONFormatter)
			assert.Equal(t, tt.expectJSON, isJSON)
		})
	}
}

func TestNewLogrusAdapterFromLogger_Nil(t *testing.T) {
	logger := NewLogrusAdapterFromLogger(nil)
	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.NotNil(t, adapter.logger)
}

func TestLogrusAdapter_LevelsAndFields(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.DebugLevel)

	logger.Debug("debug message", Field{Key: FieldLine, Value: 3})
	logger.Info("info message", Field{Key: FieldModel, Value: "bank"})
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "line=3")
	assert.Contains(t, out, "model=bank")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestLogrusAdapter_RespectsLevel(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.WarnLevel)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogrusAdapter_ChainedContext(t *testing.T) {
	logger, buf := newBufferedAdapter(logrus.InfoLevel)

	logger.
		WithField(FieldAccount, "main").
		WithFields(Field{Key: FieldCount, Value: 2}).
		WithError(errors.New("boom")).
		Error("conversion failed")

	out := buf.String()
	assert.Contains(t, out, "conversion failed")
	assert.Contains(t, out, "account=main")
	assert.Contains(t, out, "count=2")
	assert.Contains(t, out, "boom")
}

func TestConvertFields(t *testing.T) {
	fields := convertFields([]Field{{Key: "a", Value: 1}, {Key: "b", Value: "two"}})
	assert.Len(t, fields, 2)
	assert.Equal(t, 1, fields["a"])
	assert.Equal(t, "two", fields["b"])
	assert.Empty(t, convertFields(nil))
}

func TestLogrusAdapter_ImplementsInterface(t *testing.T) {
	var _ Logger = (*LogrusAdapter)(nil)
	var _ Logger = (*MockLogger)(nil)
}
