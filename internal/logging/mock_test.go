package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLogger_SharesEntriesWithDerivedLoggers(t *testing.T) {
	mock := NewMockLogger()

	mock.Info("start")
	mock.WithField(FieldLine, 4).Warn("row skipped")
	mock.WithError(errors.New("bad")).Error("failed")

	entries := mock.GetEntries()
	require.Len(t, entries, 3)
	assert.True(t, mock.HasEntry("WARN", "row skipped"))
	assert.Equal(t, []Field{{Key: FieldLine, Value: 4}}, entries[1].Fields)
	assert.EqualError(t, entries[2].Error, "bad")
	assert.Len(t, mock.GetEntriesByLevel("INFO"), 1)
}

func TestMockLogger_ZeroValueAndClear(t *testing.T) {
	var mock MockLogger
	mock.Fatalf("exit %d", 1)
	assert.True(t, mock.HasEntry("FATAL", "exit 1"))

	mock.Clear()
	assert.Empty(t, mock.GetEntries())
}
