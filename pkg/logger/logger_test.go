package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARNING "))
	assert.Equal(t, LevelError, ParseLevel("ERROR"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}

func TestLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelDebug, AddCaller: false})

	log.Info("score recorded", StudentID("2021001"), Subject("Math"), Points(95.5))

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "score recorded", entry.Message)
	assert.Equal(t, "2021001", entry.Fields["student_id"])
	assert.Equal(t, "Math", entry.Fields["subject"])
	assert.Equal(t, 95.5, entry.Fields["points"])
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelWarn, AddCaller: false})

	log.Debug("hidden")
	log.Info("hidden")
	assert.Zero(t, buf.Len())

	log.Warn("visible")
	assert.Positive(t, buf.Len())
}

func TestLogger_WithAddsBaseFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelDebug, AddCaller: false}).
		With(Component("csvstore"))

	log.Info("loaded", Count(2))

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "csvstore", entry.Fields["component"])
	assert.Equal(t, float64(2), entry.Fields["count"])
}
