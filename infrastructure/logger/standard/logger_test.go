package standard

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"mdpreview-api/core/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardLogger_ImplementsLogger(t *testing.T) {
	var _ interfaces.Logger = NewStandardLogger(Options{})
}

func TestStandardLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, Options{Level: "info", Format: "json"})

	logger.Info("Document loaded", map[string]interface{}{
		"file":       "report.md",
		"characters": 42,
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Document loaded", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "report.md", entry["file"])
	assert.Equal(t, float64(42), entry["characters"])
}

func TestStandardLogger_Levels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true, wantWarn: true},
		{level: "info", wantInfo: true, wantWarn: true},
		{level: "WARN", wantWarn: true},
		{level: "error"},
		{level: "nonsense", wantInfo: true, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, Options{Level: tt.level})

			logger.Debug("debug-line", nil)
			logger.Info("info-line", nil)
			logger.Warn("warn-line", nil)
			logger.Error("error-line", map[string]interface{}{"error": "boom"})

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug-line"))
			assert.Equal(t, tt.wantInfo, strings.Contains(out, "info-line"))
			assert.Equal(t, tt.wantWarn, strings.Contains(out, "warn-line"))
			assert.Contains(t, out, "error-line")
			assert.Contains(t, out, "error=boom")
		})
	}
}

func TestStandardLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger := NewStandardLogger(Options{File: path, Format: "json"})

	logger.Warn("written to file", nil)

	require.FileExists(t, path)
}

func TestNewStandardLogger_Output(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStandardLogger(Options{Level: "warn", Output: &buf})

	logger.Info("hidden", nil)
	logger.Warn("shown", nil)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
