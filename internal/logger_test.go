package internal

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_DevelopmentUsesText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "development", "debug")

	logger.Debug("catalog loaded", "variant", "standard")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "variant=standard")
}

func TestNewLogger_ProductionUsesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, "production", "info")

	logger.Info("server started", "port", 8080)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "server started", entry["msg"])
	assert.Equal(t, float64(8080), entry["port"])
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		warnSeen  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"warn", false, true},
		{"error", false, false},
		{"bogus", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, "development", tt.level)

			logger.Debug("debug line")
			logger.Warn("warn line")

			assert.Equal(t, tt.debugSeen, strings.Contains(buf.String(), "debug line"))
			assert.Equal(t, tt.warnSeen, strings.Contains(buf.String(), "warn line"))
		})
	}
}
