package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	require.NoError(t, l.SetLevel("warn"))

	l.Info("hidden")
	l.With(LogParams{"class": "3B"}).Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "class=3B")
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	assert.Error(t, NewLogger(&bytes.Buffer{}).SetLevel("loud"))
}
