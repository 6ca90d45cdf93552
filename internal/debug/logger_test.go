package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitWriter(t *testing.T) {
	defer Init(false)

	var buf bytes.Buffer
	InitWriter(&buf, false)
	Debug("hidden")
	Error("also hidden")
	assert.False(t, Enabled())
	assert.Empty(t, buf.String())

	InitWriter(&buf, true)
	Debug("shown", "key", "value")
	assert.True(t, Enabled())
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "key=value")
}

func TestTimed(t *testing.T) {
	defer Init(false)

	var buf bytes.Buffer
	InitWriter(&buf, true)
	Timed("pass", "models", 3)()
	assert.Contains(t, buf.String(), "pass")
	assert.Contains(t, buf.String(), "models=3")
	assert.Contains(t, buf.String(), "duration=")
}
