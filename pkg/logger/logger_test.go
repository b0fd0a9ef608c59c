package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugGatedByEnvironment(t *testing.T) {
	var buf bytes.Buffer
	DebugLogger.SetOutput(&buf)
	prev := environment
	t.Cleanup(func() {
		SetEnvironment(prev)
		DebugLogger.SetOutput(os.Stdout)
	})

	SetEnvironment("production")
	Debug("ignoring invalid token")
	assert.Empty(t, buf.String())

	SetEnvironment("development")
	Debug("ignoring invalid token")
	assert.Contains(t, buf.String(), "ignoring invalid token")
}
