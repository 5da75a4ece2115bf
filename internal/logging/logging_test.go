package logging_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Tiliavir/temps/internal/logging"
)

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer
	quiet := logging.New(&buf, false)
	quiet.Debug("hidden")
	quiet.Warn("shown", "file", "x.tsv")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN msg=shown file=x.tsv")

	buf.Reset()
	logging.New(&buf, true).Debug("loaded", "entries", 3)
	assert.Contains(t, buf.String(), "level=DEBUG msg=loaded entries=3")
}

func TestDebugEnabled(t *testing.T) {
	t.Setenv(logging.EnvDebug, "1")
	assert.True(t, logging.DebugEnabled())
	t.Setenv(logging.EnvDebug, "false")
	assert.False(t, logging.DebugEnabled())
	t.Setenv(logging.EnvDebug, "")
	assert.False(t, logging.DebugEnabled())
}
