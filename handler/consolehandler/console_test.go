package consolehandler

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorWriter struct{}

func (errorWriter) Write([]byte) (int, error) { return 0, errors.New("error generated in writer") }

func TestConsoleHandler_WriteLine(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	defer h.Close()

	require.NoError(t, h.WriteLine("first"))
	require.NoError(t, h.WriteLine("second"))

	assert.Equal(t, "first\nsecond\n", buf.String())
	assert.Equal(t, uint64(2), h.Stats().ProcessedTotal)
}

func TestConsoleHandler_DefaultWriter(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{})
	assert.Same(t, os.Stdout, h.Writer())
}

func TestConsoleHandler_WriteError(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{Writer: errorWriter{}})

	assert.Error(t, h.WriteLine("lost"))
	assert.Equal(t, uint64(1), h.Stats().FailedTotal)
	assert.Equal(t, uint64(0), h.Stats().ProcessedTotal)
}

func TestConsoleHandler_CloseKeepsWriter(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})

	require.NoError(t, h.Close())
	require.NoError(t, h.WriteLine("still here"))
	assert.Equal(t, "still here\n", buf.String())
}
