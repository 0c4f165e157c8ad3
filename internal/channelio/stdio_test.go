package channelio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStdioReadLine(t *testing.T) {
	r := strings.NewReader("move 7h cat\nget_rack 0\n")
	var w bytes.Buffer
	io := newStdio(r, &w)

	line, eof := io.ReadLine()
	require.False(t, eof)
	assert.Equal(t, "move 7h cat", line)

	line, eof = io.ReadLine()
	require.False(t, eof)
	assert.Equal(t, "get_rack 0", line)

	_, eof = io.ReadLine()
	assert.True(t, eof)
	assert.True(t, io.IsEnd())
}

func TestStdioReadLineUnterminatedLast(t *testing.T) {
	r := strings.NewReader("exit")
	var w bytes.Buffer
	io := newStdio(r, &w)

	line, eof := io.ReadLine()
	require.False(t, eof)
	assert.Equal(t, "exit", line)

	_, eof = io.ReadLine()
	assert.True(t, eof)
}

func TestStdioSendLine(t *testing.T) {
	var w bytes.Buffer
	io := newStdio(strings.NewReader(""), &w)
	io.SendLine("to_move 0")
	assert.Equal(t, "to_move 0\n", w.String())
}

func TestStdioCleanupCloseNoop(t *testing.T) {
	io := newStdio(strings.NewReader(""), &bytes.Buffer{})
	assert.NoError(t, io.Cleanup())
	code, err := io.Close()
	assert.NoError(t, err)
	assert.Equal(t, 0, code)
}
