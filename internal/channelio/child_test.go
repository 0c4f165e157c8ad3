package channelio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildReadLine(t *testing.T) {
	c, err := NewChild(`echo "hello"; echo "world"`)
	require.NoError(t, err)

	line, eof := c.ReadLine()
	require.False(t, eof)
	assert.Equal(t, "hello", line)

	line, eof = c.ReadLine()
	require.False(t, eof)
	assert.Equal(t, "world", line)

	_, eof = c.ReadLine()
	assert.True(t, eof)

	code, err := c.Close()
	assert.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestChildEchoesStdinToStdout(t *testing.T) {
	c, err := NewChild("cat")
	require.NoError(t, err)

	c.SendLine("ping")
	line, eof := c.ReadLine()
	require.False(t, eof)
	assert.Equal(t, "ping", line)

	require.NoError(t, c.Cleanup())
	_, eof = c.ReadLine()
	assert.True(t, eof)

	code, err := c.Close()
	assert.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestChildMergesStderrIntoStdout(t *testing.T) {
	c, err := NewChild("echo out; echo err 1>&2")
	require.NoError(t, err)

	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		line, eof := c.ReadLine()
		require.False(t, eof)
		seen[line] = true
	}
	assert.True(t, seen["out"])
	assert.True(t, seen["err"])
}

func TestChildExitCode(t *testing.T) {
	c, err := NewChild("exit 7")
	require.NoError(t, err)

	for {
		_, eof := c.ReadLine()
		if eof {
			break
		}
	}

	code, err := c.Close()
	assert.Error(t, err)
	assert.Equal(t, 7, code)
}

func TestChildSendLineAfterCleanupIsTolerated(t *testing.T) {
	c, err := NewChild("cat")
	require.NoError(t, err)
	require.NoError(t, c.Cleanup())

	assert.NotPanics(t, func() {
		c.SendLine("ignored")
	})

	time.Sleep(10 * time.Millisecond)
	code, err := c.Close()
	assert.NoError(t, err)
	assert.Equal(t, 0, code)
}
