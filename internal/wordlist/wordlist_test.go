package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeWordlist(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadAcceptsLowercaseWords(t *testing.T) {
	path := writeWordlist(t, "cat\ndog\napple\n")
	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{
		"cat": {}, "dog": {}, "apple": {},
	}, words)
}

func TestLoadRejectsLinesWithDigitsOrPunctuation(t *testing.T) {
	path := writeWordlist(t, "cat\nc4t\nit's\n123\n")
	words, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"cat": {}}, words)
}

func TestLoadTrimsWhitespace(t *testing.T) {
	path := writeWordlist(t, "  cat  \r\ndog\t\n")
	words, err := Load(path)
	require.NoError(t, err)
	assert.Contains(t, words, "cat")
	assert.Contains(t, words, "dog")
}

func TestLoadCollapsesDuplicates(t *testing.T) {
	path := writeWordlist(t, "cat\ncat\ncat\n")
	words, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, words, 1)
}

func TestLoadRejectsUppercase(t *testing.T) {
	path := writeWordlist(t, "CAT\nCat\n")
	words, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	assert.Error(t, err)
}
