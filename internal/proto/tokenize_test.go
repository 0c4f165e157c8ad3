package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   \t  ", nil},
		{"single word", "move", []string{"move"}},
		{"multiple words", "move 7h cat", []string{"move", "7h", "cat"}},
		{"underscore and digits", "get_word_list_2", []string{"get_word_list_2"}},
		{"quoted token", `say "hello world"`, []string{"say", "hello world"}},
		{"escaped quote", `say "she said \"hi\""`, []string{"say", `she said "hi"`}},
		{"empty quoted token", `move 7h ""`, []string{"move", "7h", ""}},
		{"extra whitespace collapses", "  move   7h   cat  ", []string{"move", "7h", "cat"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Tokenize(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenizeInvalid(t *testing.T) {
	tests := []string{
		`move "unterminated`,
		"move $bad",
		"move @#$",
	}
	for _, line := range tests {
		_, err := Tokenize(line)
		assert.ErrorIs(t, err, ErrInvalidSyntax)
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	tests := [][]string{
		{"move", "7h", "cat"},
		{"say", "hello world"},
		{"say", `she said "hi"`},
		{"move", "7h", ""},
	}

	for _, tokens := range tests {
		line := Quote(tokens)
		got, err := Tokenize(line)
		require.NoError(t, err)
		assert.Equal(t, tokens, got)
	}
}
