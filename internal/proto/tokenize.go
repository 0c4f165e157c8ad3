// Package proto implements the line tokenizer shared by every channel: a
// whitespace-separated, quote-aware split where each token is either a
// double-quoted run (with `\"` escapes, ending at the first unescaped
// quote) or a bare run of letters, digits, and underscores.
package proto

import (
	"errors"
	"strings"
)

// ErrInvalidSyntax is returned by Tokenize when a line contains a byte that
// cannot start either a quoted or a bare token, or an unterminated quote.
var ErrInvalidSyntax = errors.New("proto: invalid syntax")

// Tokenize splits line into tokens. Runs of whitespace separate tokens;
// a double-quoted run becomes one token with its surrounding quotes
// stripped and any `\"` unescaped to `"`. An empty line yields no tokens.
func Tokenize(line string) ([]string, error) {
	var tokens []string
	i, n := 0, len(line)

	for {
		for i < n && isSpace(line[i]) {
			i++
		}
		if i >= n {
			break
		}

		switch {
		case line[i] == '"':
			tok, next, err := scanQuoted(line, i)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			i = next
		case isWordByte(line[i]):
			start := i
			for i < n && isWordByte(line[i]) {
				i++
			}
			tokens = append(tokens, line[start:i])
		default:
			return nil, ErrInvalidSyntax
		}
	}

	return tokens, nil
}

// Quote renders tokens back into a line that Tokenize would split into the
// same tokens, quoting any token that isn't a bare word run.
func Quote(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		if needsQuoting(t) {
			parts[i] = `"` + strings.ReplaceAll(t, `"`, `\"`) + `"`
		} else {
			parts[i] = t
		}
	}
	return strings.Join(parts, " ")
}

func scanQuoted(line string, start int) (string, int, error) {
	i := start + 1
	var sb strings.Builder
	for i < len(line) {
		c := line[i]
		if c == '\\' && i+1 < len(line) && line[i+1] == '"' {
			sb.WriteByte('"')
			i += 2
			continue
		}
		if c == '"' {
			return sb.String(), i + 1, nil
		}
		sb.WriteByte(c)
		i++
	}
	return "", 0, ErrInvalidSyntax
}

func needsQuoting(t string) bool {
	if t == "" {
		return true
	}
	for i := 0; i < len(t); i++ {
		if !isWordByte(t[i]) {
			return true
		}
	}
	return false
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isWordByte(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9') || b == '_'
}
