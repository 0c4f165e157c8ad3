// Package wordlist loads the dictionary a Game validates moves against.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"
)

var validWord = regexp.MustCompile(`^[a-z]+$`)

// Load reads path, one candidate word per line, and returns the set of
// accepted words: only lines matching ^[a-z]+$ after trimming survive;
// order is irrelevant and duplicates collapse naturally into the set.
func Load(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	defer f.Close()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if validWord.MatchString(line) {
			words[line] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: %w", err)
	}
	return words, nil
}
