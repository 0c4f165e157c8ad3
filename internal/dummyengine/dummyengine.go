// Package dummyengine implements the trivial do-nothing child process used
// to exercise the child-process channel I/O and the core protocol without
// any actual game logic: it reads and discards every line until its stdin
// closes, then exits.
package dummyengine

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rabble/rabble/internal/proto"
)

// Run reads lines from r until EOF, tokenizing each one (invalid syntax
// is reported back on w as a debug line, matching how any other channel
// peer would see a syntax complaint) and discarding the result either
// way, then writes a closing debug line to w before returning.
func Run(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if _, err := proto.Tokenize(scanner.Text()); err != nil {
			fmt.Fprintf(w, "debug invalid command syntax: %q\n", scanner.Text())
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	fmt.Fprintln(w, `debug "exiting"`)
	return nil
}
