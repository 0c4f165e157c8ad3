package channelio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Stdio is the IO for the interactive operator session: reads commands
// from a reader (normally os.Stdin) and writes replies to a writer
// (normally os.Stdout). Close and Cleanup are both no-ops — the process's
// own stdio streams outlive any one Channel.
type Stdio struct {
	r           *bufio.Reader
	w           io.Writer
	interactive bool

	mu  sync.Mutex
	eof bool
}

var _ IO = (*Stdio)(nil)

// NewStdio wraps the process's real stdin/stdout.
func NewStdio() *Stdio {
	return newStdio(os.Stdin, os.Stdout)
}

// newStdio wraps arbitrary reader/writer pair, enabling the prompt banner
// only when r is a terminal.
func newStdio(r io.Reader, w io.Writer) *Stdio {
	interactive := false
	if f, ok := r.(*os.File); ok {
		interactive = term.IsTerminal(int(f.Fd()))
	}
	return &Stdio{r: bufio.NewReader(r), w: w, interactive: interactive}
}

func (s *Stdio) ReadLine() (string, bool) {
	s.mu.Lock()
	already := s.eof
	s.mu.Unlock()
	if already {
		return "", true
	}

	if s.interactive {
		fmt.Fprint(s.w, "> ")
	}

	line, err := s.r.ReadString('\n')
	if err != nil {
		s.mu.Lock()
		s.eof = true
		s.mu.Unlock()
		if line == "" {
			return "", true
		}
	}
	return strings.TrimRight(line, "\r\n"), false
}

func (s *Stdio) SendLine(line string) {
	fmt.Fprintln(s.w, line)
}

func (s *Stdio) IsEnd() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eof
}

func (s *Stdio) Cleanup() error { return nil }

func (s *Stdio) Close() (int, error) { return 0, nil }
