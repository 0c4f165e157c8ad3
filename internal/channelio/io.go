// Package channelio implements the two concrete line-oriented transports a
// Channel can sit on top of: the interactive stdio session, and a
// child-process engine spawned over a shell command.
package channelio

// IO is the line-oriented transport a Channel reads commands from and
// writes replies to. Implementations never return an error from ReadLine;
// any I/O fault collapses to the same end-of-stream signal a reader loop
// already has to handle.
type IO interface {
	// ReadLine blocks for the next line (without its terminator). eof is
	// true once the peer is gone and line is meaningless.
	ReadLine() (line string, eof bool)

	// SendLine writes one line to the peer. Failures are tolerated
	// silently — the reader loop's own EOF detection is authoritative
	// for noticing a dead peer.
	SendLine(line string)

	// IsEnd reports whether the stream has already been observed closed,
	// without blocking.
	IsEnd() bool

	// Cleanup idempotently closes the write side. Safe to call more than
	// once. Used on ordinary finalization, where the reader has already
	// observed end-of-stream or an exit command.
	Cleanup() error

	// Close closes the write side (if not already closed) and, for a
	// child-process IO, additionally waits for the subprocess to exit and
	// reports its exit code. Used on process shutdown and by Kick.
	Close() (exitCode int, err error)
}
