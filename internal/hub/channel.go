// Package hub implements the Channel/Dispatcher layer: one reader
// goroutine per connected peer, all funneling into a single consumer
// goroutine so Model, Agent, and Game state never need their own locks.
package hub

import (
	"log/slog"

	"github.com/rabble/rabble/internal/channelio"
	"github.com/rabble/rabble/internal/proto"
)

// Channel owns one IO and the reader loop that frames its input into
// Events. Master channels are load-bearing for shutdown: once every
// Master channel has finalized, the Dispatcher ends the run.
type Channel struct {
	id     int
	io     channelio.IO
	master bool
	events chan<- Event
}

// NewChannel wires a Channel to emit Events onto events — normally
// Dispatcher.Events().
func NewChannel(id int, io channelio.IO, master bool, events chan<- Event) *Channel {
	return &Channel{id: id, io: io, master: master, events: events}
}

func (c *Channel) ID() int      { return c.id }
func (c *Channel) Master() bool { return c.master }

// Start runs Serve in its own goroutine.
func (c *Channel) Start() { go c.Serve() }

// Serve runs the reader loop until end-of-stream, an explicit exit
// command, or the IO being closed out-of-band (e.g. by Kick). It emits
// exactly one Terminal event on return.
func (c *Channel) Serve() {
	defer func() {
		c.events <- Event{ChannelID: c.id, Terminal: true}
	}()

	for {
		if c.io.IsEnd() {
			return
		}

		line, eof := c.io.ReadLine()
		if eof {
			return
		}

		tokens, err := proto.Tokenize(line)
		if err != nil {
			c.io.SendLine("error invalid_syntax")
			continue
		}
		if len(tokens) == 0 {
			continue
		}

		command, args := tokens[0], tokens[1:]
		switch command {
		case "exit":
			return
		case "debug":
			slog.Debug("channel debug", "channel", c.id, "args", args)
			continue
		}

		c.events <- Event{ChannelID: c.id, Command: command, Args: args}
	}
}

// Send writes a line directly to this channel's IO.
func (c *Channel) Send(line string) { c.io.SendLine(line) }

// cleanup performs the idempotent write-side close used on ordinary
// finalization, where the reader has already observed end-of-stream or
// an exit command.
func (c *Channel) cleanup() error { return c.io.Cleanup() }

// close additionally awaits the channel's IO fully terminating — for a
// child-process channel, the subprocess exit — and reports the result.
// Used on Dispatcher shutdown and, out-of-band, by Kick.
func (c *Channel) close() (int, error) { return c.io.Close() }
