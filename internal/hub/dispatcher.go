package hub

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// Router is the hub package's view of "whatever owns Agents and Games" —
// kept as an interface so hub never imports the model package (model
// imports hub, not the reverse).
type Router interface {
	HandleMessage(channelID int, command string, args []string)
	HandleDisconnect(channelID int)
}

// Sender is the outbound half of the Dispatcher: routing a line, or a
// forced close, to a channel by id. Model and Agent hold a Sender rather
// than a *Dispatcher so they can be exercised against a fake.
type Sender interface {
	Send(channelID int, line string)
	Kick(channelID int)
}

const defaultEventBuffer = 256

// Dispatcher serializes events from every registered Channel onto one
// consumer goroutine (Run). All Model/Agent/Game mutation happens only
// from inside that goroutine — the single lock the whole game state
// needs, enforced structurally rather than with a mutex.
type Dispatcher struct {
	mu       sync.RWMutex
	channels map[int]*Channel
	events   chan Event
	finished atomic.Bool
	done     chan struct{}
}

var _ Sender = (*Dispatcher)(nil)

// NewDispatcher creates a Dispatcher with its event queue ready for
// Channels constructed via d.Events().
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		channels: make(map[int]*Channel),
		events:   make(chan Event, defaultEventBuffer),
		done:     make(chan struct{}),
	}
}

// Events returns the send side of the event queue, to be passed to
// NewChannel for every Channel this Dispatcher will register.
func (d *Dispatcher) Events() chan<- Event { return d.events }

// Register adds ch to the registry, making it reachable for Send/Kick and
// countable toward shutdown. Callers start its reader loop separately —
// via Start, or by driving Serve inline (typically for the interactive
// master channel).
func (d *Dispatcher) Register(ch *Channel) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.channels[ch.id] = ch
}

// Finished reports whether the last master channel has finalized.
func (d *Dispatcher) Finished() bool { return d.finished.Load() }

// Done is closed once Run has fully returned: every channel has either
// finalized on its own or been force-closed during shutdown.
func (d *Dispatcher) Done() <-chan struct{} { return d.done }

// Run is the Dispatcher's single consumer goroutine. It processes events
// until the last master channel finalizes, drains whatever is left in
// the queue, force-closes every channel still registered, and returns.
func (d *Dispatcher) Run(router Router) {
	defer close(d.done)

	for {
		ev := <-d.events
		d.handle(ev, router)
		if d.finished.Load() {
			d.drain(router)
			d.closeRemaining()
			return
		}
	}
}

func (d *Dispatcher) handle(ev Event, router Router) {
	if ev.Terminal {
		d.finalize(ev.ChannelID, router)
		return
	}
	router.HandleMessage(ev.ChannelID, ev.Command, ev.Args)
}

// drain processes whatever is already queued without blocking, so a burst
// of terminal events arriving alongside the one that triggered shutdown
// isn't silently dropped.
func (d *Dispatcher) drain(router Router) {
	for {
		select {
		case ev := <-d.events:
			d.handle(ev, router)
		default:
			return
		}
	}
}

// finalize removes channelID from the registry, idempotently cleans up
// its IO, notifies the router, and marks the Dispatcher finished once no
// master channel remains registered.
func (d *Dispatcher) finalize(channelID int, router Router) {
	d.mu.Lock()
	ch, ok := d.channels[channelID]
	if ok {
		delete(d.channels, channelID)
	}
	d.mu.Unlock()
	if !ok {
		return
	}

	_ = ch.cleanup()
	router.HandleDisconnect(channelID)

	if d.countMasters() == 0 {
		d.finished.Store(true)
	}
}

func (d *Dispatcher) countMasters() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	n := 0
	for _, ch := range d.channels {
		if ch.master {
			n++
		}
	}
	return n
}

func (d *Dispatcher) closeRemaining() {
	d.mu.Lock()
	remaining := make([]*Channel, 0, len(d.channels))
	for id, ch := range d.channels {
		remaining = append(remaining, ch)
		delete(d.channels, id)
	}
	d.mu.Unlock()

	for _, ch := range remaining {
		if _, err := ch.close(); err != nil {
			slog.Warn("channel close", "channel", ch.id, "error", err)
		}
	}
}

// Send implements Sender: writes line to channelID's IO, discarding
// silently if the channel has already finalized.
func (d *Dispatcher) Send(channelID int, line string) {
	d.mu.RLock()
	ch, ok := d.channels[channelID]
	d.mu.RUnlock()
	if !ok {
		return
	}
	ch.Send(line)
}

// Kick closes channelID's IO out-of-band: the close runs in its own
// goroutine so a child-process channel awaiting subprocess exit never
// blocks the single consumer goroutine that called Kick. The channel's
// reader loop observes end-of-stream on its own schedule and flows
// through ordinary finalization, emitting its one Terminal event as usual.
func (d *Dispatcher) Kick(channelID int) {
	d.mu.RLock()
	ch, ok := d.channels[channelID]
	d.mu.RUnlock()
	if !ok {
		return
	}
	go func() {
		if _, err := ch.close(); err != nil {
			slog.Warn("channel kick", "channel", ch.id, "error", err)
		}
	}()
}
