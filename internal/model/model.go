// Package model is the registry glue between the hub's Channel/Dispatcher
// layer and a single Scrabble game: it looks up the Agent bound to an
// incoming event's channel, and routes disconnects and kicks the same
// way. It holds no lock of its own — like Game, it is only ever touched
// from the Dispatcher's single consumer goroutine.
package model

import (
	"fmt"

	"github.com/rabble/rabble/internal/hub"
	"github.com/rabble/rabble/internal/scrabble"
)

// Model implements hub.Router: it is the single entry point the
// Dispatcher calls into for every message and disconnect.
type Model struct {
	sender      hub.Sender
	game        *scrabble.Game
	nextAgentID int
	byChannel   map[int]*Agent
	byID        map[int]*Agent
}

var _ hub.Router = (*Model)(nil)

// NewModel creates a Model that sends outbound traffic through sender and
// routes in-game commands to game. game may be nil if a Game is attached
// later (e.g. via SetGame, before Start).
func NewModel(sender hub.Sender, game *scrabble.Game) *Model {
	return &Model{
		sender:    sender,
		game:      game,
		byChannel: make(map[int]*Agent),
		byID:      make(map[int]*Agent),
	}
}

// Game returns the currently bound game, or nil if none is selected. This
// process hosts exactly one game, so there is nothing to switch between,
// but commands arriving before the game exists still need a consistent
// answer (no_game_selected) rather than a nil dereference.
func (m *Model) Game() *scrabble.Game { return m.game }

// SetGame attaches game to the model, allowing it to be constructed and
// seated before being wired in.
func (m *Model) SetGame(game *scrabble.Game) { m.game = game }

// NewAgent allocates the next agent id, registers it under channelID, and
// returns the new Agent. admin is granted implicitly per the Channel's
// kind (interactive and child-process channels are both admin-capable;
// there is no further authentication). An empty name defaults to
// "player<id>", matching how the reference implementation names every
// seat after its agent id regardless of channel kind.
func (m *Model) NewAgent(channelID int, name string, admin bool) *Agent {
	m.nextAgentID++
	id := m.nextAgentID
	if name == "" {
		name = fmt.Sprintf("player%d", id)
	}
	a := newAgent(id, channelID, name, admin, m.sender)
	m.byChannel[channelID] = a
	m.byID[a.id] = a
	return a
}

func (m *Model) agentByID(id int) (*Agent, bool) {
	a, ok := m.byID[id]
	return a, ok
}

func (m *Model) kick(a *Agent) { m.sender.Kick(a.channelID) }

// HandleMessage implements hub.Router: looks up the Agent bound to
// channelID and dispatches the command to it. An event for a channel with
// no registered Agent is silently dropped — it would mean the Agent was
// already removed by a disconnect racing the message, which the single
// consumer goroutine discipline rules out in practice.
func (m *Model) HandleMessage(channelID int, command string, args []string) {
	a, ok := m.byChannel[channelID]
	if !ok {
		return
	}
	a.handleMessage(command, args, m)
}

// HandleDisconnect implements hub.Router: removes the Agent bound to
// channelID from both registries and notifies it so it can clear its
// seats in the bound Game.
func (m *Model) HandleDisconnect(channelID int) {
	a, ok := m.byChannel[channelID]
	if !ok {
		return
	}
	delete(m.byChannel, channelID)
	delete(m.byID, a.id)
	a.handleDisconnect(m)
}
