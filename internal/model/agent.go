package model

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/rabble/rabble/internal/hub"
)

// Agent is one connected channel's identity: its name, whether it can
// issue the admin-only kick command (granted by whoever calls
// Model.NewAgent), and the game seats it has been bound
// to. It implements scrabble.PlayerAgent/Requester structurally, and
// hub.Router's per-channel half is handled by Model, not Agent.
type Agent struct {
	id        int
	channelID int
	name      string
	admin     bool
	seats     []int
	sender    hub.Sender
}

func newAgent(id, channelID int, name string, admin bool, sender hub.Sender) *Agent {
	return &Agent{id: id, channelID: channelID, name: name, admin: admin, sender: sender}
}

func (a *Agent) ID() int        { return a.id }
func (a *Agent) ChannelID() int { return a.channelID }
func (a *Agent) Admin() bool    { return a.admin }

// Send implements scrabble.PlayerAgent: writes line back to this agent's
// channel.
func (a *Agent) Send(line string) { a.sender.Send(a.channelID, line) }

// Name implements scrabble.PlayerAgent.
func (a *Agent) Name() string { return a.name }

// Seats implements scrabble.Requester: the player indices this agent
// currently controls, in ascending order.
func (a *Agent) Seats() []int {
	out := make([]int, len(a.seats))
	copy(out, a.seats)
	sort.Ints(out)
	return out
}

// AddSeat records index as one this agent now controls. Called by the
// wiring code that seats an Agent into the Game at startup.
func (a *Agent) AddSeat(index int) { a.seats = append(a.seats, index) }

func (a *Agent) String() string {
	return fmt.Sprintf("agent(%d, channel=%d, %q)", a.id, a.channelID, a.name)
}

// handleMessage dispatches one command addressed to this agent. "kick" is
// handled here, admin-gated, since it needs the Model's agent-id registry
// and the Dispatcher's out-of-band close; everything else forwards to the
// bound Game, if any.
func (a *Agent) handleMessage(command string, args []string, m *Model) {
	if command == "kick" {
		a.handleKick(args, m)
		return
	}

	game := m.Game()
	if game == nil {
		a.Send(fmt.Sprintf("error no_game_selected %s", command))
		return
	}
	game.HandleMessage(command, args, a)
}

func (a *Agent) handleKick(args []string, m *Model) {
	if !a.admin {
		a.Send("error permission_denied kick")
		return
	}
	if len(args) != 1 {
		a.Send("error invalid_user")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		a.Send("error invalid_user")
		return
	}
	target, ok := m.agentByID(id)
	if !ok {
		a.Send("error invalid_user")
		return
	}
	m.kick(target)
}

// handleDisconnect notifies this agent's bound Game, if any, that it has
// gone away.
func (a *Agent) handleDisconnect(m *Model) {
	if game := m.Game(); game != nil {
		game.HandleDisconnect(a)
	}
}
