// Package scrabble implements the board, rack, tile pool, and move
// validation/scoring for a single Scrabble-style game. A Game is driven
// by exactly one goroutine at a time (the Dispatcher's consumer loop, one
// level up) and holds no lock of its own.
package scrabble

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
)

const (
	NumRows      = 15
	NumCols      = 15
	InitialTiles = 7
)

// ErrInvalidMove is returned by the internal move-commit step; callers see
// it only as the "move_invalid" wire error.
var ErrInvalidMove = errors.New("scrabble: invalid move")

// PlayerAgent is the minimal capability a Game needs from whatever is
// sending/receiving on behalf of a seated player or watcher. Defined here,
// at the consumer side, so this package never depends on who implements
// it (model.Agent does, in practice).
type PlayerAgent interface {
	Send(line string)
	Name() string
}

// Requester extends PlayerAgent with the seats (player indices) the
// caller of a Game command controls — an agent may hold more than one
// seat if it was bound to several via a literal "-" engine spec.
type Requester interface {
	PlayerAgent
	Seats() []int
}

// Player is one seat at the table: its rack, its running score, and the
// agent currently controlling it (nil once that agent has disconnected).
type Player struct {
	Index int
	Agent PlayerAgent
	Rack  map[byte]int
	Score int
}

// Game holds the full state of one in-progress match: board, players,
// remaining tile pool, whose turn it is, and the set of watchers that
// receive broadcasts.
type Game struct {
	board    [NumRows][NumCols]byte
	players  []*Player
	pool     []byte
	toMove   int
	watchers map[PlayerAgent]struct{}
	words    map[string]struct{}
	rng      *rand.Rand
}

// NewGame creates a Game with a freshly shuffled pool. rng drives both the
// shuffle and all subsequent draws; pass a seeded source for deterministic
// tests.
func NewGame(words map[string]struct{}, rng *rand.Rand) *Game {
	return &Game{
		pool:     newPool(rng),
		toMove:   -1,
		watchers: make(map[PlayerAgent]struct{}),
		words:    words,
		rng:      rng,
	}
}

func newPool(rng *rand.Rand) []byte {
	pool := make([]byte, 0, 100)
	for _, lf := range letterFrequencies {
		for i := 0; i < lf.count; i++ {
			pool = append(pool, lf.letter)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return pool
}

// AddPlayer seats agent at the next open index and returns it. The agent
// is also registered as a watcher.
func (g *Game) AddPlayer(agent PlayerAgent) int {
	index := len(g.players)
	g.players = append(g.players, &Player{Index: index, Agent: agent, Rack: map[byte]int{}})
	g.watchers[agent] = struct{}{}
	return index
}

// AddWatcher registers agent for broadcasts without seating it as a
// player. Used for the interactive operator session, which watches the
// game whether or not it also controls a seat.
func (g *Game) AddWatcher(agent PlayerAgent) {
	g.watchers[agent] = struct{}{}
}

// Start deals every seated player a full rack, announces the game to each
// player and then to every watcher, and opens play with player 0 to move.
func (g *Game) Start() {
	for _, p := range g.players {
		for i := 0; i < InitialTiles; i++ {
			g.drawTile(p)
		}
	}
	for _, p := range g.players {
		p.Agent.Send("start_game")
		p.Agent.Send(fmt.Sprintf("player_index %d", p.Index))
	}
	for _, p := range g.players {
		g.broadcast(fmt.Sprintf("player %d %s", p.Index, p.Agent.Name()))
	}
	g.toMove = 0
	g.broadcast(fmt.Sprintf("to_move %d", g.toMove))
}

// drawTile moves one tile from the pool onto p's rack. If the pool is
// empty this is a deliberate no-op rather than a fault — racks simply
// stop refilling once tiles run out.
func (g *Game) drawTile(p *Player) {
	if len(g.pool) == 0 {
		return
	}
	tile := g.pool[len(g.pool)-1]
	g.pool = g.pool[:len(g.pool)-1]
	p.Rack[tile]++
}

func rackSize(rack map[byte]int) int {
	n := 0
	for _, c := range rack {
		n += c
	}
	return n
}

// HandleMessage dispatches one in-game command from requester.
func (g *Game) HandleMessage(command string, args []string, requester Requester) {
	switch command {
	case "move":
		g.handleMove(args, requester)
	case "get_word_list":
		g.sendWordList(requester)
	case "get_rack":
		g.sendRack(args, requester)
	default:
		requester.Send(fmt.Sprintf("error unknown_command %s", command))
	}
}

func (g *Game) handleMove(args []string, requester Requester) {
	if len(args) != 2 {
		requester.Send("error move_syntax")
		return
	}
	move, err := ParseMove(args[0], args[1])
	if err != nil {
		requester.Send("error move_syntax")
		return
	}
	g.requestMove(requester, move)
}

func (g *Game) requestMove(requester Requester, move Move) {
	if !containsInt(requester.Seats(), g.toMove) {
		requester.Send("error not_to_move")
		return
	}

	player := g.players[g.toMove]
	score, err := g.makeMove(player, move)
	if err != nil {
		requester.Send("error move_invalid")
		return
	}

	g.broadcast(fmt.Sprintf("move_made %d %s %d", g.toMove, move.String(), score))
	player.Score += score

	need := InitialTiles - rackSize(player.Rack)
	for i := 0; i < need; i++ {
		g.drawTile(player)
	}

	g.toMove = (g.toMove + 1) % len(g.players)
	g.broadcast(fmt.Sprintf("to_move %d", g.toMove))
}

// seed is one line to scan for an induced word: a starting cell and the
// direction to walk outward from it.
type seed struct {
	x, y   int
	dx, dy int
}

// makeMove validates move against a copy of the board and player's rack,
// committing both only if every induced word is legal. Nothing is
// mutated on failure.
func (g *Game) makeMove(player *Player, move Move) (int, error) {
	board := g.board
	rack := cloneRack(player.Rack)

	dx, dy := dirVector(move.Direction)
	ox, oy := dirVector(otherDirection(move.Direction))

	row, col := move.StartRow, move.StartCol
	seeds := []seed{{col, row, dx, dy}}

	for idx, letter := range move.Letters {
		x, y := col+dx*idx, row+dy*idx
		if x < 0 || x >= NumCols || y < 0 || y >= NumRows {
			return 0, ErrInvalidMove
		}

		existing := board[y][x]
		if existing != 0 && existing != letter {
			return 0, ErrInvalidMove
		}
		if existing == 0 {
			if rack[letter] < 1 {
				return 0, ErrInvalidMove
			}
			rack[letter]--
		}

		board[y][x] = letter
		seeds = append(seeds, seed{x, y, ox, oy})
	}

	score := 0
	for _, s := range seeds {
		word := extractWord(board, s)
		if len(word) <= 1 {
			continue
		}
		if _, ok := g.words[word]; !ok {
			return 0, ErrInvalidMove
		}
		for i := 0; i < len(word); i++ {
			score += letterScores[word[i]]
		}
	}

	g.board = board
	player.Rack = rack
	return score, nil
}

// extractWord walks outward from s in both directions over contiguous
// occupied cells and returns the letters it covers, including s itself.
func extractWord(board [NumRows][NumCols]byte, s seed) string {
	start, end := 0, 0
	for i := 1; ; i++ {
		x, y := s.x-s.dx*i, s.y-s.dy*i
		if !inBounds(x, y) || board[y][x] == 0 {
			break
		}
		start = -i
	}
	for i := 1; ; i++ {
		x, y := s.x+s.dx*i, s.y+s.dy*i
		if !inBounds(x, y) || board[y][x] == 0 {
			break
		}
		end = i
	}

	letters := make([]byte, 0, end-start+1)
	for i := start; i <= end; i++ {
		x, y := s.x+s.dx*i, s.y+s.dy*i
		letters = append(letters, board[y][x])
	}
	return string(letters)
}

func inBounds(x, y int) bool {
	return x >= 0 && x < NumCols && y >= 0 && y < NumRows
}

func cloneRack(r map[byte]int) map[byte]int {
	out := make(map[byte]int, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

func (g *Game) sendWordList(requester Requester) {
	requester.Send(fmt.Sprintf("word_count %d", len(g.words)))
	i := 0
	for w := range g.words {
		requester.Send(fmt.Sprintf("word %d %s", i, w))
		i++
	}
}

func (g *Game) sendRack(args []string, requester Requester) {
	if len(args) != 1 {
		requester.Send("error invalid_player_index")
		return
	}
	idx, err := strconv.Atoi(args[0])
	if err != nil || !containsInt(requester.Seats(), idx) {
		requester.Send("error invalid_player_index")
		return
	}

	player := g.players[idx]
	requester.Send(fmt.Sprintf("tile_count %d", rackSize(player.Rack)))
	i := 0
	for tile, count := range player.Rack {
		for j := 0; j < count; j++ {
			requester.Send(fmt.Sprintf("tile %d %c", i, tile))
			i++
		}
	}
}

// HandleDisconnect clears every seat requester held, drops it from the
// watcher set, and tells the rest of the table which seats just opened up.
func (g *Game) HandleDisconnect(requester Requester) {
	seats := requester.Seats()
	for _, idx := range seats {
		g.players[idx].Agent = nil
	}
	delete(g.watchers, requester)
	for _, idx := range seats {
		g.broadcast(fmt.Sprintf("dropped %d", idx))
	}
}

func (g *Game) broadcast(line string) {
	for agent := range g.watchers {
		agent.Send(line)
	}
}
