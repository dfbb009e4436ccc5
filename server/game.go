package server

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"

	"github.com/daystram/chesstree/board"
	"github.com/daystram/chesstree/position"
)

var ErrGameNotFound = errors.New("game not found")

// Game is one board being played through the server together with the websocket connections
// watching it. mu serialises moves and connection writes.
type Game struct {
	ID string

	mu    sync.Mutex
	board *board.Board
	conns map[*websocket.Conn]struct{}
}

// GameManager owns every running game keyed by its id.
type GameManager struct {
	mu     sync.RWMutex
	games  map[string]*Game
	logger func(...any)
}

func NewGameManager(logger func(...any)) *GameManager {
	return &GameManager{
		games:  make(map[string]*Game),
		logger: logger,
	}
}

func (gm *GameManager) Create(setup string, turn uint32) *Game {
	if setup == "" {
		setup = board.DefaultSetup
	}
	g := &Game{
		ID: uuid.New().String(),
		board: board.NewBoard(
			board.WithSetup(setup),
			board.WithTurn(turn),
			board.WithLogger(gm.logger),
		),
		conns: make(map[*websocket.Conn]struct{}),
	}

	gm.mu.Lock()
	defer gm.mu.Unlock()
	gm.games[g.ID] = g
	return g
}

func (gm *GameManager) Get(id string) (*Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	g, ok := gm.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

// Delete drops the game and closes its websocket connections.
func (gm *GameManager) Delete(id string) error {
	gm.mu.Lock()
	g, ok := gm.games[id]
	if !ok {
		gm.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(gm.games, id)
	gm.mu.Unlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	for c := range g.conns {
		_ = c.Close()
		delete(g.conns, c)
	}
	return nil
}

func (gm *GameManager) Len() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

func (g *Game) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state()
}

func (g *Game) state() State {
	var cells [board.Height][board.Width]uint8
	for y, row := range g.board.Cells() {
		for x, c := range row {
			cells[y][x] = uint8(c)
		}
	}
	status := g.board.Status()
	return State{
		GameID:      g.ID,
		Cells:       cells,
		Turn:        g.board.Turn().String(),
		TurnCounter: g.board.TurnCounter(),
		Status:      status.String(),
		Check:       status.IsCheck(),
		Checkmate:   status.IsCheckmate(),
		Setup:       g.board.Setup(),
	}
}

// Moves returns the legal moves of the side to move, or of the piece on pos when pos is set.
func (g *Game) Moves(pos *position.Pos) []MoveJSON {
	g.mu.Lock()
	defer g.mu.Unlock()

	var mvs []board.Move
	if pos == nil {
		mvs = g.board.AllTurnAvailableMoves()
	} else {
		for _, mv := range g.board.AvailableMoves(*pos) {
			if g.board.IsValidMove(mv) {
				mvs = append(mvs, mv)
			}
		}
	}
	out := make([]MoveJSON, 0, len(mvs))
	for _, mv := range mvs {
		out = append(out, newMoveJSON(mv))
	}
	return out
}

// Move plays from => to and pushes the new state to every connection of the game.
func (g *Game) Move(from, to position.Pos) (State, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.board.TryMove(from, to); err != nil {
		return State{}, err
	}
	st := g.state()
	g.broadcast(Message{Type: MessageTypeState, Payload: mustJSON(st)})
	return st, nil
}

func (g *Game) register(c *websocket.Conn) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.conns[c] = struct{}{}
}

func (g *Game) unregister(c *websocket.Conn) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.conns, c)
}

// send writes msg to a single connection of the game.
func (g *Game) send(c *websocket.Conn, msg Message) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return c.WriteJSON(msg)
}

// broadcast must be called with mu held.
func (g *Game) broadcast(msg Message) {
	for c := range g.conns {
		if err := c.WriteJSON(msg); err != nil {
			delete(g.conns, c)
		}
	}
}
