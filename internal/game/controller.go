// Package game drives a board from square selections: the first click picks
// a piece, the second one moves it, cancels, or explains why it cannot.
package game

import (
	"log"
	"sync"

	"github.com/hailam/chessboard/internal/board"
)

// Status messages shown to the player.
const (
	StatusNone       = ""
	StatusWrongColor = "Select the right color!"
	StatusIllegal    = "That's not a legal move!"
	StatusSelfCheck  = "That move would put the king in check!"
	StatusCorrupted  = "The board is in an invalid state!"
)

// State is the selection state of a controller.
type State int

const (
	AwaitingFirstSelection State = iota
	AwaitingSecondSelection
)

// String returns the state name.
func (s State) String() string {
	if s == AwaitingSecondSelection {
		return "AwaitingSecondSelection"
	}
	return "AwaitingFirstSelection"
}

// Outcome describes what a single selection did.
type Outcome int

const (
	Ignored    Outcome = iota // off-board or empty square, nothing changed
	Selected                  // piece picked up
	Deselected                // same square clicked again
	WrongColor                // opponent's piece clicked first
	Illegal                   // destination not reachable
	SelfCheck                 // move would leave the own king attacked
	Executed                  // move played
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Selected:
		return "Selected"
	case Deselected:
		return "Deselected"
	case WrongColor:
		return "WrongColor"
	case Illegal:
		return "Illegal"
	case SelfCheck:
		return "SelfCheck"
	case Executed:
		return "Executed"
	default:
		return "Ignored"
	}
}

// Controller owns one game's board and turns clicks into moves.
// It is safe for concurrent use; each game needs its own Controller.
type Controller struct {
	mu       sync.Mutex
	board    *board.Board
	status   string
	lastMove board.Move
}

// NewController creates a controller for a game in the starting position.
func NewController() *Controller {
	return &Controller{
		board:    board.NewBoard(),
		lastMove: board.NoMove,
	}
}

// NewGame resets to the starting position.
func (c *Controller) NewGame() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.board.Setup()
	c.status = StatusNone
	c.lastMove = board.NoMove
}

// Restore replaces the board, e.g. with a saved game. The controller takes
// ownership of b. lastMove may be board.NoMove.
func (c *Controller) Restore(b *board.Board, lastMove board.Move) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b.ClearSelection()
	c.board = b
	c.status = StatusNone
	c.lastMove = lastMove
}

// State returns the current selection state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state()
}

func (c *Controller) state() State {
	if c.board.Selected() == board.NoSquare {
		return AwaitingFirstSelection
	}
	return AwaitingSecondSelection
}

// SelectAt selects by raw coordinates; anything off the board is ignored.
func (c *Controller) SelectAt(file, rank int) Outcome {
	sq, ok := board.SquareAt(file, rank)
	if !ok {
		return Ignored
	}
	return c.Select(sq)
}

// Select processes one click on sq.
//
// With nothing selected, an own piece becomes the selection, an opponent's
// piece reports StatusWrongColor and an empty square is ignored. With a
// piece selected, clicking it again cancels; any other square is checked
// with the board's legality engine and the move is played when legal. A
// rejected move keeps the selection so the player can pick another target.
func (c *Controller) Select(sq board.Square) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !sq.IsValid() {
		return Ignored
	}

	if c.state() == AwaitingFirstSelection {
		return c.selectFirst(sq)
	}
	return c.selectSecond(sq)
}

func (c *Controller) selectFirst(sq board.Square) Outcome {
	p, ok := c.board.PieceAt(sq)
	if !ok {
		return Ignored
	}
	if p.Color != c.board.SideToMove() {
		c.status = StatusWrongColor
		return WrongColor
	}

	c.board.Select(sq)
	c.status = StatusNone
	return Selected
}

func (c *Controller) selectSecond(to board.Square) Outcome {
	from := c.board.Selected()
	if to == from {
		c.board.ClearSelection()
		c.status = StatusNone
		return Deselected
	}

	verdict, err := c.board.IsLegal(from, to)
	if err != nil {
		log.Printf("[MOVE] Rejected %v%v: %v", from, to, err)
		c.status = StatusCorrupted
		return Illegal
	}

	switch verdict {
	case board.IllegalMove:
		c.status = StatusIllegal
		return Illegal
	case board.LeavesKingInCheck:
		c.status = StatusSelfCheck
		return SelfCheck
	}

	if err := c.board.ExecuteMove(from, to); err != nil {
		log.Printf("[MOVE] Failed to execute %v%v: %v", from, to, err)
		c.status = StatusCorrupted
		return Illegal
	}
	c.lastMove = board.NewMove(from, to)
	c.status = StatusNone
	return Executed
}

// Board returns a copy of the live board. The copy carries no selection.
func (c *Controller) Board() *board.Board {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.board.Clone()
}

// LastMove returns the most recently played move, or board.NoMove.
func (c *Controller) LastMove() board.Move {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastMove
}

// Status returns the current status message.
func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}
