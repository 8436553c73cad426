// Package console is a line-oriented front end for a game controller.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/hailam/chessboard/internal/board"
	"github.com/hailam/chessboard/internal/game"
)

// Console reads commands and drives a controller.
type Console struct {
	ctrl *game.Controller
	out  io.Writer
}

// New creates a console around ctrl writing replies to out.
func New(ctrl *game.Controller, out io.Writer) *Console {
	return &Console{ctrl: ctrl, out: out}
}

// Run processes commands from in until EOF or "quit".
func (c *Console) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "select", "s":
			c.handleSelect(args)
		case "move", "m":
			c.handleMove(args)
		case "show", "d":
			c.handleShow()
		case "hints":
			c.handleHints()
		case "placement":
			fmt.Fprintln(c.out, c.ctrl.Board().Placement())
		case "new":
			c.ctrl.NewGame()
			fmt.Fprintln(c.out, "ok")
		case "help":
			c.handleHelp()
		case "quit":
			return nil
		default:
			// Bare square names are treated as clicks.
			if _, err := board.ParseSquare(cmd); err == nil && len(args) == 0 {
				c.handleSelect(parts)
				continue
			}
			fmt.Fprintf(c.out, "unknown command: %s\n", cmd)
		}
	}

	return scanner.Err()
}

// handleSelect clicks one square and reports the outcome.
func (c *Console) handleSelect(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(c.out, "usage: select <square>")
		return
	}
	sq, err := board.ParseSquare(args[0])
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}
	c.report(c.ctrl.Select(sq))
}

// handleMove clicks two squares in a row. A failed first click stops there.
func (c *Console) handleMove(args []string) {
	var m board.Move
	var err error
	switch len(args) {
	case 1:
		m, err = board.ParseMove(args[0])
	case 2:
		m, err = board.ParseMove(args[0] + args[1])
	default:
		fmt.Fprintln(c.out, "usage: move <from> <to>")
		return
	}
	if err != nil {
		fmt.Fprintf(c.out, "error: %v\n", err)
		return
	}

	if c.ctrl.State() == game.AwaitingSecondSelection {
		// Start from a clean selection so both clicks mean what they say.
		c.ctrl.Select(c.ctrl.Snapshot().Selected)
	}

	if o := c.ctrl.Select(m.From); o != game.Selected {
		c.report(o)
		return
	}
	o := c.ctrl.Select(m.To)
	status := c.ctrl.Status()
	if o != game.Executed {
		// Drop the selection kept after a rejected move.
		c.ctrl.Select(m.From)
	}
	c.print(o, status)
}

// report prints the outcome and the current status message.
func (c *Console) report(o game.Outcome) {
	c.print(o, c.ctrl.Status())
}

func (c *Console) print(o game.Outcome, status string) {
	fmt.Fprintf(c.out, "%s", strings.ToLower(o.String()))
	if status != "" {
		fmt.Fprintf(c.out, ": %s", status)
	}
	fmt.Fprintln(c.out)
}

// handleShow prints the board, whose turn it is, and the status line.
func (c *Console) handleShow() {
	snap := c.ctrl.Snapshot()
	fmt.Fprint(c.out, c.ctrl.Board())
	if snap.Selected != board.NoSquare {
		fmt.Fprintf(c.out, "Selected: %s\n", snap.Selected)
	}
	if snap.CheckedKing != board.NoSquare {
		fmt.Fprintf(c.out, "Check on %s\n", snap.CheckedKing)
	}
	if snap.Status != "" {
		fmt.Fprintf(c.out, "Status: %s\n", snap.Status)
	}
}

// handleHints lists the legal destinations of the selected piece.
func (c *Console) handleHints() {
	snap := c.ctrl.Snapshot()
	if snap.Selected == board.NoSquare {
		fmt.Fprintln(c.out, "nothing selected")
		return
	}

	names := make([]string, 0, snap.Hints.Len())
	for _, sq := range snap.Hints.Squares() {
		names = append(names, sq.String())
	}
	slices.Sort(names)
	fmt.Fprintf(c.out, "%s: %s\n", snap.Selected, strings.Join(names, " "))
}

func (c *Console) handleHelp() {
	fmt.Fprint(c.out, `commands:
  select <sq>      click a square (a bare square name works too)
  move <from> <to> select and move in one step
  hints            legal targets of the selected piece
  show             print the board
  placement        print the board as a placement string
  new              start a new game
  quit             leave
`)
}
