package domain

import "errors"

// Game holds the current state of a single round.
type Game struct {
	Board  Board
	Turn   Cell
	Winner Cell
	Over   bool
	Moves  int
}

// Errors returned by domain operations.
var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrOccupied    = errors.New("cell occupied")
	ErrGameOver    = errors.New("game over")
)

// New returns a new round with X to move.
func New() Game {
	return Game{Turn: X}
}

// Play places the current turn's symbol on cell (0..8) and flips the turn.
func (g *Game) Play(cell int) error {
	if g.Over {
		return ErrGameOver
	}
	if cell < 0 || cell >= len(g.Board) {
		return ErrOutOfBounds
	}
	if g.Board[cell] != Empty {
		return ErrOccupied
	}

	g.Board[cell] = g.Turn
	g.Moves++

	// win before draw: the ninth move may complete a line
	if g.Board.IsWin(g.Turn) {
		g.Winner = g.Turn
		g.Over = true
		return nil
	}
	if g.Moves == len(g.Board) {
		g.Winner = Empty
		g.Over = true
		return nil
	}

	g.Turn = g.Turn.Opponent()
	return nil
}

// Draw reports a finished round without a winner.
func (g *Game) Draw() bool {
	return g.Over && g.Winner == Empty
}
