package domain

import "fmt"

// Cell represents a board cell state.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// Opponent returns the other symbol; Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// ParseCell accepts "X" or "O" in either case.
func ParseCell(s string) (Cell, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	}
	return Empty, fmt.Errorf("unknown symbol %q", s)
}

// Board is a fixed 3x3 board stored row-major.
type Board [9]Cell

// WinPatterns lists every line of three.
var WinPatterns = [8][3]int{
	// rows
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	// cols
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	// diags
	{0, 4, 8}, {2, 4, 6},
}

// IsWin reports whether side occupies any complete line.
func (b Board) IsWin(side Cell) bool {
	if side == Empty {
		return false
	}
	for _, ln := range WinPatterns {
		if b[ln[0]] == side && b[ln[1]] == side && b[ln[2]] == side {
			return true
		}
	}
	return false
}

// IsFull reports whether no cell is Empty.
func (b Board) IsFull() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// IsDraw reports a full board on which nobody has won.
func (b Board) IsDraw() bool {
	return b.IsFull() && !b.IsWin(X) && !b.IsWin(O)
}

// Winner returns the side holding a line, or Empty. X is checked first.
func (b Board) Winner() Cell {
	if b.IsWin(X) {
		return X
	}
	if b.IsWin(O) {
		return O
	}
	return Empty
}

// EmptyCells returns the indices of empty cells in ascending order.
func (b Board) EmptyCells() []int {
	out := make([]int, 0, len(b))
	for i, c := range b {
		if c == Empty {
			out = append(out, i)
		}
	}
	return out
}

// Count returns how many cells hold side.
func (b Board) Count(side Cell) int {
	n := 0
	for _, c := range b {
		if c == side {
			n++
		}
	}
	return n
}

// String renders the board as three rows, '.' marking empty cells.
func (b Board) String() string {
	buf := make([]byte, 0, 11)
	for i, c := range b {
		if i > 0 && i%3 == 0 {
			buf = append(buf, '/')
		}
		if c == Empty {
			buf = append(buf, '.')
		} else {
			buf = append(buf, c.String()...)
		}
	}
	return string(buf)
}
