package engine

import (
	"fmt"

	"github.com/jaminalder/tictactoe-ai/internal/domain"
)

// Finding is a position where ChooseMove disagreed with the reference search.
type Finding struct {
	Board domain.Board
	Got   int
	Want  int
	Err   error
}

func (f Finding) String() string {
	if f.Err != nil {
		return fmt.Sprintf("%s: %v", f.Board, f.Err)
	}
	return fmt.Sprintf("%s: chose %d, want %d", f.Board, f.Got, f.Want)
}

// Outcomes counts finished games from the engine's side.
type Outcomes struct {
	Wins   int
	Draws  int
	Losses int
}

// Games is the number of games played.
func (o Outcomes) Games() int { return o.Wins + o.Draws + o.Losses }

// ReachablePositions lists every distinct undecided board reachable from the
// empty board by alternating play with X first, on which `me` is to move.
func ReachablePositions(me domain.Cell) []domain.Board {
	seen := make(map[domain.Board]struct{})
	var out []domain.Board
	var walk func(b domain.Board, turn domain.Cell)
	walk = func(b domain.Board, turn domain.Cell) {
		if _, ok := seen[b]; ok {
			return
		}
		seen[b] = struct{}{}
		if b.IsWin(domain.X) || b.IsWin(domain.O) || b.IsFull() {
			return
		}
		if turn == me {
			out = append(out, b)
		}
		for _, i := range b.EmptyCells() {
			next := b
			next[i] = turn
			walk(next, turn.Opponent())
		}
	}
	walk(domain.Board{}, domain.X)
	return out
}

// CheckPosition compares ChooseMove on b against an unpruned minimax with the
// same depth scoring. It returns nil when the engine picked the lowest-index
// optimal cell.
func CheckPosition(b domain.Board, me domain.Cell) *Finding {
	got, err := ChooseMove(b, me)
	if err != nil {
		return &Finding{Board: b, Got: -1, Want: -1, Err: err}
	}
	want, bestScore := -1, 0
	for _, i := range b.EmptyCells() {
		next := b
		next[i] = me
		score := reference(next, me, 1, false)
		if want < 0 || score > bestScore {
			want, bestScore = i, score
		}
	}
	if got != want {
		return &Finding{Board: b, Got: got, Want: want}
	}
	return nil
}

// reference is plain minimax without pruning.
func reference(b domain.Board, me domain.Cell, depth int, maximizing bool) int {
	if b.IsWin(me) {
		return WinScore - depth
	}
	if b.IsWin(me.Opponent()) {
		return depth - WinScore
	}
	if b.IsFull() {
		return 0
	}
	side := me.Opponent()
	if maximizing {
		side = me
	}
	first := true
	best := 0
	for _, i := range b.EmptyCells() {
		next := b
		next[i] = side
		score := reference(next, me, depth+1, !maximizing)
		if first || (maximizing && score > best) || (!maximizing && score < best) {
			best, first = score, false
		}
	}
	return best
}

// PlayAll plays the engine as `me` against every possible sequence of opponent
// moves, starting from the empty board with X to move.
func PlayAll(me domain.Cell) (Outcomes, error) {
	var res Outcomes
	var play func(g domain.Game) error
	play = func(g domain.Game) error {
		if g.Over {
			switch g.Winner {
			case me:
				res.Wins++
			case domain.Empty:
				res.Draws++
			default:
				res.Losses++
			}
			return nil
		}
		if g.Turn == me {
			cell, err := ChooseMove(g.Board, me)
			if err != nil {
				return fmt.Errorf("choose on %s: %w", g.Board, err)
			}
			if err := g.Play(cell); err != nil {
				return fmt.Errorf("apply %d on %s: %w", cell, g.Board, err)
			}
			return play(g)
		}
		for _, i := range g.Board.EmptyCells() {
			next := g
			if err := next.Play(i); err != nil {
				return err
			}
			if err := play(next); err != nil {
				return err
			}
		}
		return nil
	}
	err := play(domain.New())
	return res, err
}
