// Package engine picks moves for the computer player.
//
// The search is a depth-aware minimax with alpha-beta pruning. Scores are taken
// from the searching side's point of view: a win found d plies below the root is
// worth 10-d, a loss d-10, a draw 0, so quicker wins and slower losses rank higher.
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/jaminalder/tictactoe-ai/internal/domain"
)

// WinScore is the value of a win at depth zero.
const WinScore = 10

// Errors returned when ChooseMove is called on a board it cannot move on.
var (
	ErrPrecondition = errors.New("engine: precondition violated")
	ErrNoEmptyCell  = fmt.Errorf("%w: no empty cell", ErrPrecondition)
	ErrTerminal     = fmt.Errorf("%w: round already decided", ErrPrecondition)
	ErrSymbol       = fmt.Errorf("%w: symbol must be X or O", ErrPrecondition)
)

// Decision describes how a move was picked.
type Decision struct {
	Cell      int
	Score     int
	Immediate bool // picked by the win-in-one scan
	Nodes     int  // positions visited by the full search
}

// ChooseMove returns the cell the side `me` should play on b.
// The board is passed by value; the caller's copy is never touched.
func ChooseMove(b domain.Board, me domain.Cell) (int, error) {
	d, err := Analyze(b, me)
	if err != nil {
		return -1, err
	}
	return d.Cell, nil
}

// Analyze runs the win-in-one scan and then the full search, returning the
// lowest-index cell with the best score.
func Analyze(b domain.Board, me domain.Cell) (Decision, error) {
	if me != domain.X && me != domain.O {
		return Decision{Cell: -1}, ErrSymbol
	}
	if b.IsWin(domain.X) || b.IsWin(domain.O) {
		return Decision{Cell: -1}, ErrTerminal
	}
	if b.IsFull() {
		return Decision{Cell: -1}, ErrNoEmptyCell
	}

	s := &search{board: b, me: me, opp: me.Opponent()}

	for i := range s.board {
		if s.board[i] != domain.Empty {
			continue
		}
		s.board[i] = me
		won := s.board.IsWin(me)
		s.board[i] = domain.Empty
		if won {
			return Decision{Cell: i, Score: WinScore - 1, Immediate: true}, nil
		}
	}

	best := Decision{Cell: -1, Score: math.MinInt}
	for i := range s.board {
		if s.board[i] != domain.Empty {
			continue
		}
		s.board[i] = me
		score := s.minimax(1, false, math.MinInt, math.MaxInt)
		s.board[i] = domain.Empty
		if score > best.Score {
			best.Cell, best.Score = i, score
		}
	}
	best.Nodes = s.nodes
	return best, nil
}

// Minimax scores b for `me` with a full window. It is the recursion ChooseMove
// runs below each root candidate.
func Minimax(b domain.Board, me domain.Cell, depth int, maximizing bool) int {
	s := &search{board: b, me: me, opp: me.Opponent()}
	return s.minimax(depth, maximizing, math.MinInt, math.MaxInt)
}

type search struct {
	board domain.Board
	me    domain.Cell
	opp   domain.Cell
	nodes int
}

func (s *search) minimax(depth int, maximizing bool, alpha, beta int) int {
	s.nodes++
	if s.board.IsWin(s.me) {
		return WinScore - depth
	}
	if s.board.IsWin(s.opp) {
		return depth - WinScore
	}
	if s.board.IsFull() {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for i := range s.board {
			if s.board[i] != domain.Empty {
				continue
			}
			s.board[i] = s.me
			score := s.minimax(depth+1, false, alpha, beta)
			s.board[i] = domain.Empty
			best = max(best, score)
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.MaxInt
	for i := range s.board {
		if s.board[i] != domain.Empty {
			continue
		}
		s.board[i] = s.opp
		score := s.minimax(depth+1, true, alpha, beta)
		s.board[i] = domain.Empty
		best = min(best, score)
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return best
}
