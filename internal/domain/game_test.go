package domain

import (
	"testing"
)

// helper to apply a sequence of moves
func playMoves(t *testing.T, g *Game, moves []int) {
	t.Helper()
	for i, m := range moves {
		if err := g.Play(m); err != nil {
			t.Fatalf("move %d (%d) failed: %v", i, m, err)
		}
	}
}

func TestNewGameInitialState(t *testing.T) {
	g := New()
	if g.Turn != X {
		t.Fatalf("expected initial turn X, got %v", g.Turn)
	}
	if g.Moves != 0 {
		t.Fatalf("expected 0 moves, got %d", g.Moves)
	}
	if g.Over {
		t.Fatalf("expected game not over")
	}
	if g.Winner != Empty {
		t.Fatalf("expected no winner, got %v", g.Winner)
	}
	for i, c := range g.Board {
		if c != Empty {
			t.Fatalf("expected empty board, cell %d = %v", i, c)
		}
	}
}

func TestPlayOutOfBounds(t *testing.T) {
	g := New()
	for _, m := range []int{-1, 9, 42} {
		if err := g.Play(m); err != ErrOutOfBounds {
			t.Fatalf("expected ErrOutOfBounds for %d, got %v", m, err)
		}
	}
	if g.Moves != 0 {
		t.Fatalf("rejected moves must not count, got %d", g.Moves)
	}
}

func TestPlayOccupied(t *testing.T) {
	g := New()
	if err := g.Play(0); err != nil {
		t.Fatalf("first move failed: %v", err)
	}
	if err := g.Play(0); err != ErrOccupied {
		t.Fatalf("expected ErrOccupied on same cell, got %v", err)
	}
	if g.Turn != O {
		t.Fatalf("turn must not flip on a rejected move, got %v", g.Turn)
	}
}

func TestTurnFlipsAfterValidMove(t *testing.T) {
	g := New()
	if err := g.Play(4); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if g.Turn != O {
		t.Fatalf("expected turn to flip to O, got %v", g.Turn)
	}
	if err := g.Play(0); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if g.Turn != X {
		t.Fatalf("expected turn to flip back to X, got %v", g.Turn)
	}
}

func TestWinConditionsForX(t *testing.T) {
	for _, line := range WinPatterns {
		g := New()
		// O fillers: first two cells off the line
		var fill []int
		for i := 0; i < 9 && len(fill) < 2; i++ {
			if i != line[0] && i != line[1] && i != line[2] {
				fill = append(fill, i)
			}
		}
		playMoves(t, &g, []int{line[0], fill[0], line[1], fill[1], line[2]})
		if !g.Over || g.Winner != X {
			t.Fatalf("expected X to win on line %v; over=%v winner=%v", line, g.Over, g.Winner)
		}
		if g.Moves != 5 {
			t.Fatalf("expected 5 moves to win, got %d", g.Moves)
		}
	}
}

func TestWinConditionsForO(t *testing.T) {
	for _, line := range WinPatterns {
		g := New()
		// X fillers must not complete a line of their own
		var fill []int
		for _, i := range []int{0, 1, 2, 3, 5, 6, 7, 8, 4} {
			if i == line[0] || i == line[1] || i == line[2] {
				continue
			}
			b := Board{}
			for _, f := range fill {
				b[f] = X
			}
			b[i] = X
			if b.IsWin(X) {
				continue
			}
			fill = append(fill, i)
			if len(fill) == 3 {
				break
			}
		}
		playMoves(t, &g, []int{fill[0], line[0], fill[1], line[1], fill[2], line[2]})
		if !g.Over || g.Winner != O {
			t.Fatalf("expected O to win on line %v; over=%v winner=%v", line, g.Over, g.Winner)
		}
		if g.Moves != 6 {
			t.Fatalf("expected 6 moves to win for O, got %d", g.Moves)
		}
	}
}

func TestDrawNoWinner(t *testing.T) {
	g := New()
	// X O X / O X X / O X O
	playMoves(t, &g, []int{0, 1, 2, 3, 4, 8, 5, 6, 7})
	if !g.Over {
		t.Fatalf("expected game over on draw")
	}
	if g.Winner != Empty || !g.Draw() {
		t.Fatalf("expected no winner on draw, got %v", g.Winner)
	}
	if g.Moves != 9 {
		t.Fatalf("expected 9 moves on draw, got %d", g.Moves)
	}
}

func TestWinOnLastMoveIsNotADraw(t *testing.T) {
	g := New()
	// X fills 8 last and completes the 0-4-8 diagonal
	playMoves(t, &g, []int{0, 1, 2, 3, 4, 5, 7, 6, 8})
	if g.Winner != X || g.Draw() {
		t.Fatalf("expected X win on ninth move, winner=%v", g.Winner)
	}
}

func TestGameOverBlocksFurtherMoves(t *testing.T) {
	g := New()
	playMoves(t, &g, []int{0, 3, 1, 4, 2})
	if !g.Over || g.Winner != X {
		t.Fatalf("expected X win before extra move")
	}
	if err := g.Play(8); err != ErrGameOver {
		t.Fatalf("expected ErrGameOver, got %v", err)
	}
}

func TestTallyRecord(t *testing.T) {
	var tl Tally
	tl.Record(X)
	tl.Record(O)
	tl.Record(O)
	tl.Record(Empty)
	if tl.X != 1 || tl.O != 2 || tl.Ties != 1 || tl.Total() != 4 {
		t.Fatalf("unexpected tally %+v", tl)
	}
}
