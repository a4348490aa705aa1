package engine

import (
	"testing"

	"github.com/jaminalder/tictactoe-ai/internal/domain"
)

func TestReachablePositions(t *testing.T) {
	for _, me := range []domain.Cell{x, o} {
		positions := ReachablePositions(me)
		if len(positions) == 0 {
			t.Fatalf("expected positions for %v", me)
		}
		for _, b := range positions {
			xs, os := b.Count(x), b.Count(o)
			if me == x && xs != os {
				t.Fatalf("X to move needs equal counts, got %s", b)
			}
			if me == o && xs != os+1 {
				t.Fatalf("O to move needs one extra X, got %s", b)
			}
			if b.IsWin(x) || b.IsWin(o) || b.IsFull() {
				t.Fatalf("decided board listed: %s", b)
			}
		}
	}
}

func TestChooseMoveMatchesReferenceEverywhere(t *testing.T) {
	for _, me := range []domain.Cell{x, o} {
		for _, b := range ReachablePositions(me) {
			if f := CheckPosition(b, me); f != nil {
				t.Fatalf("searching for %v: %s", me, f)
			}
		}
	}
}

func TestEngineNeverLoses(t *testing.T) {
	for _, me := range []domain.Cell{x, o} {
		res, err := PlayAll(me)
		if err != nil {
			t.Fatalf("play all as %v: %v", me, err)
		}
		if res.Losses != 0 {
			t.Fatalf("engine as %v lost %d of %d games", me, res.Losses, res.Games())
		}
		if res.Games() == 0 || res.Draws == 0 {
			t.Fatalf("expected some drawn games as %v, got %+v", me, res)
		}
	}
}

func TestReferenceAgreesWithMinimax(t *testing.T) {
	b := domain.Board{
		x, e, e,
		e, o, e,
		e, e, x,
	}
	for _, i := range b.EmptyCells() {
		next := b
		next[i] = o
		if got, want := Minimax(next, o, 1, false), reference(next, o, 1, false); got != want {
			t.Fatalf("cell %d: pruned %d, reference %d", i, got, want)
		}
	}
}
