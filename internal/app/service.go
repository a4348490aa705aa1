package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jaminalder/tictactoe-ai/internal/domain"
	"github.com/jaminalder/tictactoe-ai/internal/engine"
	"github.com/zeromicro/go-zero/core/logx"
)

// Errors exposed by the service layer.
var (
	ErrNotFound    = errors.New("match not found")
	ErrNotYourTurn = errors.New("not your turn")
	ErrNotAPlayer  = errors.New("not a player")
	ErrInvalidMode = errors.New("invalid mode")
)

// Mode selects who plays the second seat.
type Mode string

const (
	ModeAI          Mode = "ai"
	ModeMultiplayer Mode = "multiplayer"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAI, ModeMultiplayer:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Audio cues attached to a finished round.
const (
	CueComputerWin = "computer-win"
	CueDraw        = "draw"
)

// RoundResult describes how a round ended. Round is zero until one has.
type RoundResult struct {
	Round  int
	Winner domain.Cell
	Draw   bool
	Cue    string
}

// MatchState is the in-memory state tracked per match.
type MatchState struct {
	ID       string
	Mode     Mode
	Computer domain.Cell
	Game     domain.Game
	Scores   domain.Tally
	Round    int
	Last     RoundResult
	Thinking bool
	X        string
	O        string
	Created  time.Time
	Updated  time.Time
}

// Seat returns the symbol playerID plays, or Empty for spectators. In ai mode
// nobody holds the computer's seat.
func (ms *MatchState) Seat(playerID string) domain.Cell {
	if playerID == "" {
		return domain.Empty
	}
	for _, side := range []domain.Cell{domain.X, domain.O} {
		if ms.Mode == ModeAI && side == ms.Computer {
			continue
		}
		if ms.holder(side) == playerID {
			return side
		}
	}
	return domain.Empty
}

func (ms *MatchState) holder(side domain.Cell) string {
	if side == domain.X {
		return ms.X
	}
	return ms.O
}

func (ms *MatchState) claim(side domain.Cell, playerID string) {
	if side == domain.X {
		ms.X = playerID
	} else {
		ms.O = playerID
	}
}

// Options configures a Service.
type Options struct {
	Mode          Mode
	Computer      domain.Cell
	ComputerDelay time.Duration
	ResetDelay    time.Duration
}

// DefaultOptions mirrors the browser game: the computer plays O, answers after
// half a second and the board clears a second after a round ends.
func DefaultOptions() Options {
	return Options{
		Mode:          ModeAI,
		Computer:      domain.O,
		ComputerDelay: 500 * time.Millisecond,
		ResetDelay:    time.Second,
	}
}

type subscriber struct {
	mu     sync.Mutex
	ch     chan MatchState
	closed bool
}

// send never blocks; it reports false when the buffer is full.
func (s *subscriber) send(ms MatchState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return true
	}
	select {
	case s.ch <- ms:
		return true
	default:
		return false
	}
}

func (s *subscriber) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

// Service manages matches and subscribers.
type Service struct {
	mu    sync.Mutex
	games map[string]*MatchState
	subs  map[string]map[*subscriber]struct{}
	opts  Options
	after func(time.Duration, func())
}

// NewService creates a service; zero fields of opts fall back to ai mode with
// the computer on O.
func NewService(opts Options) *Service {
	if opts.Mode == "" {
		opts.Mode = ModeAI
	}
	if opts.Computer != domain.X && opts.Computer != domain.O {
		opts.Computer = domain.O
	}
	return &Service{
		games: make(map[string]*MatchState),
		subs:  make(map[string]map[*subscriber]struct{}),
		opts:  opts,
		after: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

// DefaultMode is the mode used when a match is created without one.
func (s *Service) DefaultMode() Mode { return s.opts.Mode }

// CreateMatch creates and registers a new match. An empty mode uses the default.
func (s *Service) CreateMatch(mode Mode) (*MatchState, error) {
	if mode == "" {
		mode = s.opts.Mode
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	ms := &MatchState{
		ID:       uuid.NewString(),
		Mode:     mode,
		Computer: s.opts.Computer,
		Created:  now,
		Updated:  now,
	}
	s.games[ms.ID] = ms
	s.startRoundLocked(ms)
	logx.Infow("match created", logx.Field("match", ms.ID), logx.Field("mode", string(mode)))
	cp := *ms
	return &cp, nil
}

// Get returns a copy of the match state if present.
func (s *Service) Get(id string) (*MatchState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms, ok := s.games[id]
	if !ok {
		return nil, false
	}
	cp := *ms
	return &cp, true
}

// Join assigns a seat to the player if available; returns Empty for spectators.
func (s *Service) Join(id, playerID string) (domain.Cell, *MatchState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ms, ok := s.games[id]
	if !ok {
		return domain.Empty, nil, ErrNotFound
	}
	side := ms.Seat(playerID)
	if side == domain.Empty && playerID != "" {
		for _, c := range []domain.Cell{domain.X, domain.O} {
			if ms.Mode == ModeAI && c == ms.Computer {
				continue
			}
			if ms.holder(c) == "" {
				ms.claim(c, playerID)
				side = c
				break
			}
		}
	}
	ms.Updated = time.Now()
	cp := *ms
	return side, &cp, nil
}

// Play validates seat and turn, applies a move, lets the computer answer in ai
// mode, and broadcasts.
func (s *Service) Play(id, playerID string, cell int) (*MatchState, error) {
	s.mu.Lock()
	ms, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	seat := ms.Seat(playerID)
	if seat == domain.Empty {
		s.mu.Unlock()
		return nil, ErrNotAPlayer
	}
	if ms.Game.Over {
		s.mu.Unlock()
		return nil, domain.ErrGameOver
	}
	if seat != ms.Game.Turn {
		s.mu.Unlock()
		return nil, ErrNotYourTurn
	}
	if err := ms.Game.Play(cell); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	ms.Updated = time.Now()
	s.advanceLocked(ms)
	return s.publishAndUnlock(ms), nil
}

// SetMode switches the match mode and starts a fresh round; scores are kept.
func (s *Service) SetMode(id string, mode Mode) (*MatchState, error) {
	if _, err := ParseMode(string(mode)); err != nil {
		return nil, err
	}
	s.mu.Lock()
	ms, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	ms.Mode = mode
	s.startRoundLocked(ms)
	return s.publishAndUnlock(ms), nil
}

// ResetScores clears the tally and starts a fresh round.
func (s *Service) ResetScores(id string) (*MatchState, error) {
	s.mu.Lock()
	ms, ok := s.games[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	ms.Scores = domain.Tally{}
	ms.Last = RoundResult{}
	s.startRoundLocked(ms)
	return s.publishAndUnlock(ms), nil
}

// Subscribe registers a subscriber for a match. Returns a channel of state
// snapshots and an unsubscribe func; the channel closes when ctx ends.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan MatchState, func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.games[id]; !ok {
		return nil, func() {}, ErrNotFound
	}
	set := s.subs[id]
	if set == nil {
		set = make(map[*subscriber]struct{})
		s.subs[id] = set
	}
	sub := &subscriber{ch: make(chan MatchState, 8)}
	set[sub] = struct{}{}

	unsubOnce := &sync.Once{}
	unsub := func() {
		unsubOnce.Do(func() {
			s.mu.Lock()
			if set, ok := s.subs[id]; ok {
				delete(set, sub)
			}
			s.mu.Unlock()
			sub.close()
		})
	}
	go func() {
		<-ctx.Done()
		unsub()
	}()
	return sub.ch, unsub, nil
}

// advanceLocked runs whatever follows a move: round end, or the computer's reply.
func (s *Service) advanceLocked(ms *MatchState) {
	if ms.Game.Over {
		s.finishRoundLocked(ms)
		return
	}
	if ms.Mode == ModeAI && ms.Game.Turn == ms.Computer {
		s.scheduleComputerLocked(ms)
	}
}

func (s *Service) startRoundLocked(ms *MatchState) {
	ms.Round++
	ms.Game = domain.New()
	ms.Thinking = false
	ms.Updated = time.Now()
	if ms.Mode == ModeAI && ms.Game.Turn == ms.Computer {
		s.scheduleComputerLocked(ms)
	}
}

func (s *Service) scheduleComputerLocked(ms *MatchState) {
	if s.opts.ComputerDelay <= 0 {
		s.computerMoveLocked(ms)
		return
	}
	ms.Thinking = true
	id, round, moves := ms.ID, ms.Round, ms.Game.Moves
	s.after(s.opts.ComputerDelay, func() {
		s.mu.Lock()
		ms, ok := s.games[id]
		// the round moved on while we waited
		if !ok || ms.Round != round || ms.Game.Moves != moves || !ms.Thinking {
			s.mu.Unlock()
			return
		}
		s.computerMoveLocked(ms)
		s.publishAndUnlock(ms)
	})
}

func (s *Service) computerMoveLocked(ms *MatchState) {
	ms.Thinking = false
	d, err := engine.Analyze(ms.Game.Board, ms.Computer)
	if err != nil {
		logx.Errorf("match %s: computer move on %s: %v", ms.ID, ms.Game.Board, err)
		return
	}
	if err := ms.Game.Play(d.Cell); err != nil {
		logx.Errorf("match %s: apply computer move %d: %v", ms.ID, d.Cell, err)
		return
	}
	ms.Updated = time.Now()
	logx.Infow("computer move",
		logx.Field("match", ms.ID),
		logx.Field("round", ms.Round),
		logx.Field("cell", d.Cell),
		logx.Field("score", d.Score),
		logx.Field("immediate", d.Immediate),
		logx.Field("nodes", d.Nodes),
	)
	if ms.Game.Over {
		s.finishRoundLocked(ms)
	}
}

func (s *Service) finishRoundLocked(ms *MatchState) {
	ms.Scores.Record(ms.Game.Winner)
	res := RoundResult{Round: ms.Round, Winner: ms.Game.Winner, Draw: ms.Game.Draw()}
	switch {
	case res.Draw:
		res.Cue = CueDraw
	case ms.Mode == ModeAI && res.Winner == ms.Computer:
		res.Cue = CueComputerWin
	}
	ms.Last = res
	logx.Infow("round finished",
		logx.Field("match", ms.ID),
		logx.Field("round", ms.Round),
		logx.Field("winner", res.Winner.String()),
		logx.Field("draw", res.Draw),
		logx.Field("x", ms.Scores.X),
		logx.Field("o", ms.Scores.O),
		logx.Field("ties", ms.Scores.Ties),
	)

	if s.opts.ResetDelay <= 0 {
		s.startRoundLocked(ms)
		return
	}
	id, round := ms.ID, ms.Round
	s.after(s.opts.ResetDelay, func() {
		s.mu.Lock()
		ms, ok := s.games[id]
		if !ok || ms.Round != round {
			s.mu.Unlock()
			return
		}
		s.startRoundLocked(ms)
		s.publishAndUnlock(ms)
	})
}

// publishAndUnlock snapshots ms, releases the lock and fans the snapshot out.
// The caller must hold s.mu.
func (s *Service) publishAndUnlock(ms *MatchState) *MatchState {
	cp := *ms
	subs := s.copySubsLocked(ms.ID)
	s.mu.Unlock()

	// Fan-out; drop slow subscribers by closing and marking for deletion
	var toDrop []*subscriber
	for sub := range subs {
		if !sub.send(cp) {
			sub.close()
			toDrop = append(toDrop, sub)
		}
	}
	if len(toDrop) > 0 {
		s.mu.Lock()
		for _, sub := range toDrop {
			if set, ok := s.subs[cp.ID]; ok {
				delete(set, sub)
			}
		}
		s.mu.Unlock()
	}
	return &cp
}

func (s *Service) copySubsLocked(id string) map[*subscriber]struct{} {
	out := make(map[*subscriber]struct{})
	if set, ok := s.subs[id]; ok {
		for k := range set {
			out[k] = struct{}{}
		}
	}
	return out
}
