package web

import (
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/jaminalder/tictactoe-ai/internal/app"
	"github.com/zeromicro/go-zero/core/logx"
)

type scoresDTO struct {
	X    int `json:"x"`
	O    int `json:"o"`
	Ties int `json:"ties"`
}

type lastDTO struct {
	Round  int    `json:"round"`
	Winner string `json:"winner"`
	Draw   bool   `json:"draw"`
	Cue    string `json:"cue,omitempty"`
}

type matchDTO struct {
	ID       string    `json:"id"`
	Mode     string    `json:"mode"`
	Computer string    `json:"computer,omitempty"`
	Round    int       `json:"round"`
	Board    [9]string `json:"board"`
	Turn     string    `json:"turn"`
	Over     bool      `json:"over"`
	Winner   string    `json:"winner"`
	Moves    int       `json:"moves"`
	Thinking bool      `json:"thinking"`
	Scores   scoresDTO `json:"scores"`
	Last     *lastDTO  `json:"last,omitempty"`
}

type wsMessage struct {
	Type  string    `json:"type"`
	Match *matchDTO `json:"match,omitempty"`
}

func toDTO(ms app.MatchState) *matchDTO {
	dto := &matchDTO{
		ID:       ms.ID,
		Mode:     string(ms.Mode),
		Round:    ms.Round,
		Turn:     ms.Game.Turn.String(),
		Over:     ms.Game.Over,
		Winner:   ms.Game.Winner.String(),
		Moves:    ms.Game.Moves,
		Thinking: ms.Thinking,
		Scores:   scoresDTO{X: ms.Scores.X, O: ms.Scores.O, Ties: ms.Scores.Ties},
	}
	if ms.Mode == app.ModeAI {
		dto.Computer = ms.Computer.String()
	}
	for i, c := range ms.Game.Board {
		dto.Board[i] = c.String()
	}
	if ms.Last.Round > 0 {
		dto.Last = &lastDTO{
			Round:  ms.Last.Round,
			Winner: ms.Last.Winner.String(),
			Draw:   ms.Last.Draw,
			Cue:    ms.Last.Cue,
		}
	}
	return dto
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	body, err := sonic.Marshal(data)
	if err != nil {
		logx.Errorf("encode response: %v", err)
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
