package web

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/google/uuid"
	"github.com/jaminalder/tictactoe-ai/internal/app"
	"github.com/jaminalder/tictactoe-ai/internal/domain"
	"github.com/zeromicro/go-zero/core/logx"
)

type templates struct {
	base  *template.Template
	game  *template.Template
	board *template.Template
	index *template.Template
}

func funcs() template.FuncMap {
	return template.FuncMap{
		"cellSymbol": func(c domain.Cell) string { return c.String() },
		"cellClass": func(c domain.Cell) string {
			switch c {
			case domain.X:
				return "x"
			case domain.O:
				return "o"
			default:
				return "empty"
			}
		},
	}
}

func loadTemplates() *templates {
	base := template.Must(template.New("base").Funcs(funcs()).Parse(`<!doctype html><html><head>
<meta charset="utf-8"/>
<title>Tic Tac Toe</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<script src="https://unpkg.com/htmx.org/dist/ext/sse.js"></script>
</head><body>{{template "content" .}}</body></html>`))
	index := template.Must(template.Must(base.Clone()).New("content").Parse(`<h1>Tic Tac Toe</h1>
<form action="/match" method="post">
  <select name="mode">
    <option value="ai">Play the computer</option>
    <option value="multiplayer">Two players</option>
  </select>
  <button>Create</button>
</form>`))
	game := template.Must(template.Must(base.Clone()).New("content").Parse(`
<div hx-ext="sse" sse-connect="/match/{{.ID}}/events">
  <div sse-swap="board" hx-target="#board" hx-swap="outerHTML">{{.BoardHTML}}</div>
</div>`))
	board := template.Must(template.New("board_only").Funcs(funcs()).Parse(boardTemplate))
	return &templates{base: base, game: game, board: board, index: index}
}

func renderTemplate(t *template.Template, name string, data any) []byte {
	var buf bytes.Buffer
	var err error
	if name == "" {
		err = t.Execute(&buf, data)
	} else {
		err = t.ExecuteTemplate(&buf, name, data)
	}
	if err != nil {
		logx.Errorf("render %s: %v", t.Name(), err)
	}
	return buf.Bytes()
}

const boardTemplate = `
<div id="board" data-round="{{.Round}}"{{if .Cue}} data-cue="{{.Cue}}" data-cue-round="{{.CueRound}}"{{end}}>
  {{if .Error}}
  <div class="alert">{{.Error}}</div>
  {{end}}
  <div class="scores">
    X <span id="score-x">{{.Scores.X}}</span>
    O <span id="score-o">{{.Scores.O}}</span>
    Ties <span id="score-tie">{{.Scores.Ties}}</span>
  </div>
  <div class="status">{{.Status}}</div>
  {{if .LastResult}}<div class="last">{{.LastResult}}</div>{{end}}
  <div class="grid">
  {{range $i, $c := .Board}}
    <form hx-post="/match/{{$.ID}}/play" hx-target="#board" hx-swap="outerHTML" method="post">
      <input type="hidden" name="cell" value="{{$i}}">
      <button type="submit" class="cell {{cellClass $c}}">{{cellSymbol $c}}</button>
    </form>
  {{end}}
  </div>
  <div class="controls">
    <form hx-post="/match/{{.ID}}/mode" hx-target="#board" hx-swap="outerHTML" method="post">
      <input type="hidden" name="mode" value="ai">
      <button type="submit"{{if eq .Mode "ai"}} disabled{{end}}>AI mode</button>
    </form>
    <form hx-post="/match/{{.ID}}/mode" hx-target="#board" hx-swap="outerHTML" method="post">
      <input type="hidden" name="mode" value="multiplayer">
      <button type="submit"{{if eq .Mode "multiplayer"}} disabled{{end}}>Multiplayer</button>
    </form>
    <form hx-post="/match/{{.ID}}/reset" hx-target="#board" hx-swap="outerHTML" method="post">
      <button type="submit">Reset scores</button>
    </form>
  </div>
</div>
`

// boardView is the data behind the board fragment.
type boardView struct {
	ID         string
	Mode       string
	Round      int
	Board      domain.Board
	Scores     domain.Tally
	Status     string
	LastResult string
	Cue        string
	CueRound   int
	Error      string
}

func newBoardView(ms app.MatchState, errMsg string) boardView {
	v := boardView{
		ID:     ms.ID,
		Mode:   string(ms.Mode),
		Round:  ms.Round,
		Board:  ms.Game.Board,
		Scores: ms.Scores,
		Error:  errMsg,
	}
	switch {
	case ms.Game.Over && ms.Game.Draw():
		v.Status = "Draw"
	case ms.Game.Over:
		v.Status = ms.Game.Winner.String() + " wins"
	case ms.Thinking:
		v.Status = "Computer is thinking"
	default:
		v.Status = ms.Game.Turn.String() + " to move"
	}
	if last := ms.Last; last.Round > 0 {
		if last.Draw {
			v.LastResult = "Last round: draw"
		} else {
			v.LastResult = "Last round: " + last.Winner.String() + " won"
		}
		v.Cue, v.CueRound = last.Cue, last.Round
	}
	return v
}

// Helper to set cookie
func ensurePlayerCookie(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie("player_id"); err == nil && c.Value != "" {
		return c.Value
	}
	v := uuid.NewString()
	http.SetCookie(w, &http.Cookie{Name: "player_id", Value: v, Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	return v
}
