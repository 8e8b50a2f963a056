package lichess

import (
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// Player is one side of a Lichess game.
type Player struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Rating int    `json:"rating,omitempty"`
	AI     int    `json:"ai,omitempty"`
}

// Game is the subset of a Lichess game export the coach uses.
type Game struct {
	ID        string    `json:"id"`
	Rated     bool      `json:"rated"`
	Speed     string    `json:"speed"`
	Status    string    `json:"status"`
	Winner    string    `json:"winner,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	White     Player    `json:"white"`
	Black     Player    `json:"black"`
	Opening   string    `json:"opening,omitempty"`
	PGN       string    `json:"pgn"`
}

func parsePlayer(r gjson.Result) Player {
	p := Player{
		ID:     r.Get("user.id").String(),
		Name:   r.Get("user.name").String(),
		Rating: int(r.Get("rating").Int()),
		AI:     int(r.Get("aiLevel").Int()),
	}
	if p.Name == "" && p.AI > 0 {
		p.Name = "Stockfish level " + r.Get("aiLevel").String()
	}
	return p
}

func parseGame(r gjson.Result) Game {
	g := Game{
		ID:      r.Get("id").String(),
		Rated:   r.Get("rated").Bool(),
		Speed:   r.Get("speed").String(),
		Status:  r.Get("status").String(),
		Winner:  r.Get("winner").String(),
		White:   parsePlayer(r.Get("players.white")),
		Black:   parsePlayer(r.Get("players.black")),
		Opening: r.Get("opening.name").String(),
		PGN:     r.Get("pgn").String(),
	}
	if ms := r.Get("createdAt"); ms.Exists() {
		g.CreatedAt = time.UnixMilli(ms.Int()).UTC()
	}
	return g
}

// Plays reports whether username played either side, ignoring case.
func (g Game) Plays(username string) bool {
	return g.White.matches(username) || g.Black.matches(username)
}

// Opponent returns the side username did not play.
func (g Game) Opponent(username string) Player {
	if g.White.matches(username) {
		return g.Black
	}
	return g.White
}

// Side returns "white" or "black" for username, or "" if they did not play.
func (g Game) Side(username string) string {
	switch {
	case g.White.matches(username):
		return "white"
	case g.Black.matches(username):
		return "black"
	}
	return ""
}

// Result describes the outcome from username's point of view: "won",
// "lost" or "drawn". Unfinished games report their status.
func (g Game) Result(username string) string {
	switch {
	case g.Winner == "":
		if g.Status == "draw" || g.Status == "stalemate" {
			return "drawn"
		}
		return g.Status
	case g.Winner == "white" && g.White.matches(username),
		g.Winner == "black" && g.Black.matches(username):
		return "won"
	default:
		return "lost"
	}
}

func (p Player) matches(username string) bool {
	u := strings.TrimSpace(username)
	return u != "" && (strings.EqualFold(p.ID, u) || strings.EqualFold(p.Name, u))
}
