package schedule

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Team is a zero-based team index. Division d owns the teams in
// [d*TeamsPerDivision, (d+1)*TeamsPerDivision).
type Team int

// String returns the one-based team number used in printed schedules.
func (t Team) String() string {
	return strconv.Itoa(int(t) + 1)
}

// Entrant is one side of a game: either a team or a bye.
type Entrant struct {
	team Team
	bye  bool
}

// Bye is the entrant standing in for a missing opponent.
var Bye = Entrant{bye: true}

// Play returns the entrant for team t.
func Play(t Team) Entrant {
	return Entrant{team: t}
}

// IsBye reports whether e is a bye.
func (e Entrant) IsBye() bool { return e.bye }

// Team returns the team behind e. ok is false for a bye.
func (e Entrant) Team() (t Team, ok bool) {
	return e.team, !e.bye
}

func (e Entrant) String() string {
	if e.bye {
		return "BYE"
	}
	return e.team.String()
}

// MarshalJSON encodes a team as its zero-based index and a bye as "BYE".
func (e Entrant) MarshalJSON() ([]byte, error) {
	if e.bye {
		return []byte(`"BYE"`), nil
	}
	return json.Marshal(int(e.team))
}

func (e *Entrant) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "BYE" {
			return fmt.Errorf("invalid entrant %q", s)
		}
		*e = Bye
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid entrant %s: %w", data, err)
	}
	if n < 0 {
		return fmt.Errorf("invalid entrant %d", n)
	}
	*e = Play(Team(n))
	return nil
}

// Game is a single pairing. At most one side is a bye, and a bye is
// always the home side.
type Game struct {
	Away Entrant `json:"away"`
	Home Entrant `json:"home"`
}

// HasBye reports whether one side of g is a bye.
func (g Game) HasBye() bool {
	return g.Away.bye || g.Home.bye
}

// Teams returns the real teams taking part in g.
func (g Game) Teams() []Team {
	teams := make([]Team, 0, 2)
	for _, e := range []Entrant{g.Away, g.Home} {
		if t, ok := e.Team(); ok {
			teams = append(teams, t)
		}
	}
	return teams
}

// Involves reports whether team t plays in g.
func (g Game) Involves(t Team) bool {
	return (!g.Away.bye && g.Away.team == t) || (!g.Home.bye && g.Home.team == t)
}

func (g Game) String() string {
	return fmt.Sprintf("%s at %s", g.Away, g.Home)
}

// Day is the ordered list of games played concurrently.
type Day []Game
