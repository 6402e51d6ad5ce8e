package config

import (
	"strconv"

	"github.com/derekprior/rrsched/internal/schedule"
)

// Roster maps team indices to display names. Unnamed leagues use the
// one-based team numbers and division letters of the text report.
type Roster struct {
	divisions []string
	teams     []string
	index     map[string]schedule.Team
}

// Roster returns the display names for the configured league.
func (c *Config) Roster() *Roster {
	return NewRoster(c.Params(), c.Divisions)
}

// NewRoster builds a roster for p, taking names from divs where present.
func NewRoster(p schedule.Params, divs []Division) *Roster {
	r := &Roster{
		divisions: make([]string, p.Divisions),
		teams:     make([]string, 0, p.NumTeams()),
		index:     make(map[string]schedule.Team, p.NumTeams()),
	}
	for d := 0; d < p.Divisions; d++ {
		r.divisions[d] = string(rune('A' + d))
		if d < len(divs) && divs[d].Name != "" {
			r.divisions[d] = divs[d].Name
		}
		for i := 0; i < p.TeamsPerDivision; i++ {
			team := schedule.Team(d*p.TeamsPerDivision + i)
			name := team.String()
			if d < len(divs) && i < len(divs[d].Teams) {
				name = divs[d].Teams[i]
			}
			r.teams = append(r.teams, name)
			r.index[name] = team
		}
	}
	return r
}

// TeamName returns the display name of team t.
func (r *Roster) TeamName(t schedule.Team) string {
	if int(t) < 0 || int(t) >= len(r.teams) {
		return strconv.Itoa(int(t) + 1)
	}
	return r.teams[t]
}

// EntrantName returns the display name of e, or "BYE".
func (r *Roster) EntrantName(e schedule.Entrant) string {
	if t, ok := e.Team(); ok {
		return r.TeamName(t)
	}
	return ByeName
}

// DivisionName returns the display name of division d.
func (r *Roster) DivisionName(d int) string {
	if d < 0 || d >= len(r.divisions) {
		return string(rune('A' + d))
	}
	return r.divisions[d]
}

// Lookup returns the team with the given display name.
func (r *Roster) Lookup(name string) (schedule.Team, bool) {
	t, ok := r.index[name]
	return t, ok
}

// Teams returns every team name in index order.
func (r *Roster) Teams() []string {
	return append([]string(nil), r.teams...)
}
