package schedule

import "errors"

// MaxDivisions is the largest division count the bye coupling supports.
const MaxDivisions = 2

var (
	// ErrUnsupportedParameters is returned for parameter records the
	// builder cannot schedule, such as more than two divisions.
	ErrUnsupportedParameters = errors.New("unsupported schedule parameters")

	// ErrInternalInvariant signals a day that failed the builder's own
	// consistency checks. It indicates a bug, not bad input.
	ErrInternalInvariant = errors.New("schedule invariant violated")
)

// Params describes the league to schedule.
type Params struct {
	Divisions          int `json:"divisions"`
	TeamsPerDivision   int `json:"teams_per_division"`
	GamesVsDivision    int `json:"games_vs_division"`
	GamesVsNonDivision int `json:"games_vs_non_division"`

	// Seed drives the day shuffle. A negative seed is replaced by a clock
	// reading; the value actually used is reported by Schedule.Seed.
	Seed int64 `json:"seed"`
}

// NumTeams returns the number of teams across all divisions.
func (p Params) NumTeams() int {
	return p.Divisions * p.TeamsPerDivision
}

// Division returns the division that owns team t.
func (p Params) Division(t Team) int {
	if p.TeamsPerDivision <= 0 {
		return 0
	}
	return int(t) / p.TeamsPerDivision
}

// interRounds returns the number of inter-division rounds to schedule.
func (p Params) interRounds() int {
	if p.Divisions < 2 {
		return 0
	}
	return p.GamesVsNonDivision
}

// CoupledRounds returns how many intra-division rounds pair their odd teams
// across divisions instead of giving them byes. Each coupled round consumes
// one inter-division offset, and Gx rounds of T offsets are available.
func (p Params) CoupledRounds() int {
	if p.TeamsPerDivision%2 == 0 || p.Divisions < 2 {
		return 0
	}
	return min(p.GamesVsDivision, p.interRounds()*p.TeamsPerDivision)
}

// ExpectedDays returns the number of days a schedule for p contains.
func (p Params) ExpectedDays() int {
	t := p.TeamsPerDivision
	if t <= 0 {
		return 0
	}
	perRound := t
	if t%2 == 0 {
		perRound = t - 1
	}
	return p.GamesVsDivision*perRound + p.interRounds()*t - p.CoupledRounds()
}

// ExpectedByes returns the number of bye games a schedule for p contains.
func (p Params) ExpectedByes() int {
	t := p.TeamsPerDivision
	if t%2 == 0 || p.Divisions < 1 {
		return 0
	}
	return (p.GamesVsDivision - p.CoupledRounds()) * t * p.Divisions
}
