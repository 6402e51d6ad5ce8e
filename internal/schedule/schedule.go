// Package schedule builds round-robin league schedules for one or two
// divisions.
//
// Intra-division rounds use the circle method. When divisions have an odd
// number of teams, the team that would sit out in each division is paired
// with its counterpart across divisions for as long as inter-division games
// remain, so byes only appear once those games run out. Remaining
// inter-division games follow as whole days, and the finished list of days
// is shuffled with a seeded generator.
package schedule

import "fmt"

// Schedule is an immutable list of game days.
type Schedule struct {
	params Params
	seed   int64
	days   []Day
}

// New builds the schedule described by p. It rejects more than
// MaxDivisions divisions; other validation is left to the caller.
func New(p Params) (*Schedule, error) {
	if p.Divisions > MaxDivisions {
		return nil, fmt.Errorf("%w: %d divisions requested, at most %d supported",
			ErrUnsupportedParameters, p.Divisions, MaxDivisions)
	}

	days, err := newBuilder(p).build()
	if err != nil {
		return nil, err
	}

	seed := resolveSeed(p.Seed)
	shuffleDays(days, seed)

	p.Seed = seed
	return &Schedule{params: p, seed: seed, days: days}, nil
}

// Params returns the parameters the schedule was built from, with the
// resolved seed in place of a negative one.
func (s *Schedule) Params() Params { return s.params }

// Seed returns the seed used to shuffle the days. Passing it back through
// Params.Seed reproduces the schedule exactly.
func (s *Schedule) Seed() int64 { return s.seed }

// NumDays returns the number of game days.
func (s *Schedule) NumDays() int { return len(s.days) }

// NumTeams returns the number of teams across all divisions.
func (s *Schedule) NumTeams() int { return s.params.NumTeams() }

// Day returns a copy of the games on day i (zero-based).
func (s *Schedule) Day(i int) Day {
	day := make(Day, len(s.days[i]))
	copy(day, s.days[i])
	return day
}

// Days returns a copy of every day.
func (s *Schedule) Days() []Day {
	days := make([]Day, len(s.days))
	for i := range s.days {
		days[i] = s.Day(i)
	}
	return days
}

// Byes returns the number of bye games in the schedule.
func (s *Schedule) Byes() int {
	n := 0
	for _, day := range s.days {
		for _, g := range day {
			if g.HasBye() {
				n++
			}
		}
	}
	return n
}
