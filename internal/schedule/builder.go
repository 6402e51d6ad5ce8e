package schedule

import "fmt"

// builder appends days round by round. interRound and interMatch track how
// much of the inter-division schedule has been consumed, either by coupling
// odd teams during intra-division rounds or by pure inter-division days.
type builder struct {
	p    Params
	days []Day

	interRound int
	interMatch int
}

func newBuilder(p Params) *builder {
	return &builder{
		p:    p,
		days: make([]Day, 0, max(p.ExpectedDays(), 0)),
	}
}

func (b *builder) build() ([]Day, error) {
	for round := 0; round < b.p.GamesVsDivision; round++ {
		var err error
		if b.p.TeamsPerDivision%2 == 0 {
			err = b.evenRound(round)
		} else {
			err = b.oddRound(round)
		}
		if err != nil {
			return nil, err
		}
	}
	if err := b.interDivisionRounds(); err != nil {
		return nil, err
	}
	return b.days, nil
}

// wheel is the range of team slots that rotate around a pinned team in the
// circle method. Stepping wraps at both ends.
type wheel struct {
	lo, hi int
}

func (w wheel) step(t1, t2 int) (int, int) {
	t1--
	if t1 < w.lo {
		t1 = w.hi
	}
	t2++
	if t2 > w.hi {
		t2 = w.lo
	}
	return t1, t2
}

// evenRound emits T-1 days. Team offset is pinned and meets offset+m on
// day m; the remaining teams pair off moving outwards from offset+m.
func (b *builder) evenRound(round int) error {
	t := b.p.TeamsPerDivision
	perDay := b.p.Divisions * t / 2

	for m := 1; m < t; m++ {
		day := make(Day, 0, perDay)
		for div := 0; div < b.p.Divisions; div++ {
			offset := div * t
			w := wheel{lo: offset + 1, hi: offset + t - 1}

			day = append(day, balance(offset, offset+m, round))

			t1, t2 := offset+m, offset+m
			for i := 1; i < t/2; i++ {
				t1, t2 = w.step(t1, t2)
				day = append(day, balance(t1, t2, round))
			}
		}
		if err := b.push(day, perDay); err != nil {
			return err
		}
	}
	return nil
}

// oddRound emits T days. Each division gets a phantom team at
// offset+T; whoever meets it has the day off. While inter-division rounds
// remain, the two teams that would sit out are paired with each other
// instead and the phantom drops out of the wheel.
func (b *builder) oddRound(round int) error {
	t := b.p.TeamsPerDivision
	byes := b.p.Divisions < 2 || b.interRound >= b.p.GamesVsNonDivision

	size := b.p.Divisions * t / 2
	if byes {
		size++
	}

	for m := 1; m <= t; m++ {
		day := make(Day, size)
		n := 0

		var teamA, teamB int
		if !byes {
			teamA, teamB = b.couple(m)
			g := balance(teamA, teamB, b.interRound)
			if teamA == 0 {
				day[0] = g
				n = 1
			} else {
				day[size-1] = g
			}
		}

		for div := 0; div < b.p.Divisions; div++ {
			offset := div * t
			phantom := offset + t

			w := wheel{lo: offset + 1, hi: phantom}
			if !byes {
				w = wheel{lo: offset, hi: phantom - 1}
			}

			var t2 int
			switch {
			case byes:
				t2 = offset + m
				day[n] = pairOrBye(offset, t2, phantom, round)
				n++
			case div == 0:
				t2 = teamA
			default:
				t2 = teamB
			}

			t1 := t2
			for i := 1; i < (t+1)/2; i++ {
				t1, t2 = w.step(t1, t2)
				day[n] = pairOrBye(t1, t2, phantom, round)
				n++
			}
		}

		want := size
		if !byes && m > 1 {
			want = size - 1
		}
		if n != want {
			return fmt.Errorf("%w: round %d day %d filled %d of %d games",
				ErrInternalInvariant, round, m, n, want)
		}
		if err := b.push(day, size); err != nil {
			return err
		}
	}

	if !byes {
		b.interMatch++
		if b.interMatch >= t {
			b.interRound++
			b.interMatch = 0
		}
	}
	return nil
}

// couple returns the cross-division pairing that replaces both byes on
// day m of a coupled round.
func (b *builder) couple(m int) (int, int) {
	t := b.p.TeamsPerDivision
	return m - 1, (m-1+b.interMatch)%t + t
}

// interDivisionRounds emits the inter-division days not already consumed by
// coupling: team i meets team (i+interMatch) mod T of the other division.
func (b *builder) interDivisionRounds() error {
	t := b.p.TeamsPerDivision
	rounds := b.p.interRounds()

	for ; b.interRound < rounds; b.interRound, b.interMatch = b.interRound+1, 0 {
		for ; b.interMatch < t; b.interMatch++ {
			day := make(Day, t)
			for i := 0; i < t; i++ {
				day[i] = balance(i, (i+b.interMatch)%t+t, b.interRound)
			}
			if err := b.push(day, t); err != nil {
				return err
			}
		}
	}
	return nil
}

// push appends day after checking its size and that no team plays twice.
func (b *builder) push(day Day, want int) error {
	if len(day) != want {
		return fmt.Errorf("%w: day %d has %d games, want %d",
			ErrInternalInvariant, len(b.days)+1, len(day), want)
	}
	seen := make(map[Team]bool, 2*len(day))
	for _, g := range day {
		if g.Away.IsBye() {
			return fmt.Errorf("%w: day %d has a bye on the away side",
				ErrInternalInvariant, len(b.days)+1)
		}
		for _, team := range g.Teams() {
			if seen[team] {
				return fmt.Errorf("%w: team %s plays twice on day %d",
					ErrInternalInvariant, team, len(b.days)+1)
			}
			seen[team] = true
		}
	}
	b.days = append(b.days, day)
	return nil
}

// pairOrBye builds the game between slots t1 and t2, where the phantom slot
// turns the other team's game into a bye.
func pairOrBye(t1, t2, phantom, round int) Game {
	switch phantom {
	case t1:
		return Game{Away: Play(Team(t2)), Home: Bye}
	case t2:
		return Game{Away: Play(Team(t1)), Home: Bye}
	}
	return balance(t1, t2, round)
}
