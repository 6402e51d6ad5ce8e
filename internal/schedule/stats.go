package schedule

// TeamMetrics holds per-team schedule statistics.
type TeamMetrics struct {
	Away int `json:"away"`
	Home int `json:"home"`
	Byes int `json:"byes"`
}

// Games returns the number of real games the team plays.
func (m TeamMetrics) Games() int { return m.Away + m.Home }

// Stats summarizes who plays whom and where.
type Stats struct {
	// Meetings[a][h] counts games with a away at h.
	Meetings [][]int `json:"meetings"`

	// Opponents[i][j], j < i, counts games between i and j regardless of
	// venue.
	Opponents [][]int `json:"opponents"`

	Teams []TeamMetrics `json:"teams"`
	Days  int           `json:"days"`
}

// Stats tallies the schedule.
func (s *Schedule) Stats() Stats {
	n := s.NumTeams()
	st := Stats{
		Meetings:  make([][]int, n),
		Opponents: make([][]int, n),
		Teams:     make([]TeamMetrics, n),
		Days:      len(s.days),
	}
	for i := 0; i < n; i++ {
		st.Meetings[i] = make([]int, n)
		st.Opponents[i] = make([]int, i)
	}

	for _, day := range s.days {
		for _, g := range day {
			away, _ := g.Away.Team()
			home, ok := g.Home.Team()
			if !ok {
				st.Teams[away].Byes++
				continue
			}
			st.Meetings[away][home]++
			if away < home {
				st.Opponents[home][away]++
			} else {
				st.Opponents[away][home]++
			}
			st.Teams[away].Away++
			st.Teams[home].Home++
		}
	}
	return st
}

// Between returns how many times teams a and b meet.
func (st Stats) Between(a, b Team) int {
	if a == b {
		return 0
	}
	if a < b {
		a, b = b, a
	}
	return st.Opponents[a][b]
}
