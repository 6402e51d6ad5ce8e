package schedule

import (
	"encoding/json"
	"testing"
)

func TestBalance(t *testing.T) {
	tests := []struct {
		a, b, r    int
		away, home Team
	}{
		{0, 1, 0, 1, 0},
		{0, 2, 0, 0, 2},
		{2, 0, 0, 0, 2},
		{0, 2, 1, 2, 0},
		{3, 6, 0, 6, 3},
		{3, 6, 1, 3, 6},
	}
	for _, tt := range tests {
		got := balance(tt.a, tt.b, tt.r)
		want := Game{Away: Play(tt.away), Home: Play(tt.home)}
		if got != want {
			t.Errorf("balance(%d, %d, %d) = %s, want %s", tt.a, tt.b, tt.r, got, want)
		}
	}
}

func TestStats(t *testing.T) {
	s := &Schedule{
		params: Params{Divisions: 1, TeamsPerDivision: 3, GamesVsDivision: 1},
		days: []Day{
			{g(1, 0), g(2, -1)},
			{g(0, 2), g(1, -1)},
			{g(0, -1), g(2, 1)},
		},
	}
	st := s.Stats()

	t.Run("meetings", func(t *testing.T) {
		if st.Meetings[1][0] != 1 || st.Meetings[0][1] != 0 {
			t.Errorf("meetings[1][0] = %d, meetings[0][1] = %d", st.Meetings[1][0], st.Meetings[0][1])
		}
		if st.Meetings[2][1] != 1 {
			t.Errorf("meetings[2][1] = %d, want 1", st.Meetings[2][1])
		}
	})

	t.Run("half crosstable", func(t *testing.T) {
		if len(st.Opponents[0]) != 0 || len(st.Opponents[2]) != 2 {
			t.Fatalf("opponent rows have lengths %d and %d", len(st.Opponents[0]), len(st.Opponents[2]))
		}
		for _, p := range [][2]Team{{0, 1}, {0, 2}, {1, 2}} {
			if st.Between(p[0], p[1]) != 1 {
				t.Errorf("Between(%s, %s) = %d, want 1", p[0], p[1], st.Between(p[0], p[1]))
			}
		}
	})

	t.Run("team metrics", func(t *testing.T) {
		want := []TeamMetrics{
			{Away: 1, Home: 1, Byes: 1},
			{Away: 1, Home: 1, Byes: 1},
			{Away: 1, Home: 1, Byes: 1},
		}
		for i, m := range st.Teams {
			if m != want[i] {
				t.Errorf("team %d metrics = %+v, want %+v", i+1, m, want[i])
			}
		}
	})

	if st.Days != 3 {
		t.Errorf("days = %d, want 3", st.Days)
	}
}

func TestGameJSON(t *testing.T) {
	data, err := json.Marshal(Day{g(4, 0), g(2, -1)})
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `[{"away":4,"home":0},{"away":2,"home":"BYE"}]`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}

	var day Day
	if err := json.Unmarshal(data, &day); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if day[0] != g(4, 0) || day[1] != g(2, -1) {
		t.Errorf("decoded %v", day)
	}

	var e Entrant
	if err := json.Unmarshal([]byte(`"HOME"`), &e); err == nil {
		t.Error("expected error for unknown entrant string")
	}
}

func TestExpectedCounts(t *testing.T) {
	tests := []struct {
		p          Params
		days, byes int
	}{
		{Params{Divisions: 1, TeamsPerDivision: 4, GamesVsDivision: 1}, 3, 0},
		{Params{Divisions: 2, TeamsPerDivision: 4, GamesVsDivision: 1, GamesVsNonDivision: 1}, 7, 0},
		{Params{Divisions: 1, TeamsPerDivision: 3, GamesVsDivision: 1}, 3, 3},
		{Params{Divisions: 2, TeamsPerDivision: 3, GamesVsDivision: 1, GamesVsNonDivision: 1}, 5, 0},
		{Params{Divisions: 2, TeamsPerDivision: 3, GamesVsDivision: 2, GamesVsNonDivision: 1}, 7, 0},
		{Params{Divisions: 2, TeamsPerDivision: 3, GamesVsDivision: 4, GamesVsNonDivision: 1}, 12, 6},
		{Params{Divisions: 2, TeamsPerDivision: 5, GamesVsDivision: 2}, 10, 20},
	}
	for _, tt := range tests {
		if got := tt.p.ExpectedDays(); got != tt.days {
			t.Errorf("%+v ExpectedDays() = %d, want %d", tt.p, got, tt.days)
		}
		if got := tt.p.ExpectedByes(); got != tt.byes {
			t.Errorf("%+v ExpectedByes() = %d, want %d", tt.p, got, tt.byes)
		}
	}
}
