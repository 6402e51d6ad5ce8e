package strategy

import (
	"reflect"
	"testing"

	"github.com/derekprior/rrsched/internal/schedule"
)

func TestGet(t *testing.T) {
	t.Run("known strategies", func(t *testing.T) {
		tests := []struct {
			name          string
			vsDivision    int
			vsNonDivision int
		}{
			{"division_weighted", 2, 1},
			{"single_round_robin", 1, 1},
			{"double_round_robin", 2, 2},
		}
		for _, tt := range tests {
			s, err := Get(tt.name)
			if err != nil {
				t.Fatalf("Get(%q) error: %v", tt.name, err)
			}
			if s.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", s.Name(), tt.name)
			}
			vd, vn := s.Rounds()
			if vd != tt.vsDivision || vn != tt.vsNonDivision {
				t.Errorf("%s Rounds() = (%d, %d), want (%d, %d)", tt.name, vd, vn, tt.vsDivision, tt.vsNonDivision)
			}
		}
	})

	t.Run("unknown strategy", func(t *testing.T) {
		if _, err := Get("swiss"); err == nil {
			t.Error("expected error for unknown strategy")
		}
	})

	t.Run("names sorted", func(t *testing.T) {
		want := []string{"division_weighted", "double_round_robin", "single_round_robin"}
		if got := Names(); !reflect.DeepEqual(got, want) {
			t.Errorf("Names() = %v, want %v", got, want)
		}
	})
}

func TestDivisionWeightedSchedule(t *testing.T) {
	s, _ := Get("division_weighted")
	vd, vn := s.Rounds()
	sched, err := schedule.New(schedule.Params{
		Divisions:          2,
		TeamsPerDivision:   5,
		GamesVsDivision:    vd,
		GamesVsNonDivision: vn,
		Seed:               1,
	})
	if err != nil {
		t.Fatalf("schedule.New() error: %v", err)
	}
	st := sched.Stats()

	t.Run("each team plays 13 games", func(t *testing.T) {
		// 4 division opponents twice plus 5 non-division opponents once.
		for i, m := range st.Teams {
			if m.Games() != 13 {
				t.Errorf("team %d plays %d games, want 13", i+1, m.Games())
			}
		}
	})

	t.Run("intra-division teams play each other twice", func(t *testing.T) {
		for a := schedule.Team(0); a < 5; a++ {
			for b := a + 1; b < 5; b++ {
				if n := st.Between(a, b); n != 2 {
					t.Errorf("%s vs %s = %d games, want 2", a, b, n)
				}
			}
		}
	})

	t.Run("inter-division teams play each other once", func(t *testing.T) {
		for a := schedule.Team(0); a < 5; a++ {
			for b := schedule.Team(5); b < 10; b++ {
				if n := st.Between(a, b); n != 1 {
					t.Errorf("%s vs %s = %d games, want 1", a, b, n)
				}
			}
		}
	})

	t.Run("no byes", func(t *testing.T) {
		// Five coupling offsets cover both intra-division rounds.
		if sched.Byes() != 0 {
			t.Errorf("byes = %d, want 0", sched.Byes())
		}
	})
}
