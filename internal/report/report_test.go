package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/derekprior/rrsched/internal/schedule"
)

func mustNew(t *testing.T, p schedule.Params) *schedule.Schedule {
	t.Helper()
	s, err := schedule.New(p)
	if err != nil {
		t.Fatalf("schedule.New(%+v) error: %v", p, err)
	}
	return s
}

func TestWriteSchedule(t *testing.T) {
	t.Run("single game", func(t *testing.T) {
		s := mustNew(t, schedule.Params{Divisions: 1, TeamsPerDivision: 2, GamesVsDivision: 1, Seed: 1})
		var buf bytes.Buffer
		if err := WriteSchedule(&buf, s); err != nil {
			t.Fatal(err)
		}
		want := "TEAMS:\n  DIV A: 1 2\n\nDAY 1:\n2 at 1\n\n"
		if buf.String() != want {
			t.Errorf("got:\n%q\nwant:\n%q", buf.String(), want)
		}
	})

	t.Run("two divisions", func(t *testing.T) {
		s := mustNew(t, schedule.Params{Divisions: 2, TeamsPerDivision: 2, GamesVsDivision: 1, GamesVsNonDivision: 1, Seed: 3})
		var buf bytes.Buffer
		if err := WriteSchedule(&buf, s); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if !strings.HasPrefix(out, "TEAMS:\n  DIV A: 1 2\n  DIV B: 3 4\n\n") {
			t.Errorf("unexpected team block:\n%s", out)
		}
		if got := strings.Count(out, "DAY "); got != s.NumDays() {
			t.Errorf("printed %d days, want %d", got, s.NumDays())
		}
		if !strings.Contains(out, "DAY 3:\n") {
			t.Errorf("missing DAY 3 header:\n%s", out)
		}
	})

	t.Run("byes", func(t *testing.T) {
		s := mustNew(t, schedule.Params{Divisions: 1, TeamsPerDivision: 3, GamesVsDivision: 1, Seed: 7})
		var buf bytes.Buffer
		if err := WriteSchedule(&buf, s); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if got := strings.Count(out, " at BYE\n"); got != 3 {
			t.Errorf("printed %d byes, want 3:\n%s", got, out)
		}
		if strings.Contains(out, "BYE at") {
			t.Errorf("bye printed on the away side:\n%s", out)
		}
	})
}

func TestWriteStats(t *testing.T) {
	s := mustNew(t, schedule.Params{Divisions: 1, TeamsPerDivision: 2, GamesVsDivision: 1, Seed: 1})
	var buf bytes.Buffer
	if err := WriteStats(&buf, s.Stats()); err != nil {
		t.Fatal(err)
	}

	want := "########## Schedule Stats ##########\n\n" +
		"NUM AWAY \\ HOME GAMES VS OPPONENT CROSSTABLE:\n" +
		"A\\H 1 2\n" +
		" 1  0 0\n" +
		" 2  1 0\n" +
		"\n" +
		"NUM GAMES VS OPPONENT HALF-CROSSTABLE:\n" +
		"  1 2\n" +
		"1\n" +
		"2 1\n" +
		"\n" +
		"Team 1 plays 0 away games and 1 home games\n" +
		"Team 2 plays 1 away games and 0 home games\n" +
		"1 days of games\n"
	if buf.String() != want {
		t.Errorf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}
