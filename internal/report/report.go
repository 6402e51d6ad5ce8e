// Package report writes schedules and their statistics as plain text.
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/derekprior/rrsched/internal/schedule"
)

// WriteSchedule prints the team listing followed by every day of games.
// Teams are printed one-based and a missing opponent as BYE.
func WriteSchedule(w io.Writer, s *schedule.Schedule) error {
	bw := bufio.NewWriter(w)
	p := s.Params()

	fmt.Fprintln(bw, "TEAMS:")
	for d := 0; d < p.Divisions; d++ {
		fmt.Fprintf(bw, "  DIV %c:", 'A'+d)
		offset := d * p.TeamsPerDivision
		for i := 0; i < p.TeamsPerDivision; i++ {
			fmt.Fprintf(bw, " %s", schedule.Team(offset+i))
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	for i := 0; i < s.NumDays(); i++ {
		fmt.Fprintf(bw, "DAY %d:\n", i+1)
		for _, g := range s.Day(i) {
			fmt.Fprintln(bw, g)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

// WriteStats prints the away/home crosstable, the opponent half-crosstable
// and per-team totals.
func WriteStats(w io.Writer, st schedule.Stats) error {
	bw := bufio.NewWriter(w)
	n := len(st.Teams)

	fmt.Fprint(bw, "########## Schedule Stats ##########\n\n")
	fmt.Fprintln(bw, `NUM AWAY \ HOME GAMES VS OPPONENT CROSSTABLE:`)
	fmt.Fprint(bw, `A\H`)
	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, " %d", i+1)
	}
	fmt.Fprintln(bw)
	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, " %d ", i+1)
		for j := 0; j < n; j++ {
			fmt.Fprintf(bw, " %d", st.Meetings[i][j])
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	fmt.Fprintln(bw, "NUM GAMES VS OPPONENT HALF-CROSSTABLE:")
	fmt.Fprint(bw, " ")
	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, " %d", i+1)
	}
	fmt.Fprintln(bw)
	for i := 0; i < n; i++ {
		fmt.Fprintf(bw, "%d", i+1)
		for j := 0; j < i; j++ {
			fmt.Fprintf(bw, " %d", st.Opponents[i][j])
		}
		fmt.Fprintln(bw)
	}
	fmt.Fprintln(bw)

	for i, m := range st.Teams {
		fmt.Fprintf(bw, "Team %d plays %d away games and %d home games\n", i+1, m.Away, m.Home)
	}
	fmt.Fprintf(bw, "%d days of games\n", st.Days)
	return bw.Flush()
}
