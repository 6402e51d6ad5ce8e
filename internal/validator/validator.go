package validator

import (
	"fmt"
	"strconv"

	"github.com/derekprior/rrsched/internal/config"
	"github.com/derekprior/rrsched/internal/excel"
	"github.com/derekprior/rrsched/internal/schedule"
	"github.com/xuri/excelize/v2"
)

// Violation represents a problem found in an exported schedule.
type Violation struct {
	Row     int    // worksheet row, 0 when the problem spans the sheet
	Type    string // "error" or "warning"
	Message string
}

// Validate reads the Schedule sheet of a workbook and checks it against the
// league described by cfg.
func Validate(cfg *config.Config, path string) ([]Violation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	roster := cfg.Roster()
	games, violations, err := readGames(f, roster)
	if err != nil {
		return nil, fmt.Errorf("reading games: %w", err)
	}
	return append(violations, check(cfg.Params(), roster, games)...), nil
}

func check(p schedule.Params, roster *config.Roster, games []parsedGame) []Violation {
	var violations []Violation

	// Hard constraints
	violations = append(violations, checkAwayByes(games)...)
	violations = append(violations, checkEvenByes(p, games)...)
	violations = append(violations, checkOneGamePerDay(roster, games)...)
	violations = append(violations, checkMeetings(p, roster, games)...)

	// Soft constraints
	violations = append(violations, checkHomeAwayBalance(p, roster, games)...)
	violations = append(violations, checkDayCount(p, games)...)

	return violations
}

type parsedGame struct {
	Row  int
	Day  int
	Away schedule.Entrant
	Home schedule.Entrant
}

func readGames(f *excelize.File, roster *config.Roster) ([]parsedGame, []Violation, error) {
	rows, err := f.GetRows(excel.SheetSchedule)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", excel.SheetSchedule, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s is empty", excel.SheetSchedule)
	}

	var games []parsedGame
	var violations []Violation
	for i, row := range rows {
		if i == 0 || len(row) == 0 || row[0] == "" {
			continue
		}
		rowNum := i + 1
		if len(row) < len(excel.ScheduleHeaders) {
			violations = append(violations, Violation{
				Row: rowNum, Type: "error",
				Message: fmt.Sprintf("row has %d columns, want %d", len(row), len(excel.ScheduleHeaders)),
			})
			continue
		}

		day, err := strconv.Atoi(row[0])
		if err != nil || day < 1 {
			violations = append(violations, Violation{
				Row: rowNum, Type: "error",
				Message: fmt.Sprintf("invalid day %q", row[0]),
			})
			continue
		}

		away, okAway := parseEntrant(roster, row[2])
		home, okHome := parseEntrant(roster, row[3])
		if !okAway || !okHome {
			name := row[2]
			if okAway {
				name = row[3]
			}
			violations = append(violations, Violation{
				Row: rowNum, Type: "error",
				Message: fmt.Sprintf("unknown team %q", name),
			})
			continue
		}
		games = append(games, parsedGame{Row: rowNum, Day: day, Away: away, Home: home})
	}
	return games, violations, nil
}

func parseEntrant(roster *config.Roster, name string) (schedule.Entrant, bool) {
	if name == config.ByeName {
		return schedule.Bye, true
	}
	t, ok := roster.Lookup(name)
	if !ok {
		return schedule.Entrant{}, false
	}
	return schedule.Play(t), true
}

func checkAwayByes(games []parsedGame) []Violation {
	var violations []Violation
	for _, g := range games {
		if g.Away.IsBye() {
			violations = append(violations, Violation{
				Row:     g.Row,
				Type:    "error",
				Message: fmt.Sprintf("day %d has BYE on the away side", g.Day),
			})
		}
	}
	return violations
}

func checkEvenByes(p schedule.Params, games []parsedGame) []Violation {
	if p.TeamsPerDivision%2 != 0 {
		return nil
	}
	var violations []Violation
	for _, g := range games {
		if g.Home.IsBye() && !g.Away.IsBye() {
			violations = append(violations, Violation{
				Row:     g.Row,
				Type:    "error",
				Message: fmt.Sprintf("day %d has a bye with an even number of teams per division", g.Day),
			})
		}
	}
	return violations
}

func checkOneGamePerDay(roster *config.Roster, games []parsedGame) []Violation {
	type teamDay struct {
		team schedule.Team
		day  int
	}
	seen := make(map[teamDay]int)

	var violations []Violation
	for _, g := range games {
		for _, t := range (schedule.Game{Away: g.Away, Home: g.Home}).Teams() {
			key := teamDay{t, g.Day}
			if first, ok := seen[key]; ok {
				violations = append(violations, Violation{
					Row:     g.Row,
					Type:    "error",
					Message: fmt.Sprintf("%s plays twice on day %d (rows %d and %d)", roster.TeamName(t), g.Day, first, g.Row),
				})
				continue
			}
			seen[key] = g.Row
		}
	}
	return violations
}

func checkMeetings(p schedule.Params, roster *config.Roster, games []parsedGame) []Violation {
	n := p.NumTeams()
	counts := make([][]int, n)
	for i := range counts {
		counts[i] = make([]int, n)
	}
	for _, g := range games {
		a, okA := g.Away.Team()
		h, okH := g.Home.Team()
		if !okA || !okH || int(a) >= n || int(h) >= n || a == h {
			continue
		}
		counts[a][h]++
		counts[h][a]++
	}

	var violations []Violation
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			want := p.GamesVsDivision
			kind := "division"
			if p.Division(schedule.Team(a)) != p.Division(schedule.Team(b)) {
				want = p.GamesVsNonDivision
				kind = "non-division"
			}
			if counts[a][b] != want {
				violations = append(violations, Violation{
					Type: "error",
					Message: fmt.Sprintf("%s and %s meet %d times, want %d %s games",
						roster.TeamName(schedule.Team(a)), roster.TeamName(schedule.Team(b)), counts[a][b], want, kind),
				})
			}
		}
	}
	return violations
}

func checkHomeAwayBalance(p schedule.Params, roster *config.Roster, games []parsedGame) []Violation {
	n := p.NumTeams()
	home := make([]int, n)
	away := make([]int, n)
	for _, g := range games {
		a, okA := g.Away.Team()
		h, okH := g.Home.Team()
		if !okA || !okH || int(a) >= n || int(h) >= n {
			continue
		}
		away[a]++
		home[h]++
	}

	var violations []Violation
	for t := 0; t < n; t++ {
		if diff := home[t] - away[t]; diff > 1 || diff < -1 {
			violations = append(violations, Violation{
				Type:    "warning",
				Message: fmt.Sprintf("%s has %d home and %d away games", roster.TeamName(schedule.Team(t)), home[t], away[t]),
			})
		}
	}
	return violations
}

func checkDayCount(p schedule.Params, games []parsedGame) []Violation {
	days := make(map[int]bool)
	for _, g := range games {
		days[g.Day] = true
	}
	if want := p.ExpectedDays(); len(days) != want {
		return []Violation{{
			Type:    "warning",
			Message: fmt.Sprintf("schedule has %d days, want %d", len(days), want),
		}}
	}
	return nil
}
