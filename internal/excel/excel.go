package excel

import (
	"fmt"
	"strings"

	"github.com/derekprior/rrsched/internal/config"
	"github.com/derekprior/rrsched/internal/schedule"
	"github.com/xuri/excelize/v2"
)

// Sheet names written by Generate and read back by the validator.
const (
	SheetLeague   = "League"
	SheetSchedule = "Schedule"
	SheetStats    = "Stats"
)

// maxSheetName is Excel's limit on sheet name length.
const maxSheetName = 31

// ScheduleHeaders are the column headers of the Schedule sheet.
var ScheduleHeaders = []string{"Day", "Game", "Away", "Home"}

type styles struct {
	header int
	cell   int
	center int
}

func newStyles(f *excelize.File) styles {
	var st styles
	st.header, _ = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 16, Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	st.cell, _ = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 16, Family: "Arial"},
	})
	st.center, _ = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 16, Family: "Arial"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	return st
}

// Generate creates a workbook with the league summary, the full schedule,
// the statistics and one sheet per team.
func Generate(s *schedule.Schedule, roster *config.Roster) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetDefaultFont("Arial")
	st := newStyles(f)

	if err := writeLeagueSheet(f, st, s, roster); err != nil {
		return nil, fmt.Errorf("writing league sheet: %w", err)
	}
	if err := writeScheduleSheet(f, st, s, roster); err != nil {
		return nil, fmt.Errorf("writing schedule sheet: %w", err)
	}
	if err := writeStatsSheet(f, st, s.Stats(), roster); err != nil {
		return nil, fmt.Errorf("writing stats sheet: %w", err)
	}
	if err := writeTeamSheets(f, st, s, roster); err != nil {
		return nil, fmt.Errorf("writing team sheets: %w", err)
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

func writeHeaders(f *excelize.File, st styles, sheet string, row int, headers []string) {
	for i, h := range headers {
		f.SetCellValue(sheet, cellRef(i+1, row), h)
	}
	if st.header != 0 {
		f.SetCellStyle(sheet, cellRef(1, row), cellRef(len(headers), row), st.header)
	}
}

func writeLeagueSheet(f *excelize.File, st styles, s *schedule.Schedule, roster *config.Roster) error {
	sheet := SheetLeague
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	p := s.Params()

	writeHeaders(f, st, sheet, 1, []string{"Setting", "Value"})
	rows := []struct {
		label string
		value any
	}{
		{"Divisions", p.Divisions},
		{"Teams per division", p.TeamsPerDivision},
		{"Games vs division", p.GamesVsDivision},
		{"Games vs non-division", p.GamesVsNonDivision},
		{"Seed", fmt.Sprint(s.Seed())},
		{"Days", s.NumDays()},
		{"Byes", s.Byes()},
	}
	for i, r := range rows {
		row := i + 2
		f.SetCellValue(sheet, cellRef(1, row), r.label)
		f.SetCellValue(sheet, cellRef(2, row), r.value)
	}
	if st.cell != 0 {
		f.SetCellStyle(sheet, "A2", cellRef(2, len(rows)+1), st.cell)
	}

	// Division rosters sit to the right of the settings.
	for d := 0; d < p.Divisions; d++ {
		col := d + 4
		f.SetCellValue(sheet, cellRef(col, 1), roster.DivisionName(d))
		if st.header != 0 {
			f.SetCellStyle(sheet, cellRef(col, 1), cellRef(col, 1), st.header)
		}
		for i := 0; i < p.TeamsPerDivision; i++ {
			team := schedule.Team(d*p.TeamsPerDivision + i)
			f.SetCellValue(sheet, cellRef(col, i+2), roster.TeamName(team))
		}
		f.SetColWidth(sheet, colLetter(col), colLetter(col), 22)
	}

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "B", 22)
	return nil
}

func writeScheduleSheet(f *excelize.File, st styles, s *schedule.Schedule, roster *config.Roster) error {
	sheet := SheetSchedule
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	writeHeaders(f, st, sheet, 1, ScheduleHeaders)

	row := 2
	for d := 0; d < s.NumDays(); d++ {
		for gi, g := range s.Day(d) {
			f.SetCellValue(sheet, cellRef(1, row), d+1)
			f.SetCellValue(sheet, cellRef(2, row), gi+1)
			f.SetCellValue(sheet, cellRef(3, row), roster.EntrantName(g.Away))
			f.SetCellValue(sheet, cellRef(4, row), roster.EntrantName(g.Home))
			if st.center != 0 {
				f.SetCellStyle(sheet, cellRef(1, row), cellRef(len(ScheduleHeaders), row), st.center)
			}
			row++
		}
	}

	f.SetColWidth(sheet, "A", "B", 10)
	f.SetColWidth(sheet, "C", "D", 24)

	// Byes get a light red fill.
	lastRow := row - 1
	if lastRow < 2 {
		return nil
	}
	redFill, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#FFC7CE"}},
		Font: &excelize.Font{Size: 16, Family: "Arial"},
	})
	return f.SetConditionalFormat(sheet, fmt.Sprintf("C2:D%d", lastRow), []excelize.ConditionalFormatOptions{
		{
			Type:     "formula",
			Criteria: `C2="BYE"`,
			Format:   &redFill,
		},
	})
}

func writeStatsSheet(f *excelize.File, st styles, stats schedule.Stats, roster *config.Roster) error {
	sheet := SheetStats
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	n := len(stats.Teams)

	// Away x home crosstable.
	f.SetCellValue(sheet, "A1", `Away \ Home`)
	if st.header != 0 {
		f.SetCellStyle(sheet, "A1", "A1", st.header)
	}
	for j := 0; j < n; j++ {
		f.SetCellValue(sheet, cellRef(j+2, 1), roster.TeamName(schedule.Team(j)))
	}
	if st.header != 0 && n > 0 {
		f.SetCellStyle(sheet, "B1", cellRef(n+1, 1), st.header)
	}
	for i := 0; i < n; i++ {
		row := i + 2
		f.SetCellValue(sheet, cellRef(1, row), roster.TeamName(schedule.Team(i)))
		for j := 0; j < n; j++ {
			f.SetCellValue(sheet, cellRef(j+2, row), stats.Meetings[i][j])
		}
		if st.center != 0 {
			f.SetCellStyle(sheet, cellRef(2, row), cellRef(n+1, row), st.center)
		}
	}

	// Per-team totals below the crosstable.
	top := n + 3
	writeHeaders(f, st, sheet, top, []string{"Team", "Away", "Home", "Byes", "Games"})
	for i, m := range stats.Teams {
		row := top + i + 1
		f.SetCellValue(sheet, cellRef(1, row), roster.TeamName(schedule.Team(i)))
		f.SetCellValue(sheet, cellRef(2, row), m.Away)
		f.SetCellValue(sheet, cellRef(3, row), m.Home)
		f.SetCellValue(sheet, cellRef(4, row), m.Byes)
		f.SetCellValue(sheet, cellRef(5, row), m.Games())
	}
	f.SetCellValue(sheet, cellRef(1, top+n+2), "Days")
	f.SetCellValue(sheet, cellRef(2, top+n+2), stats.Days)

	f.SetColWidth(sheet, "A", "A", 24)
	if n > 0 {
		f.SetColWidth(sheet, "B", colLetter(n+1), 14)
	}
	return nil
}

func writeTeamSheets(f *excelize.File, st styles, s *schedule.Schedule, roster *config.Roster) error {
	headers := []string{"Day", "Opponent", "Home/Away"}
	used := make(map[string]bool, s.NumTeams())
	for t := 0; t < s.NumTeams(); t++ {
		team := schedule.Team(t)
		sheet := uniqueSheetName(TeamSheetName(roster.TeamName(team)), used)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("team %s: %w", roster.TeamName(team), err)
		}
		writeHeaders(f, st, sheet, 1, headers)

		row := 2
		for d := 0; d < s.NumDays(); d++ {
			for _, g := range s.Day(d) {
				if !g.Involves(team) {
					continue
				}
				opponent, homeAway := g.Home, "Away"
				if h, ok := g.Home.Team(); ok && h == team {
					opponent, homeAway = g.Away, "Home"
				}
				if opponent.IsBye() {
					homeAway = "Bye"
				}
				f.SetCellValue(sheet, cellRef(1, row), d+1)
				f.SetCellValue(sheet, cellRef(2, row), roster.EntrantName(opponent))
				f.SetCellValue(sheet, cellRef(3, row), homeAway)
				if st.cell != 0 {
					f.SetCellStyle(sheet, cellRef(1, row), cellRef(len(headers), row), st.cell)
				}
				row++
			}
		}

		widths := map[string]float64{"A": 10, "B": 24, "C": 14}
		for col, w := range widths {
			f.SetColWidth(sheet, col, col, w)
		}
	}
	return nil
}

// TeamSheetName returns the sheet name used for a team. Excel limits names
// to 31 characters and forbids a handful of symbols; names that collide
// with the fixed sheets get a "Team " prefix.
func TeamSheetName(team string) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, team)
	switch strings.ToLower(name) {
	case strings.ToLower(SheetLeague), strings.ToLower(SheetSchedule), strings.ToLower(SheetStats), "sheet1":
		name = "Team " + name
	}
	if r := []rune(name); len(r) > maxSheetName {
		name = string(r[:maxSheetName])
	}
	return name
}

// uniqueSheetName returns name, or name with a " (n)" suffix when an earlier
// team already took it. Excel compares sheet names case-insensitively.
func uniqueSheetName(name string, used map[string]bool) string {
	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		base := []rune(name)
		if limit := maxSheetName - len(suffix); len(base) > limit {
			base = base[:limit]
		}
		candidate = string(base) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", colLetter(col), row)
}

func colLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
