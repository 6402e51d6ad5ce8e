package validator

import (
	"strings"
	"testing"

	"github.com/derekprior/rrsched/internal/config"
	"github.com/derekprior/rrsched/internal/excel"
	"github.com/derekprior/rrsched/internal/schedule"
	"github.com/xuri/excelize/v2"
)

const fullTestConfig = `
strategy: division_weighted
divisions:
  - name: American
    teams: [Angels, Astros, Orioles, Mariners, Royals]
  - name: National
    teams: [Cubs, Padres, Phillies, Pirates, Rockies]
rng: 2026
`

func writeWorkbook(t *testing.T) (*config.Config, string) {
	t.Helper()
	cfg, err := config.LoadFromBytes([]byte(fullTestConfig))
	if err != nil {
		t.Fatalf("LoadFromBytes() error: %v", err)
	}
	s, err := schedule.New(cfg.Params())
	if err != nil {
		t.Fatalf("schedule.New() error: %v", err)
	}
	f, err := excel.Generate(s, cfg.Roster())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	path := t.TempDir() + "/schedule.xlsx"
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs error: %v", err)
	}
	return cfg, path
}

func TestValidateGeneratedSchedule(t *testing.T) {
	cfg, path := writeWorkbook(t)

	violations, err := Validate(cfg, path)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	t.Run("no hard constraint violations", func(t *testing.T) {
		for _, v := range violations {
			if v.Type == "error" {
				t.Errorf("hard violation at row %d: %s", v.Row, v.Message)
			}
		}
	})

	t.Run("day count matches", func(t *testing.T) {
		for _, v := range violations {
			if strings.Contains(v.Message, "days, want") {
				t.Errorf("unexpected day count warning: %s", v.Message)
			}
		}
	})

	t.Run("reports soft constraint warnings", func(t *testing.T) {
		warnings := 0
		for _, v := range violations {
			if v.Type == "warning" {
				warnings++
				t.Logf("WARNING: %s", v.Message)
			}
		}
		t.Logf("Total warnings: %d", warnings)
	})
}

func TestValidateTamperedSchedule(t *testing.T) {
	cfg, path := writeWorkbook(t)

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile error: %v", err)
	}
	// Rows 2 and 3 are both on day 1. Make row 3's home team repeat row
	// 2's away team, and rename a team in row 4.
	away, _ := f.GetCellValue(excel.SheetSchedule, "C2")
	f.SetCellValue(excel.SheetSchedule, "D3", away)
	f.SetCellValue(excel.SheetSchedule, "C4", "Yankees")
	if err := f.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	f.Close()

	violations, err := Validate(cfg, path)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}

	var twice, unknown, meetings bool
	for _, v := range violations {
		if v.Type != "error" {
			continue
		}
		switch {
		case strings.Contains(v.Message, "plays twice on day 1"):
			twice = true
			if v.Row != 3 {
				t.Errorf("double play reported at row %d, want 3", v.Row)
			}
		case strings.Contains(v.Message, `unknown team "Yankees"`):
			unknown = true
			if v.Row != 4 {
				t.Errorf("unknown team reported at row %d, want 4", v.Row)
			}
		case strings.Contains(v.Message, "meet"):
			meetings = true
		}
	}
	if !twice {
		t.Error("expected a double play error")
	}
	if !unknown {
		t.Error("expected an unknown team error")
	}
	if !meetings {
		t.Error("expected a meeting count error")
	}
}

func TestValidateMissingSheet(t *testing.T) {
	cfg, err := config.LoadFromBytes([]byte(fullTestConfig))
	if err != nil {
		t.Fatal(err)
	}
	f := excelize.NewFile()
	path := t.TempDir() + "/empty.xlsx"
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	if _, err := Validate(cfg, path); err == nil {
		t.Error("expected error for workbook without a Schedule sheet")
	}
}

// game builds a parsed game; -1 stands for a bye.
func game(row, day, away, home int) parsedGame {
	entrant := func(i int) schedule.Entrant {
		if i < 0 {
			return schedule.Bye
		}
		return schedule.Play(schedule.Team(i))
	}
	return parsedGame{Row: row, Day: day, Away: entrant(away), Home: entrant(home)}
}

func roster(p schedule.Params) *config.Roster {
	return config.NewRoster(p, nil)
}

func TestCheckAwayByes(t *testing.T) {
	t.Run("no violation with bye at home", func(t *testing.T) {
		v := checkAwayByes([]parsedGame{game(2, 1, 0, -1)})
		if len(v) != 0 {
			t.Errorf("expected 0 violations, got %d: %v", len(v), v)
		}
	})

	t.Run("violation with bye away", func(t *testing.T) {
		v := checkAwayByes([]parsedGame{game(2, 1, -1, 0)})
		if len(v) != 1 || v[0].Type != "error" || v[0].Row != 2 {
			t.Errorf("unexpected violations: %v", v)
		}
	})
}

func TestCheckEvenByes(t *testing.T) {
	games := []parsedGame{game(2, 1, 0, -1)}

	t.Run("byes allowed with odd teams", func(t *testing.T) {
		v := checkEvenByes(schedule.Params{Divisions: 1, TeamsPerDivision: 3}, games)
		if len(v) != 0 {
			t.Errorf("expected 0 violations, got %d", len(v))
		}
	})

	t.Run("byes rejected with even teams", func(t *testing.T) {
		v := checkEvenByes(schedule.Params{Divisions: 1, TeamsPerDivision: 4}, games)
		if len(v) != 1 {
			t.Errorf("expected 1 violation, got %d", len(v))
		}
	})
}

func TestCheckOneGamePerDay(t *testing.T) {
	r := roster(schedule.Params{Divisions: 1, TeamsPerDivision: 4})

	t.Run("no violation when teams play once per day", func(t *testing.T) {
		v := checkOneGamePerDay(r, []parsedGame{game(2, 1, 1, 0), game(3, 1, 3, 2), game(4, 2, 0, 2)})
		if len(v) != 0 {
			t.Errorf("expected 0 violations, got %d: %v", len(v), v)
		}
	})

	t.Run("violation when team plays twice in one day", func(t *testing.T) {
		v := checkOneGamePerDay(r, []parsedGame{game(2, 1, 1, 0), game(3, 1, 0, 2)})
		if len(v) != 1 {
			t.Fatalf("expected 1 violation, got %d: %v", len(v), v)
		}
		if v[0].Row != 3 || !strings.HasPrefix(v[0].Message, "1 plays twice") {
			t.Errorf("unexpected violation: %+v", v[0])
		}
	})

	t.Run("byes are not teams", func(t *testing.T) {
		v := checkOneGamePerDay(r, []parsedGame{game(2, 1, 0, -1), game(3, 1, 1, -1)})
		if len(v) != 0 {
			t.Errorf("expected 0 violations, got %d", len(v))
		}
	})
}

func TestCheckMeetings(t *testing.T) {
	t.Run("single round robin", func(t *testing.T) {
		p := schedule.Params{Divisions: 1, TeamsPerDivision: 3, GamesVsDivision: 1}
		games := []parsedGame{game(2, 1, 1, 0), game(3, 2, 0, 2), game(4, 3, 2, 1)}
		if v := checkMeetings(p, roster(p), games); len(v) != 0 {
			t.Errorf("expected 0 violations, got %v", v)
		}
		if v := checkMeetings(p, roster(p), games[:2]); len(v) != 1 {
			t.Errorf("expected 1 violation for missing game, got %v", v)
		}
	})

	t.Run("non-division games", func(t *testing.T) {
		p := schedule.Params{Divisions: 2, TeamsPerDivision: 1, GamesVsDivision: 1, GamesVsNonDivision: 2}
		games := []parsedGame{game(2, 1, 1, 0)}
		v := checkMeetings(p, roster(p), games)
		if len(v) != 1 || !strings.Contains(v[0].Message, "want 2 non-division games") {
			t.Errorf("unexpected violations: %v", v)
		}
	})
}

func TestCheckHomeAwayBalance(t *testing.T) {
	p := schedule.Params{Divisions: 1, TeamsPerDivision: 4}

	t.Run("balanced", func(t *testing.T) {
		games := []parsedGame{game(2, 1, 1, 0), game(3, 2, 0, 2)}
		if v := checkHomeAwayBalance(p, roster(p), games); len(v) != 0 {
			t.Errorf("expected 0 warnings, got %v", v)
		}
	})

	t.Run("team always at home", func(t *testing.T) {
		games := []parsedGame{game(2, 1, 1, 0), game(3, 2, 2, 0), game(4, 3, 3, 0)}
		v := checkHomeAwayBalance(p, roster(p), games)
		if len(v) == 0 {
			t.Fatal("expected warning for team 1")
		}
		if v[0].Type != "warning" || !strings.HasPrefix(v[0].Message, "1 has 3 home") {
			t.Errorf("unexpected warning: %+v", v[0])
		}
	})
}

func TestCheckDayCount(t *testing.T) {
	p := schedule.Params{Divisions: 1, TeamsPerDivision: 4, GamesVsDivision: 1}

	t.Run("expected days", func(t *testing.T) {
		games := []parsedGame{game(2, 1, 1, 0), game(3, 2, 0, 2), game(4, 3, 3, 0)}
		if v := checkDayCount(p, games); len(v) != 0 {
			t.Errorf("expected 0 warnings, got %v", v)
		}
	})

	t.Run("missing day", func(t *testing.T) {
		games := []parsedGame{game(2, 1, 1, 0), game(3, 2, 0, 2)}
		v := checkDayCount(p, games)
		if len(v) != 1 || v[0].Type != "warning" {
			t.Errorf("unexpected warnings: %v", v)
		}
	})
}
