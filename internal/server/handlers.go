package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/derekprior/rrsched/internal/config"
	"github.com/derekprior/rrsched/internal/metrics"
	"github.com/derekprior/rrsched/internal/schedule"
	"github.com/derekprior/rrsched/internal/store"
)

// Limits on leagues accepted over HTTP. maxGames bounds the game slots a
// schedule may hold so a single request cannot exhaust memory.
const (
	maxTeams           = 1000
	maxGamesVsOpponent = 100
	maxGames           = 500_000
	maxBodyBytes       = 1 << 16
)

type healthResponse struct {
	Status    string `json:"status"`
	GoVersion string `json:"go_version"`
	Uptime    string `json:"uptime"`
}

// createRequest is the body of POST /api/v1/schedules. A missing seed
// means the wall clock.
type createRequest struct {
	Divisions          int    `json:"divisions"`
	TeamsPerDivision   int    `json:"teams_per_division"`
	GamesVsDivision    int    `json:"games_vs_division"`
	GamesVsNonDivision int    `json:"games_vs_non_division"`
	Seed               *int64 `json:"seed"`
}

func (req createRequest) params() (schedule.Params, error) {
	p := schedule.Params{
		Divisions:          req.Divisions,
		TeamsPerDivision:   req.TeamsPerDivision,
		GamesVsDivision:    req.GamesVsDivision,
		GamesVsNonDivision: req.GamesVsNonDivision,
		Seed:               -1,
	}
	if req.Seed != nil {
		if *req.Seed < 0 {
			return p, fmt.Errorf("%w: seed must be a non-negative integer, got %d", config.ErrInvalidConfig, *req.Seed)
		}
		p.Seed = *req.Seed
	}
	if err := config.ValidateParams(p); err != nil {
		return p, err
	}
	if p.NumTeams() > maxTeams {
		return p, fmt.Errorf("%w: at most %d teams supported, got %d", config.ErrInvalidConfig, maxTeams, p.NumTeams())
	}
	if p.GamesVsDivision > maxGamesVsOpponent || p.GamesVsNonDivision > maxGamesVsOpponent {
		return p, fmt.Errorf("%w: at most %d games per opponent supported, got %d and %d",
			config.ErrInvalidConfig, maxGamesVsOpponent, p.GamesVsDivision, p.GamesVsNonDivision)
	}
	// Both factors are bounded above, so the product cannot overflow.
	if slots := p.ExpectedDays() * ((p.NumTeams() + 1) / 2); slots > maxGames {
		return p, fmt.Errorf("%w: schedule would hold %d games, at most %d supported",
			config.ErrInvalidConfig, slots, maxGames)
	}
	return p, nil
}

type scheduleResponse struct {
	Run  *store.Run     `json:"run"`
	Days []schedule.Day `json:"days"`
}

type statsResponse struct {
	Run   *store.Run     `json:"run"`
	Stats schedule.Stats `json:"stats"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondOK(w, RequestIDFromContext(r.Context()), healthResponse{
		Status:    "healthy",
		GoVersion: runtime.Version(),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
	})
}

func (s *Server) handleCreateSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	var req createRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, reqID, http.StatusBadRequest, CodeBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	p, err := req.params()
	if err != nil {
		s.metrics.ObserveGeneration(metrics.ResultRejected, 0, 0)
		respondErr(w, reqID, err)
		return
	}

	start := time.Now()
	sched, err := schedule.New(p)
	if err != nil {
		result := metrics.ResultError
		if errors.Is(err, schedule.ErrUnsupportedParameters) {
			result = metrics.ResultRejected
		}
		s.metrics.ObserveGeneration(result, time.Since(start), 0)
		respondErr(w, reqID, err)
		return
	}
	s.metrics.ObserveGeneration(metrics.ResultOK, time.Since(start), sched.NumDays())

	run := store.NewRun(sched)
	if err := s.store.SaveRun(r.Context(), run); err != nil {
		s.logger.Error("save run", "id", run.ID, "error", err)
		respondErr(w, reqID, err)
		return
	}
	s.logger.Info("schedule generated", "id", run.ID, "seed", sched.Seed(), "days", sched.NumDays())

	respondCreated(w, reqID, scheduleResponse{Run: run, Days: sched.Days()})
}

func (s *Server) handleListSchedules(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(w, reqID, http.StatusBadRequest, CodeBadRequest, fmt.Sprintf("invalid limit %q", v))
			return
		}
		limit = n
	}

	runs, err := s.store.ListRuns(r.Context(), limit)
	if err != nil {
		respondErr(w, reqID, err)
		return
	}
	if runs == nil {
		runs = []*store.Run{}
	}
	respondOK(w, reqID, runs)
}

func (s *Server) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	run, sched, err := s.rebuild(r)
	if err != nil {
		respondErr(w, reqID, err)
		return
	}
	respondOK(w, reqID, scheduleResponse{Run: run, Days: sched.Days()})
}

func (s *Server) handleGetScheduleStats(w http.ResponseWriter, r *http.Request) {
	reqID := RequestIDFromContext(r.Context())
	run, sched, err := s.rebuild(r)
	if err != nil {
		respondErr(w, reqID, err)
		return
	}
	respondOK(w, reqID, statsResponse{Run: run, Stats: sched.Stats()})
}

// rebuild loads the run named in the URL and regenerates its schedule.
func (s *Server) rebuild(r *http.Request) (*store.Run, *schedule.Schedule, error) {
	run, err := s.store.GetRun(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return nil, nil, err
	}
	sched, err := run.Rebuild()
	if err != nil {
		return nil, nil, fmt.Errorf("rebuild %s: %w", run.ID, err)
	}
	return run, sched, nil
}
