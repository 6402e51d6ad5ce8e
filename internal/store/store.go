// Package store records generated schedules so they can be listed and
// rebuilt later. Only the parameters and the resolved seed are kept; the
// days are regenerated on demand.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/derekprior/rrsched/internal/schedule"
)

// ErrNotFound is returned when a run id is unknown.
var ErrNotFound = errors.New("run not found")

// DefaultListLimit caps ListRuns when no limit is given.
const DefaultListLimit = 20

// Run is one recorded schedule generation.
type Run struct {
	ID        string          `json:"id"`
	Params    schedule.Params `json:"params"`
	Days      int             `json:"days"`
	Byes      int             `json:"byes"`
	CreatedAt time.Time       `json:"created_at"`
}

// NewRun describes s as a run ready to be saved. The recorded params carry
// the resolved seed, so Rebuild reproduces s exactly.
func NewRun(s *schedule.Schedule) *Run {
	return &Run{
		ID:        "run_" + uuid.New().String(),
		Params:    s.Params(),
		Days:      s.NumDays(),
		Byes:      s.Byes(),
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
}

// Rebuild regenerates the schedule recorded by r.
func (r *Run) Rebuild() (*schedule.Schedule, error) {
	return schedule.New(r.Params)
}

// Store defines the persistence layer for schedule runs.
type Store interface {
	SaveRun(ctx context.Context, run *Run) error
	GetRun(ctx context.Context, id string) (*Run, error)
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	// Lifecycle
	Close() error
	Migrate(ctx context.Context) error
}
