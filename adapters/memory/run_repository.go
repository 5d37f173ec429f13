// Package memory holds in-process adapter implementations used when no
// external store is configured.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"govmaf/domain/core"
	"govmaf/models"
	"govmaf/ports"
)

// RunRepository keeps runs in memory. Used by the service when no
// DATABASE_URL is configured and by tests.
type RunRepository struct {
	mu   sync.RWMutex
	runs map[string]*models.Run
}

// NewRunRepository creates an empty in-memory repository.
func NewRunRepository() *RunRepository {
	return &RunRepository{runs: make(map[string]*models.Run)}
}

var _ ports.RunRepository = (*RunRepository)(nil)

// cloneRun copies the run including its frame-score slice, so stored
// records never share backing arrays with callers.
func cloneRun(run *models.Run) *models.Run {
	cp := *run
	if run.FrameScores != nil {
		cp.FrameScores = make([]float64, len(run.FrameScores))
		copy(cp.FrameScores, run.FrameScores)
	}
	return &cp
}

func (r *RunRepository) Save(ctx context.Context, run *models.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runs[run.ID] = cloneRun(run)
	return nil
}

func (r *RunRepository) GetByID(ctx context.Context, id core.RunID) (*models.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	run, ok := r.runs[id.String()]
	if !ok {
		return nil, fmt.Errorf("%w: run %s", core.ErrKeyNotFound, id)
	}
	return cloneRun(run), nil
}

func (r *RunRepository) List(ctx context.Context, limit int) ([]*models.Run, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	runs := make([]*models.Run, 0, len(r.runs))
	for _, run := range r.runs {
		runs = append(runs, cloneRun(run))
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}
