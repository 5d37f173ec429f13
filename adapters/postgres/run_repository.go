package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"govmaf/domain/core"
	"govmaf/models"
	"govmaf/ports"

	"github.com/jmoiron/sqlx"
)

// RunRepositoryImpl implements RunRepository for PostgreSQL
type RunRepositoryImpl struct {
	db *sqlx.DB
}

// NewRunRepository creates a new PostgreSQL run repository
func NewRunRepository(db *sqlx.DB) ports.RunRepository {
	return &RunRepositoryImpl{db: db}
}

// EnsureSchema creates the run tables if they do not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS scoring_runs (
			id TEXT PRIMARY KEY,
			model_ref TEXT NOT NULL,
			aggregate_method TEXT NOT NULL,
			num_frames INT NOT NULL,
			aggregate_score DOUBLE PRECISION NOT NULL,
			ci_low DOUBLE PRECISION,
			ci_high DOUBLE PRECISION,
			created_at TIMESTAMPTZ NOT NULL,
			completed_at TIMESTAMPTZ
		);
		CREATE TABLE IF NOT EXISTS run_frame_scores (
			run_id TEXT NOT NULL REFERENCES scoring_runs(id) ON DELETE CASCADE,
			frame_idx INT NOT NULL,
			score DOUBLE PRECISION NOT NULL,
			PRIMARY KEY (run_id, frame_idx)
		);
	`)
	return err
}

// Save persists a run and its per-frame scores in one transaction.
func (r *RunRepositoryImpl) Save(ctx context.Context, run *models.Run) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO scoring_runs (id, model_ref, aggregate_method, num_frames, aggregate_score, ci_low, ci_high, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, run.ID, run.ModelRef, run.AggregateMethod, run.NumFrames, run.AggregateScore, run.CILow, run.CIHigh, run.CreatedAt, run.CompletedAt)
	if err != nil {
		return err
	}

	for i, s := range run.FrameScores {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO run_frame_scores (run_id, frame_idx, score) VALUES ($1, $2, $3)
		`, run.ID, i, s); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// GetByID retrieves a run and its per-frame scores.
func (r *RunRepositoryImpl) GetByID(ctx context.Context, id core.RunID) (*models.Run, error) {
	var run models.Run
	err := r.db.GetContext(ctx, &run, `
		SELECT id, model_ref, aggregate_method, num_frames, aggregate_score, ci_low, ci_high, created_at, completed_at
		FROM scoring_runs
		WHERE id = $1
	`, id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: run %s", core.ErrKeyNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT score FROM run_frame_scores WHERE run_id = $1 ORDER BY frame_idx
	`, id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var s float64
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		run.FrameScores = append(run.FrameScores, s)
	}

	return &run, rows.Err()
}

// List returns the most recent runs, without per-frame scores.
func (r *RunRepositoryImpl) List(ctx context.Context, limit int) ([]*models.Run, error) {
	query := `
		SELECT id, model_ref, aggregate_method, num_frames, aggregate_score, ci_low, ci_high, created_at, completed_at
		FROM scoring_runs
		ORDER BY created_at DESC
	`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT $1"
		args = append(args, limit)
	}

	var runs []*models.Run
	if err := r.db.SelectContext(ctx, &runs, query, args...); err != nil {
		return nil, err
	}
	return runs, nil
}
