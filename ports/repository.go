package ports

import (
	"context"

	"govmaf/domain/core"
	"govmaf/models"
)

// RunRepository persists completed scoring runs.
type RunRepository interface {
	Save(ctx context.Context, run *models.Run) error
	GetByID(ctx context.Context, id core.RunID) (*models.Run, error)
	List(ctx context.Context, limit int) ([]*models.Run, error)
}
