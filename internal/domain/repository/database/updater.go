package database

import (
	"context"

	"designermonk/internal/domain/model"
)

type Updater interface {
	// UpdateByID sets the given fields and returns the updated project.
	UpdateByID(ctx context.Context, id string, changes map[string]any) (*model.Project, error)
}
