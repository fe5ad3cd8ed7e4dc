package database

import (
	"context"

	"designermonk/internal/domain/model"
)

type Remover interface {
	// RemoveByID deletes the project and returns it as it was before deletion.
	RemoveByID(ctx context.Context, id string) (*model.Project, error)
}
