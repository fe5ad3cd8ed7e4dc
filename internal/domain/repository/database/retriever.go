package database

import (
	"context"
	"errors"

	"designermonk/internal/domain/model"
)

// ErrNotFound is returned by repositories when no project has the given id.
var ErrNotFound = errors.New("project not found")

type Retriever interface {
	GetByID(ctx context.Context, id string) (*model.Project, error)
}
