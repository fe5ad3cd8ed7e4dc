package database

import (
	"context"

	"designermonk/internal/domain/model"
)

// Lister defines the interface for listing projects, newest first.
type Lister interface {
	List(ctx context.Context) ([]model.Project, error)
}
