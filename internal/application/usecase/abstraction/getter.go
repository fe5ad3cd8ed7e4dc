package abstraction

import (
	"context"

	"designermonk/internal/domain/model"
)

// Getter defines the interface for retrieving a single project.
type Getter interface {
	GetProject(ctx context.Context, id string) (*model.Project, error)
}
