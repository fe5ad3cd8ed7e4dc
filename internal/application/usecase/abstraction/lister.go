package abstraction

import (
	"context"

	"designermonk/internal/domain/model"
)

type Lister interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
}
