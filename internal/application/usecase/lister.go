package usecase

import (
	"context"

	"designermonk/internal/domain/model"
	"designermonk/internal/domain/repository/database"
)

// Lister implements the Lister abstraction for retrieving projects.
type Lister struct {
	lister database.Lister
}

// NewLister creates a new Lister usecase.
func NewLister(lister database.Lister) *Lister {
	return &Lister{
		lister: lister,
	}
}

// ListProjects returns every project, newest first.
func (l *Lister) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := l.lister.List(ctx)
	if err != nil {
		return nil, persistenceError(err)
	}

	if projects == nil {
		projects = []model.Project{}
	}

	return projects, nil
}
