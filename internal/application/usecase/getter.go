package usecase

import (
	"context"

	"designermonk/internal/domain/model"
	"designermonk/internal/domain/repository/database"
)

// Getter implements the Getter abstraction for retrieving a project.
type Getter struct {
	retriever database.Retriever
}

// NewGetter creates a new Getter usecase.
func NewGetter(retriever database.Retriever) *Getter {
	return &Getter{
		retriever: retriever,
	}
}

func (g *Getter) GetProject(ctx context.Context, id string) (*model.Project, error) {
	project, err := g.retriever.GetByID(ctx, id)
	if err != nil {
		return nil, persistenceError(err)
	}

	return project, nil
}
