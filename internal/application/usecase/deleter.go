package usecase

import (
	"context"

	"designermonk/internal/domain/repository/database"
	"designermonk/internal/domain/repository/imagestore"
)

// Deleter implements the Deleter abstraction for deleting projects.
type Deleter struct {
	dbRemover    database.Remover
	imageRemover imagestore.Remover
}

// NewDeleter creates a new Deleter usecase.
func NewDeleter(dbRemover database.Remover, imageRemover imagestore.Remover) *Deleter {
	return &Deleter{
		dbRemover:    dbRemover,
		imageRemover: imageRemover,
	}
}

// DeleteProject deletes the record first; the remote image is removed on a
// best-effort basis afterwards.
func (d *Deleter) DeleteProject(ctx context.Context, id string) error {
	project, err := d.dbRemover.RemoveByID(ctx, id)
	if err != nil {
		return persistenceError(err)
	}

	discardImage(ctx, d.imageRemover, project.Image)

	return nil
}
