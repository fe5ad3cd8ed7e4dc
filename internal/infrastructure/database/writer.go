package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"designermonk/internal/domain/model"
	"designermonk/pkg/logger"
)

type ProjectWriter struct {
	db *Database
}

func NewProjectWriter(db *Database) *ProjectWriter {
	return &ProjectWriter{db: db}
}

// Write inserts the project, filling in its id and timestamps.
func (w *ProjectWriter) Write(ctx context.Context, project *model.Project) error {
	ctx, cancel := context.WithTimeout(ctx, w.db.QueryTimeout)
	defer cancel()

	now := time.Now().UTC().Truncate(time.Millisecond)
	if project.ID.IsZero() {
		project.ID = primitive.NewObjectID()
	}
	project.CreatedAt = now
	project.UpdatedAt = now

	if _, err := w.db.projects().InsertOne(ctx, project); err != nil {
		logger.Error("failed to insert project", "err", err)

		return err
	}

	return nil
}
