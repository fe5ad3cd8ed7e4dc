package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"designermonk/internal/domain/model"
	"designermonk/pkg/logger"
)

type ProjectLister struct {
	db *Database
}

func NewProjectLister(db *Database) *ProjectLister {
	return &ProjectLister{db: db}
}

// List returns all projects sorted by creation time, newest first.
func (l *ProjectLister) List(ctx context.Context) ([]model.Project, error) {
	ctx, cancel := context.WithTimeout(ctx, l.db.QueryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := l.db.projects().Find(ctx, bson.M{}, opts)
	if err != nil {
		logger.Error("failed to list projects", "err", err)

		return nil, err
	}
	defer cursor.Close(ctx)

	projects := []model.Project{}
	if err = cursor.All(ctx, &projects); err != nil {
		logger.Error("failed to decode projects", "err", err)

		return nil, err
	}

	return projects, nil
}
