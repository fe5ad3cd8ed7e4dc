package database

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"designermonk/internal/domain/model"
	"designermonk/internal/domain/repository/database"
	"designermonk/pkg/logger"
)

type ProjectRemover struct {
	db *Database
}

func NewProjectRemover(db *Database) *ProjectRemover {
	return &ProjectRemover{db: db}
}

func (r *ProjectRemover) RemoveByID(ctx context.Context, id string) (*model.Project, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var project model.Project
	err = r.db.projects().FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		logger.Error("failed to remove project", "id", id, "err", err)

		return nil, err
	}

	return &project, nil
}
