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

type ProjectRetriever struct {
	db *Database
}

func NewProjectRetriever(db *Database) *ProjectRetriever {
	return &ProjectRetriever{db: db}
}

func (r *ProjectRetriever) GetByID(ctx context.Context, id string) (*model.Project, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.db.QueryTimeout)
	defer cancel()

	var project model.Project
	err = r.db.projects().FindOne(ctx, bson.M{"_id": oid}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		logger.Error("failed to retrieve project by id", "id", id, "err", err)

		return nil, err
	}

	return &project, nil
}
