package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"designermonk/internal/domain/model"
	"designermonk/internal/domain/repository/database"
	"designermonk/pkg/logger"
)

type ProjectUpdater struct {
	db *Database
}

func NewProjectUpdater(db *Database) *ProjectUpdater {
	return &ProjectUpdater{db: db}
}

func (u *ProjectUpdater) UpdateByID(ctx context.Context, id string, changes map[string]any) (*model.Project, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, u.db.QueryTimeout)
	defer cancel()

	set := bson.M{"updatedAt": time.Now().UTC().Truncate(time.Millisecond)}
	for key, value := range changes {
		set[key] = value
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var project model.Project
	err = u.db.projects().FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		logger.Error("failed to update project", "id", id, "err", err)

		return nil, err
	}

	return &project, nil
}
