package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"designermonk/internal/domain/model"
	"designermonk/internal/domain/repository/database"
	"designermonk/pkg/logger"
)

const ProjectCollection = "projects"

type Database struct {
	DBName       string
	QueryTimeout time.Duration
	Client       *mongo.Client
}

func Connect(cfg Config) (*Database, error) {
	logger.Info("connecting to mongodb", "db", cfg.DBName)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.ConnectionTimeout)*time.Millisecond)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(cfg.URI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(time.Duration(cfg.ConnectionTimeout) * time.Millisecond).
		SetBSONOptions(&options.BSONOptions{
			UseJSONStructTags: true,
			NilSliceAsEmpty:   true,
		})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}

	qCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.QueryTimeout)*time.Millisecond)
	defer cancel()

	if err := client.Ping(qCtx, nil); err != nil {
		return nil, err
	}

	db := &Database{
		Client:       client,
		DBName:       cfg.DBName,
		QueryTimeout: time.Duration(cfg.QueryTimeout) * time.Millisecond,
	}

	if err := initProjectCollection(db); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Database) projects() *mongo.Collection {
	return db.Client.Database(db.DBName).Collection(ProjectCollection)
}

func initProjectCollection(db *Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), db.QueryTimeout)
	defer cancel()

	collections, err := db.Client.Database(db.DBName).ListCollectionNames(ctx, bson.M{"name": ProjectCollection})
	if err != nil {
		return err
	}
	if len(collections) > 0 {
		return nil // already exists
	}

	collOpts := options.CreateCollection().SetValidator(bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": []string{"_id", "imageUrl", "status", "createdAt", "updatedAt"},
			"properties": bson.M{
				"imageUrl": bson.M{
					"bsonType":    "string",
					"minLength":   1,
					"description": "must be the URL returned by the image store",
				},
				"status": bson.M{
					"enum": []string{model.StatusDelivered, model.StatusOngoing, model.StatusUpcoming},
				},
				"priceMin":  bson.M{"bsonType": []string{"double", "int", "long", "null"}},
				"priceMax":  bson.M{"bsonType": []string{"double", "int", "long", "null"}},
				"createdAt": bson.M{"bsonType": "date"},
				"updatedAt": bson.M{"bsonType": "date"},
				"image": bson.M{
					"bsonType": []string{"object", "null"},
					"properties": bson.M{
						"url":       bson.M{"bsonType": "string"},
						"public_id": bson.M{"bsonType": "string"},
						"width":     bson.M{"bsonType": []string{"int", "long"}},
						"height":    bson.M{"bsonType": []string{"int", "long"}},
					},
				},
			},
		},
	})

	err = db.Client.Database(db.DBName).CreateCollection(ctx, ProjectCollection, collOpts)
	if err != nil {
		return err
	}

	_, err = db.projects().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})

	return err
}

// objectID parses a hex id; an id that cannot exist is reported as not found.
func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, database.ErrNotFound
	}

	return oid, nil
}

func (db *Database) Stop() error {
	if err := db.Client.Disconnect(context.Background()); err != nil {
		return err
	}

	return nil
}
