package clientRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fundi/database"
	"fundi/models"
	"fundi/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoClientRepo implements ClientRepository using MongoDB.
type MongoClientRepo struct {
	coll *mongo.Collection
}

// NewMongoClientRepo constructs a new instance of MongoClientRepo.
func NewMongoClientRepo() ClientRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoClientRepo{coll: db.Collection("clients")}
}

func (repo *MongoClientRepo) GetByID(ctx context.Context, id string) (*models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var client models.Client
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&client); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("client", id)
		}
		return nil, fmt.Errorf("error fetching client with id %s: %w", id, err)
	}
	return &client, nil
}

func (repo *MongoClientRepo) Create(ctx context.Context, client *models.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, client); err != nil {
		return fmt.Errorf("error creating client: %w", err)
	}
	return nil
}

func (repo *MongoClientRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"timestamps.updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating client %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("client", id)
	}
	return nil
}

func (repo *MongoClientRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting client %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (repo *MongoClientRepo) ListIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing clients: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding client id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}
