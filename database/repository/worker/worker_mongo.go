package workerRepo

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

// MongoWorkerRepo implements WorkerRepository using MongoDB.
type MongoWorkerRepo struct {
	coll *mongo.Collection
}

// NewMongoWorkerRepo constructs a new instance of MongoWorkerRepo.
func NewMongoWorkerRepo() WorkerRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoWorkerRepo{coll: db.Collection("workers")}
}

func (repo *MongoWorkerRepo) GetByID(ctx context.Context, id string) (*models.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var worker models.Worker
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&worker); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("worker", id)
		}
		return nil, fmt.Errorf("error fetching worker with id %s: %w", id, err)
	}
	return &worker, nil
}

func (repo *MongoWorkerRepo) GetBySubservice(ctx context.Context, subserviceID string) ([]models.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"subserviceIds": subserviceID})
	if err != nil {
		return nil, fmt.Errorf("error fetching workers for subservice %s: %w", subserviceID, err)
	}
	defer cursor.Close(ctx)

	var workers []models.Worker
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, fmt.Errorf("error decoding workers for subservice %s: %w", subserviceID, err)
	}
	return workers, nil
}

func (repo *MongoWorkerRepo) UpdateRating(ctx context.Context, id string, rating float64) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"rating":               rating,
		"timestamps.updatedAt": time.Now().UTC(),
	}}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("error updating rating for worker %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("worker", id)
	}
	return nil
}

func (repo *MongoWorkerRepo) TopRated(ctx context.Context, n int) ([]models.Worker, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(int64(n))
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching top rated workers: %w", err)
	}
	defer cursor.Close(ctx)

	var workers []models.Worker
	if err := cursor.All(ctx, &workers); err != nil {
		return nil, fmt.Errorf("error decoding top rated workers: %w", err)
	}
	return workers, nil
}

func (repo *MongoWorkerRepo) Create(ctx context.Context, worker *models.Worker) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, worker); err != nil {
		return fmt.Errorf("error creating worker: %w", err)
	}
	return nil
}

func (repo *MongoWorkerRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"timestamps.updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating worker %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("worker", id)
	}
	return nil
}

func (repo *MongoWorkerRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting worker %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (repo *MongoWorkerRepo) ListIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing workers: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding worker id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}
