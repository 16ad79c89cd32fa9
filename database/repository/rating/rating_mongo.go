package ratingRepo

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

// MongoRatingRepo implements RatingRepository using MongoDB.
type MongoRatingRepo struct {
	coll *mongo.Collection
}

// NewMongoRatingRepo constructs a new instance of MongoRatingRepo.
func NewMongoRatingRepo() RatingRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoRatingRepo{coll: db.Collection("ratings")}
}

func (repo *MongoRatingRepo) Insert(ctx context.Context, rating *models.Rating) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, rating); err != nil {
		return fmt.Errorf("error creating rating: %w", err)
	}
	return nil
}

func (repo *MongoRatingRepo) GetByID(ctx context.Context, id string) (*models.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rating models.Rating
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&rating); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("rating", id)
		}
		return nil, fmt.Errorf("error fetching rating with id %s: %w", id, err)
	}
	return &rating, nil
}

func (repo *MongoRatingRepo) Query(ctx context.Context, clientID, workerID, bookingID string) ([]models.Rating, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if clientID != "" {
		filter["clientId"] = clientID
	}
	if workerID != "" {
		filter["workerId"] = workerID
	}
	if bookingID != "" {
		filter["bookingId"] = bookingID
	}

	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error querying ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, fmt.Errorf("error decoding ratings: %w", err)
	}
	return ratings, nil
}

func (repo *MongoRatingRepo) ListIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding rating id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}

func (repo *MongoRatingRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"timestamps.updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating rating %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("rating", id)
	}
	return nil
}

func (repo *MongoRatingRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting rating %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}
