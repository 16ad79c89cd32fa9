package notificationRepo

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

// MongoNotificationRepo implements NotificationRepository using MongoDB.
type MongoNotificationRepo struct {
	coll *mongo.Collection
}

// NewMongoNotificationRepo constructs a new instance of MongoNotificationRepo.
func NewMongoNotificationRepo() NotificationRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoNotificationRepo{coll: db.Collection("notifications")}
}

func (repo *MongoNotificationRepo) Insert(ctx context.Context, notification *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, notification); err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}
	return nil
}

func (repo *MongoNotificationRepo) GetByID(ctx context.Context, id string) (*models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var notification models.Notification
	if err := repo.coll.FindOne(ctx, bson.M{"id": id}).Decode(&notification); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("notification", id)
		}
		return nil, fmt.Errorf("error fetching notification with id %s: %w", id, err)
	}
	return &notification, nil
}

func (repo *MongoNotificationRepo) PullReceiver(ctx context.Context, id, receiverID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{
		"$pull": bson.M{"receiverIds": receiverID},
		"$set":  bson.M{"timestamps.updatedAt": time.Now().UTC()},
	}
	// MatchedCount == 0 is deliberately not an error: the document may have
	// been deleted by a racing confirmation.
	if _, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, update); err != nil {
		return fmt.Errorf("error pruning receiver %s from notification %s: %w", receiverID, id, err)
	}
	return nil
}

func (repo *MongoNotificationRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := repo.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting notification %s: %w", id, err)
	}
	return res.DeletedCount > 0, nil
}

func (repo *MongoNotificationRepo) QueryByReceiver(ctx context.Context, receiverID string) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"receiverIds": receiverID})
	if err != nil {
		return nil, fmt.Errorf("error querying notifications for receiver %s: %w", receiverID, err)
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("error decoding notifications: %w", err)
	}
	return notifications, nil
}

func (repo *MongoNotificationRepo) ListIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1})
	cursor, err := repo.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var doc struct {
			ID string `bson:"id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding notification id: %w", err)
		}
		ids = append(ids, doc.ID)
	}
	return ids, cursor.Err()
}

func (repo *MongoNotificationRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"timestamps.updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := repo.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating notification %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError("notification", id)
	}
	return nil
}
