package catalogRepo

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
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	serviceColl    *mongo.Collection
	subserviceColl *mongo.Collection
}

// NewMongoCatalogRepo constructs a new instance of MongoCatalogRepo.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database(database.DatabaseName)
	return &MongoCatalogRepo{
		serviceColl:    db.Collection("services"),
		subserviceColl: db.Collection("subservices"),
	}
}

func (repo *MongoCatalogRepo) GetService(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var service models.Service
	if err := repo.serviceColl.FindOne(ctx, bson.M{"id": id}).Decode(&service); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("service", id)
		}
		return nil, fmt.Errorf("error fetching service with id %s: %w", id, err)
	}
	return &service, nil
}

func (repo *MongoCatalogRepo) GetSubservice(ctx context.Context, id string) (*models.Subservice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var subservice models.Subservice
	if err := repo.subserviceColl.FindOne(ctx, bson.M{"id": id}).Decode(&subservice); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.NewNotFoundError("subservice", id)
		}
		return nil, fmt.Errorf("error fetching subservice with id %s: %w", id, err)
	}
	return &subservice, nil
}

func (repo *MongoCatalogRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.serviceColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

func (repo *MongoCatalogRepo) ListSubservices(ctx context.Context, serviceID string) ([]models.Subservice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if serviceID != "" {
		filter["serviceId"] = serviceID
	}
	cursor, err := repo.subserviceColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing subservices: %w", err)
	}
	defer cursor.Close(ctx)

	var subservices []models.Subservice
	if err := cursor.All(ctx, &subservices); err != nil {
		return nil, fmt.Errorf("error decoding subservices: %w", err)
	}
	return subservices, nil
}

func (repo *MongoCatalogRepo) CreateService(ctx context.Context, service *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.serviceColl.InsertOne(ctx, service); err != nil {
		return fmt.Errorf("error creating service: %w", err)
	}
	return nil
}

func (repo *MongoCatalogRepo) CreateSubservice(ctx context.Context, subservice *models.Subservice) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.subserviceColl.InsertOne(ctx, subservice); err != nil {
		return fmt.Errorf("error creating subservice: %w", err)
	}
	return nil
}

func (repo *MongoCatalogRepo) UpdateService(ctx context.Context, id string, fields map[string]any) error {
	return repo.update(ctx, repo.serviceColl, "service", id, fields)
}

func (repo *MongoCatalogRepo) UpdateSubservice(ctx context.Context, id string, fields map[string]any) error {
	return repo.update(ctx, repo.subserviceColl, "subservice", id, fields)
}

func (repo *MongoCatalogRepo) update(ctx context.Context, coll *mongo.Collection, resource, id string, fields map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"timestamps.updatedAt": time.Now().UTC()}
	for k, v := range fields {
		set[k] = v
	}
	res, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("error updating %s %s: %w", resource, id, err)
	}
	if res.MatchedCount == 0 {
		return utils.NewNotFoundError(resource, id)
	}
	return nil
}

func (repo *MongoCatalogRepo) DeleteService(ctx context.Context, id string) (bool, error) {
	return repo.delete(ctx, repo.serviceColl, "service", id)
}

func (repo *MongoCatalogRepo) DeleteSubservice(ctx context.Context, id string) (bool, error) {
	return repo.delete(ctx, repo.subserviceColl, "subservice", id)
}

func (repo *MongoCatalogRepo) delete(ctx context.Context, coll *mongo.Collection, resource, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("error deleting %s %s: %w", resource, id, err)
	}
	return res.DeletedCount > 0, nil
}
