// File: database/repository/catalog/catalog_mongo.go
package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"salonbook/config"
	"salonbook/database"
	"salonbook/database/repository"
	"salonbook/models"
)

// MongoServiceRepo implements repository.ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new instance of MongoServiceRepo.
func NewMongoServiceRepo() repository.ServiceRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoServiceRepo{coll: db.Collection("services")}
}

// GetAll retrieves every service row. An empty catalog is not an error.
func (repo *MongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error fetching services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("error decoding services: %w", err)
	}
	return services, nil
}

// GetByName retrieves a single service row by its display name.
func (repo *MongoServiceRepo) GetByName(ctx context.Context, name string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var svc models.Service
	if err := repo.coll.FindOne(ctx, bson.M{"name": name}).Decode(&svc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrServiceNotFound
		}
		return nil, fmt.Errorf("error fetching service %q: %w", name, err)
	}
	return &svc, nil
}
