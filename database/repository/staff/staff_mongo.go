// File: database/repository/staff/staff_mongo.go
package staffRepo

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

// MongoStaffRepo implements repository.StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo constructs a new instance of MongoStaffRepo.
func NewMongoStaffRepo() repository.StaffRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoStaffRepo{coll: db.Collection("staff")}
}

// FindAny returns the first staff row of an unfiltered, unordered query.
// This is a placeholder assignment source, not a scheduling decision.
func (repo *MongoStaffRepo) FindAny(ctx context.Context) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var staff models.Staff
	if err := repo.coll.FindOne(ctx, bson.M{}).Decode(&staff); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNoStaffAvailable
		}
		return nil, fmt.Errorf("error fetching staff: %w", err)
	}
	return &staff, nil
}
