// File: database/repository/appointment/appointment_mongo.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"salonbook/config"
	"salonbook/database"
	"salonbook/database/repository"
	"salonbook/models"
)

// MongoAppointmentRepo implements repository.AppointmentRepository using MongoDB.
type MongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new instance of MongoAppointmentRepo.
func NewMongoAppointmentRepo() repository.AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoAppointmentRepo{coll: db.Collection("appointments")}
}

// Upsert writes one appointment row keyed by (booking_group_id, service_id).
// A retry of the same booking group overwrites its own rows rather than
// creating duplicates.
func (repo *MongoAppointmentRepo) Upsert(ctx context.Context, appt *models.Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if appt.CreatedAt.IsZero() {
		appt.CreatedAt = time.Now().UTC()
	}

	filter := bson.M{
		"booking_group_id": appt.BookingGroupID,
		"service_id":       appt.ServiceID,
	}
	update := bson.M{"$set": appt}
	opts := options.Update().SetUpsert(true)

	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Concurrent retry of the same group already wrote this row.
			return nil
		}
		return fmt.Errorf("error writing appointment for service %s: %w", appt.ServiceID, err)
	}
	return nil
}
