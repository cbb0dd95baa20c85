package repository

import (
	"context"
	"errors"

	"salonbook/models"
)

// Sentinel errors shared by the repository implementations.
var (
	// ErrServiceNotFound is returned when a service name has no catalog row.
	ErrServiceNotFound = errors.New("service not found")
	// ErrNoStaffAvailable is returned when the staff collection is empty.
	ErrNoStaffAvailable = errors.New("no staff available")
)

// ServiceRepository provides read access to the services catalog.
type ServiceRepository interface {
	GetAll(ctx context.Context) ([]models.Service, error)
	GetByName(ctx context.Context, name string) (*models.Service, error)
}

// StaffRepository resolves staff members for appointments.
type StaffRepository interface {
	// FindAny returns an arbitrary staff row (unfiltered, unordered, limit 1).
	FindAny(ctx context.Context) (*models.Staff, error)
}

// AppointmentRepository persists appointment rows.
type AppointmentRepository interface {
	// Upsert writes one appointment keyed by (booking_group_id, service_id),
	// so resubmitting the same booking group repairs missing rows instead of
	// duplicating them.
	Upsert(ctx context.Context, appt *models.Appointment) error
}
