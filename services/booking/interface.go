package booking

import (
	"context"
	"errors"

	"salonbook/database/repository"
	"salonbook/models"
	"salonbook/services/email"
	"salonbook/services/notification"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrValidation marks a submission rejected before any gateway write.
var ErrValidation = errors.New("validation failed")

// BookingService runs one form submission cycle:
// validate, resolve, write, report.
type BookingService interface {
	Book(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	CatalogRepo     repository.ServiceRepository
	AppointmentRepo repository.AppointmentRepository
	StaffAssigner   AssignmentStrategy
	Confirmation    email.ConfirmationSender
	Presenter       notification.Presenter
	MirrorClient    *redis.Client // optional, non-canonical booking mirror
	Logger          *zap.Logger
}
