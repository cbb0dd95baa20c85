package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"salonbook/database/repository"
	"salonbook/models"
	"salonbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// mirrorKey is the Redis list holding the non-canonical log of committed
// bookings. The appointment rows stay authoritative; this is disposable.
const mirrorKey = "bookings:recent"

// Book runs one submission cycle. Per-service writes are issued sequentially
// and fail independently: a missing service, a missing staff row or a write
// rejection downgrades that one service and the loop continues.
func (s *DefaultBookingService) Book(ctx context.Context, req models.BookingRequest) (*models.BookingResult, error) {
	// Validating.
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	date := strings.TrimSpace(req.Date)
	timeOfDay := strings.TrimSpace(req.Time)
	customerEmail := strings.TrimSpace(req.Email)

	selected := make([]string, 0, len(req.Services))
	for _, svc := range req.Services {
		if trimmed := strings.TrimSpace(svc); trimmed != "" {
			selected = append(selected, trimmed)
		}
	}

	if reason := validate(name, phone, date, timeOfDay, selected); reason != "" {
		s.report(ctx, models.NotificationError, reason)
		return nil, fmt.Errorf("%w: %s", ErrValidation, reason)
	}

	// Resolving.
	appointmentTime, err := utils.CombineDateTime(date, timeOfDay)
	if err != nil {
		reason := "please provide a valid appointment date and time"
		s.report(ctx, models.NotificationError, reason)
		return nil, fmt.Errorf("%w: %s", ErrValidation, reason)
	}
	groupID := uuid.New().String()

	// Writing: one independent attempt per selected service.
	outcomes := make([]models.ServiceOutcome, 0, len(selected))
	bookedNames := make([]string, 0, len(selected))
	var totalPrice float64

	for _, serviceName := range selected {
		outcome := s.bookOne(ctx, serviceName, groupID, name, phone, customerEmail, appointmentTime)
		if outcome.Booked {
			bookedNames = append(bookedNames, serviceName)
			totalPrice += outcome.price
		}
		outcomes = append(outcomes, outcome.ServiceOutcome)
	}

	// Reporting.
	booked := len(bookedNames)
	failed := len(selected) - booked

	result := &models.BookingResult{
		BookingGroupID:  groupID,
		Booked:          booked,
		Failed:          failed,
		Services:        outcomes,
		AppointmentTime: appointmentTime,
	}

	var message string
	kind := models.NotificationError
	switch {
	case failed == 0:
		result.Outcome = models.OutcomeAllSuccess
		kind = models.NotificationSuccess
		message = fmt.Sprintf("Booked %d appointment(s) for %s at %s.",
			booked, utils.HumanDate(date), utils.HumanTime(timeOfDay))
	case booked == 0:
		result.Outcome = models.OutcomeAllFail
		message = "Could not book any of the selected services. Please try again."
	default:
		result.Outcome = models.OutcomePartial
		message = fmt.Sprintf("Booked %d of %d selected services; %d could not be booked.",
			booked, len(selected), failed)
	}

	if result.Outcome == models.OutcomeAllSuccess {
		details := models.BookingDetails{
			BookingGroupID:  groupID,
			CustomerName:    name,
			CustomerEmail:   customerEmail,
			CustomerPhone:   phone,
			Date:            date,
			Time:            timeOfDay,
			AppointmentTime: appointmentTime,
			ServiceNames:    bookedNames,
			TotalPrice:      totalPrice,
		}
		s.mirror(ctx, details)

		emailOutcome := s.Confirmation.Send(ctx, details)
		result.EmailStatus = emailOutcome.String()
		if text := emailOutcome.Describe(); text != "" {
			message += " " + text
		}
	}

	result.Notification = message
	s.report(ctx, kind, message)

	s.Logger.Info("Book: submission processed",
		zap.String("bookingGroupID", groupID),
		zap.String("outcome", result.Outcome),
		zap.Int("booked", booked),
		zap.Int("failed", failed))
	return result, nil
}

// validate returns an empty string when the submission is acceptable.
// The email address is optional and never a validation failure.
func validate(name, phone, date, timeOfDay string, selected []string) string {
	if len(selected) == 0 {
		return "please select at least one service"
	}
	switch {
	case name == "":
		return "please enter your name"
	case phone == "":
		return "please enter your phone number"
	case date == "":
		return "please choose an appointment date"
	case timeOfDay == "":
		return "please choose an appointment time"
	}
	return ""
}

type perServiceOutcome struct {
	models.ServiceOutcome
	price float64
}

// bookOne resolves identifiers and writes one appointment row. Every failure
// class downgrades this one service only.
func (s *DefaultBookingService) bookOne(ctx context.Context, serviceName, groupID, name, phone, customerEmail string, appointmentTime time.Time) perServiceOutcome {
	out := perServiceOutcome{ServiceOutcome: models.ServiceOutcome{ServiceName: serviceName}}

	svc, err := s.CatalogRepo.GetByName(ctx, serviceName)
	if err != nil {
		s.Logger.Warn("Book: service lookup failed",
			zap.String("service", serviceName), zap.Error(err))
		if errors.Is(err, repository.ErrServiceNotFound) {
			out.Reason = "service not found"
		} else {
			out.Reason = "service lookup failed"
		}
		return out
	}
	out.ServiceID = svc.ID

	staff, err := s.StaffAssigner.Assign(ctx, svc.ID)
	if err != nil {
		s.Logger.Warn("Book: staff assignment failed",
			zap.String("service", serviceName), zap.Error(err))
		if errors.Is(err, repository.ErrNoStaffAvailable) {
			out.Reason = "no staff available"
		} else {
			out.Reason = "staff lookup failed"
		}
		return out
	}
	out.StaffID = staff.ID

	appt := models.Appointment{
		BookingGroupID:  groupID,
		CustomerName:    name,
		CustomerPhone:   phone,
		CustomerEmail:   customerEmail,
		ServiceID:       svc.ID,
		StaffID:         staff.ID,
		AppointmentTime: appointmentTime,
		Status:          models.AppointmentStatusPending,
	}
	if err := s.AppointmentRepo.Upsert(ctx, &appt); err != nil {
		s.Logger.Warn("Book: appointment write failed",
			zap.String("service", serviceName), zap.Error(err))
		out.Reason = "could not save the appointment"
		return out
	}

	out.Booked = true
	out.price = svc.Price
	return out
}

// report publishes the aggregate banner. Presenter failures are logged and
// swallowed; the booking outcome stands regardless.
func (s *DefaultBookingService) report(ctx context.Context, kind, message string) {
	if s.Presenter == nil {
		return
	}
	if err := s.Presenter.Publish(ctx, kind, message); err != nil {
		s.Logger.Warn("Book: failed to publish notification", zap.Error(err))
	}
}

// mirror appends the committed booking to the Redis mirror, best-effort.
func (s *DefaultBookingService) mirror(ctx context.Context, details models.BookingDetails) {
	if s.MirrorClient == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	data, err := json.Marshal(details)
	if err != nil {
		s.Logger.Warn("Book: failed to encode booking mirror entry", zap.Error(err))
		return
	}
	if err := s.MirrorClient.LPush(ctx, mirrorKey, data).Err(); err != nil {
		s.Logger.Warn("Book: failed to write booking mirror entry", zap.Error(err))
	}
}
