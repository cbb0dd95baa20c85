package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"salonbook/database/repository"
	"salonbook/models"
	"salonbook/services/email"
	"salonbook/services/notification"

	"go.uber.org/zap"
)

type fakeCatalogRepo struct {
	services map[string]models.Service
	err      error
}

func (f *fakeCatalogRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	out := make([]models.Service, 0, len(f.services))
	for _, s := range f.services {
		out = append(out, s)
	}
	return out, f.err
}

func (f *fakeCatalogRepo) GetByName(ctx context.Context, name string) (*models.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	svc, ok := f.services[name]
	if !ok {
		return nil, repository.ErrServiceNotFound
	}
	return &svc, nil
}

type fakeAssigner struct {
	staff *models.Staff
	err   error
	calls int
}

func (f *fakeAssigner) Assign(ctx context.Context, serviceID string) (*models.Staff, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.staff, nil
}

type fakeAppointmentRepo struct {
	rows    []models.Appointment
	failFor map[string]bool // service IDs whose writes are rejected
}

func (f *fakeAppointmentRepo) Upsert(ctx context.Context, appt *models.Appointment) error {
	if f.failFor[appt.ServiceID] {
		return errors.New("write rejected")
	}
	f.rows = append(f.rows, *appt)
	return nil
}

type fakeSender struct {
	outcome email.Outcome
	calls   int
	last    models.BookingDetails
}

func (f *fakeSender) Send(ctx context.Context, details models.BookingDetails) email.Outcome {
	f.calls++
	f.last = details
	return f.outcome
}

func newTestService(catalog *fakeCatalogRepo, assigner *fakeAssigner, appts *fakeAppointmentRepo, sender *fakeSender) (*DefaultBookingService, *notification.MemoryPresenter) {
	presenter := &notification.MemoryPresenter{TTL: time.Minute}
	return &DefaultBookingService{
		CatalogRepo:     catalog,
		AppointmentRepo: appts,
		StaffAssigner:   assigner,
		Confirmation:    sender,
		Presenter:       presenter,
		Logger:          zap.NewNop(),
	}, presenter
}

func validRequest(services ...string) models.BookingRequest {
	return models.BookingRequest{
		Name:     "Thandi M",
		Phone:    "+27 82 000 0000",
		Date:     "2025-03-10",
		Time:     "14:30",
		Services: services,
	}
}

func threeServiceCatalog() *fakeCatalogRepo {
	return &fakeCatalogRepo{services: map[string]models.Service{
		"Haircut":  {ID: "svc-1", Name: "Haircut", Price: 150},
		"Manicure": {ID: "svc-2", Name: "Manicure", Price: 200},
		"Massage":  {ID: "svc-3", Name: "Massage", Price: 350},
	}}
}

func TestBook_NoServiceSelected(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	svc, presenter := newTestService(threeServiceCatalog(), &fakeAssigner{staff: &models.Staff{ID: "st-1"}}, appts, &fakeSender{})

	_, err := svc.Book(context.Background(), validRequest())
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(appts.rows) != 0 {
		t.Fatalf("expected zero writes, got %d", len(appts.rows))
	}

	current, _ := presenter.Current(context.Background())
	if current == nil || current.Kind != models.NotificationError {
		t.Fatalf("expected error notification, got %+v", current)
	}
}

func TestBook_BlankRequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BookingRequest)
	}{
		{"blank name", func(r *models.BookingRequest) { r.Name = "   " }},
		{"blank phone", func(r *models.BookingRequest) { r.Phone = "" }},
		{"blank date", func(r *models.BookingRequest) { r.Date = "\t" }},
		{"blank time", func(r *models.BookingRequest) { r.Time = "  " }},
		{"whitespace-only services", func(r *models.BookingRequest) { r.Services = []string{"  ", ""} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appts := &fakeAppointmentRepo{}
			svc, _ := newTestService(threeServiceCatalog(), &fakeAssigner{staff: &models.Staff{ID: "st-1"}}, appts, &fakeSender{})

			req := validRequest("Haircut")
			tt.mutate(&req)

			_, err := svc.Book(context.Background(), req)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if len(appts.rows) != 0 {
				t.Fatalf("expected zero writes, got %d", len(appts.rows))
			}
		})
	}
}

func TestBook_InvalidDateIsValidation(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	svc, _ := newTestService(threeServiceCatalog(), &fakeAssigner{staff: &models.Staff{ID: "st-1"}}, appts, &fakeSender{})

	req := validRequest("Haircut")
	req.Date = "10-03-2025"

	_, err := svc.Book(context.Background(), req)
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(appts.rows) != 0 {
		t.Fatalf("expected zero writes, got %d", len(appts.rows))
	}
}

func TestBook_AllSuccess(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	sender := &fakeSender{outcome: email.Outcome{Status: email.StatusSent}}
	svc, presenter := newTestService(threeServiceCatalog(), &fakeAssigner{staff: &models.Staff{ID: "st-1"}}, appts, sender)

	req := validRequest("Haircut", "Manicure", "Massage")
	req.Email = "thandi@example.com"

	result, err := svc.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != models.OutcomeAllSuccess {
		t.Fatalf("expected all_success, got %s", result.Outcome)
	}
	if len(appts.rows) != 3 {
		t.Fatalf("expected 3 appointment rows, got %d", len(appts.rows))
	}

	// All rows share the group, the instant and the pending status.
	for _, row := range appts.rows {
		if row.BookingGroupID != result.BookingGroupID {
			t.Fatalf("row group %s != result group %s", row.BookingGroupID, result.BookingGroupID)
		}
		if !row.AppointmentTime.Equal(result.AppointmentTime) {
			t.Fatalf("row time %s != result time %s", row.AppointmentTime, result.AppointmentTime)
		}
		if row.Status != models.AppointmentStatusPending {
			t.Fatalf("expected pending status, got %s", row.Status)
		}
	}

	// Sequential writes preserve submission order.
	if appts.rows[0].ServiceID != "svc-1" || appts.rows[1].ServiceID != "svc-2" || appts.rows[2].ServiceID != "svc-3" {
		t.Fatalf("writes out of submission order: %+v", appts.rows)
	}

	if sender.calls != 1 {
		t.Fatalf("expected one email attempt, got %d", sender.calls)
	}
	if sender.last.TotalPrice != 700 {
		t.Fatalf("expected total price 700 from catalog, got %.2f", sender.last.TotalPrice)
	}
	if result.EmailStatus != "sent" {
		t.Fatalf("expected email status sent, got %q", result.EmailStatus)
	}

	current, _ := presenter.Current(context.Background())
	if current == nil || current.Kind != models.NotificationSuccess {
		t.Fatalf("expected success notification, got %+v", current)
	}
}

func TestBook_PartialFailure(t *testing.T) {
	// One unknown service and one rejected write out of four selections.
	catalog := threeServiceCatalog()
	appts := &fakeAppointmentRepo{failFor: map[string]bool{"svc-3": true}}
	sender := &fakeSender{outcome: email.Outcome{Status: email.StatusSent}}
	svc, _ := newTestService(catalog, &fakeAssigner{staff: &models.Staff{ID: "st-1"}}, appts, sender)

	result, err := svc.Book(context.Background(), validRequest("Haircut", "Facial", "Massage", "Manicure"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != models.OutcomePartial {
		t.Fatalf("expected partial, got %s", result.Outcome)
	}
	if result.Booked != 2 || result.Failed != 2 {
		t.Fatalf("expected 2 booked / 2 failed, got %d / %d", result.Booked, result.Failed)
	}
	// The successes are not rolled back.
	if len(appts.rows) != 2 {
		t.Fatalf("expected 2 rows to survive, got %d", len(appts.rows))
	}
	// No email on a partial outcome.
	if sender.calls != 0 {
		t.Fatalf("expected no email attempt, got %d", sender.calls)
	}

	var unknown, rejected models.ServiceOutcome
	for _, o := range result.Services {
		switch o.ServiceName {
		case "Facial":
			unknown = o
		case "Massage":
			rejected = o
		}
	}
	if unknown.Booked || unknown.Reason != "service not found" {
		t.Fatalf("unexpected outcome for unknown service: %+v", unknown)
	}
	if rejected.Booked || rejected.Reason == "" {
		t.Fatalf("unexpected outcome for rejected write: %+v", rejected)
	}
}

func TestBook_AllFail(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	assigner := &fakeAssigner{err: repository.ErrNoStaffAvailable}
	svc, presenter := newTestService(threeServiceCatalog(), assigner, appts, &fakeSender{})

	result, err := svc.Book(context.Background(), validRequest("Haircut", "Manicure"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != models.OutcomeAllFail {
		t.Fatalf("expected all_fail, got %s", result.Outcome)
	}
	if len(appts.rows) != 0 {
		t.Fatalf("expected zero rows, got %d", len(appts.rows))
	}
	// One assignment attempt per service: the loop continues past failures.
	if assigner.calls != 2 {
		t.Fatalf("expected 2 assignment attempts, got %d", assigner.calls)
	}

	current, _ := presenter.Current(context.Background())
	if current == nil || current.Kind != models.NotificationError {
		t.Fatalf("expected error notification, got %+v", current)
	}
}

func TestBook_EmailFailureNeverDowngradesBooking(t *testing.T) {
	appts := &fakeAppointmentRepo{}
	sender := &fakeSender{outcome: email.Outcome{Status: email.StatusFailed, Err: errors.New("gateway down")}}
	svc, _ := newTestService(threeServiceCatalog(), &fakeAssigner{staff: &models.Staff{ID: "st-1"}}, appts, sender)

	req := validRequest("Haircut")
	req.Email = "thandi@example.com"

	result, err := svc.Book(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Outcome != models.OutcomeAllSuccess {
		t.Fatalf("email failure downgraded the booking: %s", result.Outcome)
	}
	if result.EmailStatus != "failed" {
		t.Fatalf("expected email status failed, got %q", result.EmailStatus)
	}
	if !strings.Contains(result.Notification, "could not be sent") {
		t.Fatalf("expected email failure folded into notification, got %q", result.Notification)
	}
}
