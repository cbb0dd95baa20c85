package models

import "time"

// Booking outcome classes, derived from the per-service success/failure counts.
const (
	OutcomeAllSuccess = "all_success"
	OutcomePartial    = "partial"
	OutcomeAllFail    = "all_fail"
)

// BookingRequest is one form submission. Services carries the checkbox values,
// i.e. service names as rendered by the catalog; ids are resolved server-side.
type BookingRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email,omitempty"`
	Phone    string   `json:"phone"`
	Date     string   `json:"date"` // "YYYY-MM-DD"
	Time     string   `json:"time"` // "HH:MM"
	Services []string `json:"services"`
}

// ServiceOutcome records the result of one per-service write attempt.
type ServiceOutcome struct {
	ServiceName string `json:"service_name"`
	ServiceID   string `json:"service_id,omitempty"`
	StaffID     string `json:"staff_id,omitempty"`
	Booked      bool   `json:"booked"`
	Reason      string `json:"reason,omitempty"`
}

// BookingResult is the aggregate outcome of one submission cycle.
type BookingResult struct {
	BookingGroupID  string           `json:"booking_group_id"`
	Outcome         string           `json:"outcome"` // all_success, partial, all_fail
	Booked          int              `json:"booked"`
	Failed          int              `json:"failed"`
	Services        []ServiceOutcome `json:"services"`
	AppointmentTime time.Time        `json:"appointment_time"`
	Notification    string           `json:"notification"`
	EmailStatus     string           `json:"email_status,omitempty"`
}

// BookingDetails aggregates a committed booking for the confirmation email and
// the non-canonical Redis mirror. The appointment rows remain authoritative.
type BookingDetails struct {
	BookingGroupID  string    `bson:"booking_group_id" json:"booking_group_id"`
	CustomerName    string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string    `bson:"customer_email,omitempty" json:"customer_email,omitempty"`
	CustomerPhone   string    `bson:"customer_phone" json:"customer_phone"`
	Date            string    `bson:"date" json:"date"` // raw form value, "YYYY-MM-DD"
	Time            string    `bson:"time" json:"time"` // raw form value, "HH:MM"
	AppointmentTime time.Time `bson:"appointment_time" json:"appointment_time"`
	ServiceNames    []string  `bson:"service_names" json:"service_names"`
	TotalPrice      float64   `bson:"total_price" json:"total_price"`
}
