package models

import "time"

// Appointment statuses.
const (
	AppointmentStatusPending = "pending"
)

// Appointment is one (customer, service, staff, time) booking record. A single
// submission with several selected services produces one Appointment per
// service, all sharing the same appointment time and booking group.
type Appointment struct {
	ID              string    `bson:"id" json:"id"`                                         // Unique appointment identifier (UUID)
	BookingGroupID  string    `bson:"booking_group_id" json:"booking_group_id"`             // Shared across all rows of one submission
	CustomerName    string    `bson:"customer_name" json:"customer_name"`                   // Customer display name
	CustomerPhone   string    `bson:"customer_phone" json:"customer_phone"`                 // Contact phone
	CustomerEmail   string    `bson:"customer_email,omitempty" json:"customer_email,omitempty"` // Optional contact email
	ServiceID       string    `bson:"service_id" json:"service_id"`                         // Booked service
	StaffID         string    `bson:"staff_id" json:"staff_id"`                             // Assigned staff member
	AppointmentTime time.Time `bson:"appointment_time" json:"appointment_time"`             // UTC instant of the visit
	Status          string    `bson:"status" json:"status"`                                 // e.g. "pending"
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`                         // Timestamp when the row was written
}
