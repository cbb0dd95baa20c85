package models

// Notification kinds for the transient status banner.
const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)

// Notification is the single-slot transient status banner shown after a
// submission. A new notification replaces the current one.
type Notification struct {
	Kind    string `json:"kind"` // success or error
	Message string `json:"message"`
}
