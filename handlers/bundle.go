// File: salonbook/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Form page.
	RenderBookingFormHandler gin.HandlerFunc

	// Catalog endpoints.
	ListServicesHandler gin.HandlerFunc

	// Booking endpoints.
	CreateBookingHandler gin.HandlerFunc

	// Notification endpoints.
	CurrentNotificationHandler gin.HandlerFunc
}
