package handlers

import (
	"net/http"

	"salonbook/config"
	"salonbook/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the services catalog and the booking form page.
type CatalogHandler struct {
	CatalogSvc catalog.CatalogService
	Logger     *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogSvc: svc, Logger: logger}
}

// ListServicesHandler handles GET /api/catalog/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.CatalogSvc.ListServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("ListServicesHandler: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to load services",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, services)
}

// RenderBookingFormHandler handles GET /. The catalog is fetched on every
// render, which doubles as the soft reset after a successful booking. A
// gateway failure degrades the page instead of breaking it: the form stays
// submittable with no services selectable.
func (h *CatalogHandler) RenderBookingFormHandler(c *gin.Context) {
	services, err := h.CatalogSvc.ListServices(c.Request.Context())
	if err != nil {
		h.Logger.Error("RenderBookingFormHandler: failed to fetch services", zap.Error(err))
	}

	c.HTML(http.StatusOK, "booking.html", gin.H{
		"SalonName":    config.AppConfig.SalonName,
		"Services":     services,
		"CatalogError": err != nil,
	})
}
