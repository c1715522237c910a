package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	serviceName    = "whatsapp-feedback-bot"
	serviceVersion = "1.0.0"
)

// HTTPHandler struct - Primary/Driving adapter for the service endpoints
type HTTPHandler struct{}

// New func - Creates new HTTP handler
func New() *HTTPHandler {
	return &HTTPHandler{}
}

// HealthCheck func - liveness endpoint for container orchestration
func (hdl *HTTPHandler) HealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":    "healthy",
		"service":   serviceName,
		"version":   serviceVersion,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Index func - service info page
func (hdl *HTTPHandler) Index(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "WhatsApp Feedback Bot para Google Maps",
		"version": serviceVersion,
		"status":  "running",
		"endpoints": fiber.Map{
			"health":  "/health",
			"webhook": "/webhook/whatsapp",
			"index":   "/",
		},
	})
}
