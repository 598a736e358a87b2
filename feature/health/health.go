package health

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ServiceName is reported by the health endpoint.
const ServiceName = "Oasis Fortune API"

// Feature serves the root health endpoint.
type Feature struct{}

// NewFeature creates the health feature.
func NewFeature() *Feature {
	return &Feature{}
}

// Name returns the feature name.
func (f *Feature) Name() string { return "health" }

// IsEnabled reports whether the feature is active. Health is always on.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the health route.
func (f *Feature) Load(app fiber.Router) error {
	app.Get("/", f.handle)
	return nil
}

// handle reports service liveness.
// @Summary Health Check
// @Description Reports that the service is up, with the current UTC time.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service status"
// @Router / [get]
func (f *Feature) handle(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":      true,
		"service": ServiceName,
		"now":     time.Now().UTC().Format("2006-01-02T15:04:05.000000"),
	})
}
