package report

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature wires the report service into the application.
type Feature struct {
	handler *Handler
}

// NewFeature creates the report feature. db may be nil to disable
// persistence.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(db, logger))}
}

// Name returns the feature name.
func (f *Feature) Name() string { return "report" }

// IsEnabled reports whether the feature is active.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
