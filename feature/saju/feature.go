package saju

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the saju service into the application.
type Feature struct {
	handler *Handler
}

// NewFeature creates the saju feature.
func NewFeature(logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(logger))}
}

// Name returns the feature name.
func (f *Feature) Name() string { return "saju" }

// IsEnabled reports whether the feature is active.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
