package face

import (
	"github.com/oaseass/oaseass-saju/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature wires the face service into the application.
type Feature struct {
	handler *Handler
}

// NewFeature creates the face feature. store may be nil to disable the
// image archive.
func NewFeature(store storage.Client, bucket string, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(NewService(store, bucket, logger))}
}

// Name returns the feature name.
func (f *Feature) Name() string { return "face" }

// IsEnabled reports whether the feature is active.
func (f *Feature) IsEnabled() bool { return true }

// Load registers the feature routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
