package face

import (
	"github.com/oaseass/oaseass-saju/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for face extraction.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the face routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/v1/face")
	group.Post("/extract", h.HandleExtract)
}

// HandleExtract extracts face-reading features from a base64 image.
// @Summary Extract Face Features
// @Description Scores the submitted image and returns face-reading features, regions and traits.
// @Tags face
// @Accept json
// @Produce json
// @Param input body face.Input true "Base64-encoded image"
// @Success 200 {object} face.Result "Face reading"
// @Failure 400 {object} map[string]string "Malformed input"
// @Router /v1/face/extract [post]
func (h *Handler) HandleExtract(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in Input
	if err := c.BodyParser(&in); err != nil {
		l.Warn("Malformed face input", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if in.ImageBase64 == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "image_base64 is required"})
	}

	l.Info("Extracting face features", zap.Int("payload_bytes", len(in.ImageBase64)))

	return c.JSON(h.service.Extract(c.Context(), in))
}
