package saju

import (
	"github.com/oaseass/oaseass-saju/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for saju computation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the saju routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/v1/saju")
	group.Post("/compute", h.HandleCompute)
}

// HandleCompute computes a four-pillars chart.
// @Summary Compute Saju
// @Description Computes the four pillars, element balance and luck timeline for a birth specification.
// @Tags saju
// @Accept json
// @Produce json
// @Param input body saju.Input true "Birth specification"
// @Success 200 {object} saju.Result "Saju analysis"
// @Failure 400 {object} map[string]string "Malformed input"
// @Router /v1/saju/compute [post]
func (h *Handler) HandleCompute(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in Input
	if err := c.BodyParser(&in); err != nil {
		l.Warn("Malformed saju input", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if in.Gender == "" {
		in.Gender = "unknown"
	}
	if in.TZ == "" {
		in.TZ = "Asia/Seoul"
	}

	l.Info("Computing saju",
		zap.String("calendar", in.Calendar),
		zap.String("tz", in.TZ),
	)

	return c.JSON(h.service.Compute(in))
}
