package report

import (
	"errors"

	"github.com/oaseass/oaseass-saju/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReportIDHeader carries the persisted record id on compose responses.
const ReportIDHeader = "X-Report-ID"

// Handler handles HTTP requests for report composition.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the report routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/v1/report")
	group.Post("/compose", h.HandleCompose)
	group.Get("/:id", h.HandleGet)
}

// HandleCompose composes a reading report.
// @Summary Compose Report
// @Description Composes a reading report from saju and face results. When persistence is configured, the stored record id is returned in the X-Report-ID header.
// @Tags report
// @Accept json
// @Produce json
// @Param input body report.Input true "Saju and face results with goal and locale"
// @Success 200 {object} report.Report "Composed report"
// @Failure 400 {object} map[string]string "Malformed input"
// @Router /v1/report/compose [post]
func (h *Handler) HandleCompose(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in Input
	if err := c.BodyParser(&in); err != nil {
		l.Warn("Malformed report input", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if in.Goal == "" {
		in.Goal = "business"
	}
	if in.Locale == "" {
		in.Locale = "ko-KR"
	}

	rep := h.service.Compose(in)

	if h.service.HasStore() {
		// Persistence is best effort; composing still succeeds without it.
		if id, err := h.service.Store(in, rep); err != nil {
			l.Warn("Failed to persist report", zap.Error(err))
		} else {
			c.Set(ReportIDHeader, id)
		}
	}

	l.Info("Composed report", zap.String("goal", in.Goal), zap.String("locale", in.Locale))

	return c.JSON(rep)
}

// HandleGet fetches a persisted report.
// @Summary Get Stored Report
// @Description Fetches a previously composed report by record id.
// @Tags report
// @Produce json
// @Param id path string true "Report record id"
// @Success 200 {object} report.Record "Stored report"
// @Failure 404 {object} map[string]string "Unknown report id"
// @Failure 503 {object} map[string]string "Persistence not configured"
// @Router /v1/report/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	id := c.Params("id")

	rec, err := h.service.Get(id)
	switch {
	case errors.Is(err, ErrNoDatabase):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "report not found"})
	case err != nil:
		l.Error("Report lookup failed", zap.String("id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(rec)
}
