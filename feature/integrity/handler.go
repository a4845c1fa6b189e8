package integrity

import (
	"errors"

	"ossdisk/core/disk"
	"ossdisk/core/logger"
	"ossdisk/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/:disk", h.HandleStructureCheck)
}

// HandleIntegrityCheck checks the structure of every disk.
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering integrity checks on all disks")

	report := make(map[string]any)
	for _, name := range h.service.Disks() {
		if missing, err := h.service.CheckStructure(c.Context(), name); err != nil {
			report[name] = fiber.Map{"status": "error", "error": err.Error()}
		} else {
			report[name] = fiber.Map{"status": "ok", "missing": missing}
		}
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes the structure of one disk.
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	name := c.Params("disk")
	l := logger.WithDisk(logger.WithRayID(h.service.logger, c), name)
	fix := utils.ToBool(c.Query("fix"))

	missing, err := h.service.CheckStructure(c.Context(), name)
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		if errors.Is(err, disk.ErrDiskNotConfigured) {
			status = fiber.StatusNotFound
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing directories detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing directories")
			if err := h.service.FixStructure(c.Context(), name, missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}
