package integrity

import (
	"snapshot-manager/core/logger"

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
	group.Get("/dataset", h.HandleDatasetCheck)
	group.Get("/store", h.HandleStoreCheck)
	group.Get("/source", h.HandleSourceCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Dataset invariants, Store health, Source reachability).
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	// Store
	if storeReport, err := h.service.CheckStore(ctx); err != nil {
		report["store"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["store"] = storeReport
	}

	// Dataset
	if dsReport, err := h.service.CheckDataset(ctx); err != nil {
		if NotBootstrapped(err) {
			report["dataset"] = map[string]interface{}{"status": "not_bootstrapped"}
		} else {
			report["dataset"] = map[string]interface{}{"status": "error", "error": err.Error()}
		}
	} else {
		report["dataset"] = dsReport
	}

	// Source
	report["source"] = h.service.CheckSource(ctx)

	return c.JSON(report)
}

// HandleDatasetCheck verifies the dataset invariants.
// @Summary Check Dataset Invariants
// @Description Scans the persisted dataset for duplicate (entity_key, date) pairs and ordering inversions.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.DatasetReport "Dataset Report"
// @Failure 409 {object} map[string]string "Store Not Bootstrapped"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/dataset [get]
func (h *Handler) HandleDatasetCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDataset(c.Context())
	if err != nil {
		if NotBootstrapped(err) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Dataset check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.OK() {
		l.Warn("Dataset invariant violations detected",
			zap.Int("duplicates", len(report.Duplicates)),
			zap.Int("inversions", report.Inversions))
	}

	return c.JSON(report)
}

// HandleStoreCheck probes dataset store health.
// @Summary Check Store Health
// @Description Probes the dataset store, distinguishing a never-bootstrapped store from an unavailable one, and verifies the observations schema for the database driver.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.StoreReport "Store Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/store [get]
func (h *Handler) HandleStoreCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckStore(c.Context())
	if err != nil {
		l.Error("Store check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleSourceCheck verifies the snapshot source is reachable.
// @Summary Check Snapshot Source
// @Description Lists the raw snapshot source and reports how many candidate files match the configured prefix.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.SourceReport "Source Report"
// @Router /integrity/source [get]
func (h *Handler) HandleSourceCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	report := h.service.CheckSource(c.Context())
	if report.Status != "ok" {
		l.Warn("Snapshot source unavailable", zap.String("error", report.Error))
	}
	return c.JSON(report)
}
